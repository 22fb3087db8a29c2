package graph

//*******************************************
// edge reference
//*******************************************

// Reference to an edge during traversal. Type 0 marks a base edge,
// type 100 a shortcut; EdgeID indexes the respective arena.
type EdgeRef struct {
	EdgeID  int32
	OtherID int32
	Type    byte
}

func (self EdgeRef) IsEdge() bool {
	return self.Type == 0
}
func (self EdgeRef) IsShortcut() bool {
	return self.Type == 100
}

func CreateEdgeRef(edge int32) EdgeRef {
	return EdgeRef{
		EdgeID: edge,
		Type:   0,
	}
}
