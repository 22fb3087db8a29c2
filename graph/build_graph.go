package graph

import (
	"github.com/daho94/chroute/comps"
	"github.com/daho94/chroute/geo"
	"github.com/daho94/chroute/structs"
)

//*******************************************
// graph builder
//*******************************************

// Assembles a graph from nodes and weighted directed edges. The builder
// owns the dense node-id allocation; edges are validated and parallel
// edges deduplicated on insertion.
type GraphBuilder struct {
	base   *comps.GraphBase
	weight *comps.DefaultWeighting
}

func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{
		base:   comps.NewGraphBase(),
		weight: comps.NewDefaultWeighting(),
	}
}

func (self *GraphBuilder) AddNode(loc geo.Coord) int32 {
	return self.base.AddNode(structs.Node{Loc: loc})
}

// Adds the directed edge node_a -> node_b with the given weight.
//
// If a parallel edge node_a -> node_b already exists, only the cheaper of
// the two survives: the existing edge's weight is lowered in place when
// the new one undercuts it, otherwise the insertion is a no-op and the
// existing id is returned.
func (self *GraphBuilder) AddEdge(node_a, node_b int32, weight float64) (int32, error) {
	if !self.base.IsNode(node_a) || !self.base.IsNode(node_b) {
		return -1, ErrInvalidNodeID
	}
	if weight < 0 {
		return -1, ErrNegativeWeight
	}

	accessor := self.base.GetAccessor()
	accessor.SetBaseNode(node_a, true)
	for accessor.Next() {
		if accessor.GetOtherID() != node_b {
			continue
		}
		edge_id := accessor.GetEdgeID()
		if self.weight.GetEdgeWeight(edge_id) > weight {
			self.weight.SetEdgeWeight(edge_id, weight)
		}
		return edge_id, nil
	}

	edge_id := self.base.AddEdge(node_a, node_b)
	self.weight.AddEdgeWeight(weight)
	return edge_id, nil
}

func (self *GraphBuilder) NodeCount() int {
	return self.base.NodeCount()
}
func (self *GraphBuilder) EdgeCount() int {
	return self.base.EdgeCount()
}

// Finishes construction and hands out the graph components.
func (self *GraphBuilder) Build() (*comps.GraphBase, *comps.DefaultWeighting) {
	return self.base, self.weight
}

//*******************************************
// graph constructors
//*******************************************

func BuildGraph(base comps.IGraphBase, weight comps.IWeighting, index comps.IGraphIndex) *Graph {
	return &Graph{
		base:   base,
		weight: weight,
		index:  index,
	}
}

func BuildCHGraph(base comps.IGraphBase, weight comps.IWeighting, index comps.IGraphIndex, ch *comps.CH) *CHGraph {
	return &CHGraph{
		base:   base,
		weight: weight,
		index:  index,
		ch:     ch,
	}
}
