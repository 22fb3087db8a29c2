package comps

import (
	"github.com/daho94/chroute/geo"
	"github.com/tidwall/rtree"
)

//*******************************************
// graph index interface
//*******************************************

type IGraphIndex interface {
	GetClosestNode(point geo.Coord) (int32, bool)
}

//*******************************************
// rtree graph index
//*******************************************

var _ IGraphIndex = &GraphIndex{}

// Spatial index over node locations for snapping request coordinates to
// graph nodes.
type GraphIndex struct {
	tree rtree.RTreeG[int32]
}

func NewGraphIndex(base IGraphBase) *GraphIndex {
	index := &GraphIndex{}
	for i := 0; i < base.NodeCount(); i++ {
		loc := base.GetNodeGeom(int32(i))
		point := [2]float64{float64(loc.Lon()), float64(loc.Lat())}
		index.tree.Insert(point, point, int32(i))
	}
	return index
}

func (self *GraphIndex) GetClosestNode(point geo.Coord) (int32, bool) {
	target := [2]float64{float64(point.Lon()), float64(point.Lat())}
	node := int32(-1)
	found := false
	self.tree.Nearby(
		rtree.BoxDist[float64, int32](target, target, nil),
		func(min, max [2]float64, data int32, dist float64) bool {
			node = data
			found = true
			return false
		},
	)
	return node, found
}
