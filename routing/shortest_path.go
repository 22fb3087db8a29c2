package routing

import (
	"time"

	"github.com/daho94/chroute/geo"
	"github.com/daho94/chroute/graph"
	. "github.com/daho94/chroute/util"
)

//*******************************************
// shortest path interface
//*******************************************

type IShortestPath interface {
	// Runs the search. Returns false if no path exists; an error is only
	// returned for invalid node ids.
	CalcShortestPath(start, end int32) (bool, error)
	// Path found by the last successful search.
	GetShortestPath() Path
	Stats() SearchStats
}

//*******************************************
// path
//*******************************************

// A walk through the original graph.
type Path struct {
	nodes  List[int32]
	weight float64
}

func NewPath(nodes List[int32], weight float64) Path {
	return Path{
		nodes:  nodes,
		weight: weight,
	}
}

func (self Path) GetNodes() List[int32] {
	return self.nodes
}
func (self Path) GetWeight() float64 {
	return self.weight
}

func (self Path) GetGeometry(g graph.IGraph) geo.CoordArray {
	coords := make(geo.CoordArray, 0, self.nodes.Length())
	for _, node := range self.nodes {
		coords = append(coords, g.GetNodeGeom(node))
	}
	return coords
}

//*******************************************
// search statistics
//*******************************************

type SearchStats struct {
	NodesSettled int
	NodesStalled int
	Duration     time.Duration
}
