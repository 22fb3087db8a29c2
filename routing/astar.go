package routing

import (
	"math"
	"time"

	"github.com/daho94/chroute/geo"
	"github.com/daho94/chroute/graph"
	. "github.com/daho94/chroute/util"
)

//*******************************************
// a-star
//*******************************************

// Upper driving speed in m/s used for the straight-line potential. Keeps
// the heuristic admissible for travel-time weights.
const _MAX_SPEED = 130.0 / 3.6

var _ IShortestPath = &AStar{}

// Dijkstra with a straight-line travel-time potential towards the target.
type AStar struct {
	graph    graph.IGraph
	explorer graph.IGraphExplorer

	flags Flags[_FlagD]
	heap  PriorityQueue[int32, float64]

	start int32
	end   int32

	stats SearchStats
}

func NewAStar(g graph.IGraph) *AStar {
	return &AStar{
		graph:    g,
		explorer: g.GetGraphExplorer(),
		flags:    NewFlags[_FlagD](int32(g.NodeCount()), _DefaultFlagD),
		heap:     NewPriorityQueue[int32, float64](100),
		end:      -1,
	}
}

func (self *AStar) Stats() SearchStats {
	return self.stats
}

func (self *AStar) CalcShortestPath(start, end int32) (bool, error) {
	if !self.graph.IsNode(start) || !self.graph.IsNode(end) {
		return false, graph.ErrInvalidNodeID
	}
	timer := time.Now()

	self.start = start
	self.end = end
	self.flags.Reset()
	self.heap.Clear()
	self.stats = SearchStats{}

	end_loc := self.graph.GetNodeGeom(end)

	self.flags.Get(start).path_length = 0
	self.heap.Enqueue(start, self._Potential(start, end_loc))

	found := false
	for {
		curr_id, ok := self.heap.Dequeue()
		if !ok {
			break
		}
		curr_flag := self.flags.Get(curr_id)
		if curr_flag.visited {
			continue
		}
		curr_flag.visited = true
		self.stats.NodesSettled += 1
		if curr_id == end {
			found = true
			break
		}
		self.explorer.ForAdjacentEdges(curr_id, graph.FORWARD, graph.ADJACENT_EDGES, func(ref graph.EdgeRef) {
			other_flag := self.flags.Get(ref.OtherID)
			new_length := curr_flag.path_length + self.explorer.GetEdgeWeight(ref)
			if new_length < other_flag.path_length {
				other_flag.path_length = new_length
				other_flag.prev_edge = ref.EdgeID
				other_flag.has_prev = true
				self.heap.Enqueue(ref.OtherID, new_length+self._Potential(ref.OtherID, end_loc))
			}
		})
	}

	self.stats.Duration = time.Since(timer)
	return found, nil
}

func (self *AStar) _Potential(node int32, end_loc geo.Coord) float64 {
	return geo.HaversineDist(self.graph.GetNodeGeom(node), end_loc) / _MAX_SPEED
}

func (self *AStar) GetShortestPath() Path {
	if self.end == -1 || !self.flags.IsSet(self.end) {
		return NewPath(NewList[int32](0), math.Inf(1))
	}

	nodes := NewList[int32](16)
	curr_id := self.end
	nodes.Add(curr_id)
	for {
		curr_flag := self.flags.Get(curr_id)
		if !curr_flag.has_prev {
			break
		}
		curr_id = self.graph.GetEdge(curr_flag.prev_edge).NodeA
		nodes.Add(curr_id)
	}
	for i, j := 0, nodes.Length()-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return NewPath(nodes, self.flags.Get(self.end).path_length)
}
