package routing

import (
	"math"
	"time"

	"github.com/daho94/chroute/graph"
	. "github.com/daho94/chroute/util"
)

//*******************************************
// dijkstra
//*******************************************

type _FlagD struct {
	path_length float64
	prev_edge   int32
	has_prev    bool
	visited     bool
}

var _DefaultFlagD = _FlagD{path_length: math.Inf(1)}

var _ IShortestPath = &Dijkstra{}

// Reference shortest-path search on the plain graph.
type Dijkstra struct {
	graph    graph.IGraph
	explorer graph.IGraphExplorer

	flags Flags[_FlagD]
	heap  PriorityQueue[int32, float64]

	start int32
	end   int32

	stats SearchStats
}

func NewDijkstra(g graph.IGraph) *Dijkstra {
	return &Dijkstra{
		graph:    g,
		explorer: g.GetGraphExplorer(),
		flags:    NewFlags[_FlagD](int32(g.NodeCount()), _DefaultFlagD),
		heap:     NewPriorityQueue[int32, float64](100),
		end:      -1,
	}
}

func (self *Dijkstra) Stats() SearchStats {
	return self.stats
}

func (self *Dijkstra) CalcShortestPath(start, end int32) (bool, error) {
	if !self.graph.IsNode(start) || !self.graph.IsNode(end) {
		return false, graph.ErrInvalidNodeID
	}
	timer := time.Now()

	self.start = start
	self.end = end
	self.flags.Reset()
	self.heap.Clear()
	self.stats = SearchStats{}

	self.flags.Get(start).path_length = 0
	self.heap.Enqueue(start, 0)

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
				self.heap.Enqueue(ref.OtherID, new_length)
			}
		})
	}

	self.stats.Duration = time.Since(timer)
	return found, nil
}

func (self *Dijkstra) GetShortestPath() Path {
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
