package routing

import (
	"math"
	"time"

	"github.com/daho94/chroute/graph"
	. "github.com/daho94/chroute/util"
)

//*******************************************
// ch routing
//*******************************************

type _FlagCH struct {
	path_length float64
	prev_edge   int32
	prev_type   byte
	has_prev    bool
	visited     bool
}

var _DefaultFlagCH = _FlagCH{path_length: math.Inf(1)}

var _ IShortestPath = &CHRouting{}

// Bidirectional Dijkstra on the contraction hierarchy: both searches
// only relax edges leading to strictly higher levels, pruned further by
// stall-on-demand. Scratch state is allocated once and reused across
// queries; instances are not safe for concurrent use, run one per
// goroutine over the shared graph.
type CHRouting struct {
	graph    graph.ICHGraph
	explorer graph.IGraphExplorer

	fwd_flags Flags[_FlagCH]
	bwd_flags Flags[_FlagCH]
	fwd_heap  PriorityQueue[int32, float64]
	bwd_heap  PriorityQueue[int32, float64]

	start int32
	end   int32

	best_weight float64
	meet_node   int32

	stall_on_demand bool

	stats SearchStats
}

func NewCHRouting(g graph.ICHGraph) *CHRouting {
	node_count := int32(g.NodeCount())
	return &CHRouting{
		graph:     g,
		explorer:  g.GetGraphExplorer(),
		fwd_flags: NewFlags[_FlagCH](node_count, _DefaultFlagCH),
		bwd_flags: NewFlags[_FlagCH](node_count, _DefaultFlagCH),
		fwd_heap:  NewPriorityQueue[int32, float64](100),
		bwd_heap:  NewPriorityQueue[int32, float64](100),
		meet_node: -1,

		stall_on_demand: true,
	}
}

// Disabling stall-on-demand only affects the number of settled nodes,
// never the result.
func (self *CHRouting) SetStallOnDemand(enabled bool) {
	self.stall_on_demand = enabled
}

func (self *CHRouting) Stats() SearchStats {
	return self.stats
}

func (self *CHRouting) CalcShortestPath(start, end int32) (bool, error) {
	if !self.graph.IsNode(start) || !self.graph.IsNode(end) {
		return false, graph.ErrInvalidNodeID
	}
	timer := time.Now()

	self.start = start
	self.end = end
	self.fwd_flags.Reset()
	self.bwd_flags.Reset()
	self.fwd_heap.Clear()
	self.bwd_heap.Clear()
	self.best_weight = math.Inf(1)
	self.meet_node = -1
	self.stats = SearchStats{}

	self.fwd_flags.Get(start).path_length = 0
	self.bwd_flags.Get(end).path_length = 0
	self.fwd_heap.Enqueue(start, 0)
	self.bwd_heap.Enqueue(end, 0)

	fwd_done := false
	bwd_done := false
	for !fwd_done || !bwd_done {
		if !fwd_done {
			fwd_done = self._Step(graph.FORWARD)
		}
		if !bwd_done {
			bwd_done = self._Step(graph.BACKWARD)
		}
	}

	self.stats.Duration = time.Since(timer)
	return self.meet_node != -1, nil
}

// Settles at most one node in the given direction. Returns true once the
// direction is exhausted, i.e. its frontier is empty or beyond the best
// meeting weight.
func (self *CHRouting) _Step(direction graph.Direction) bool {
	flags := &self.fwd_flags
	other_flags := &self.bwd_flags
	heap := &self.fwd_heap
	if direction == graph.BACKWARD {
		flags = &self.bwd_flags
		other_flags = &self.fwd_flags
		heap = &self.bwd_heap
	}

	for {
		prio, ok := heap.PeekPriority()
		if !ok || prio > self.best_weight {
			return true
		}
		curr_id, _ := heap.Dequeue()
		curr_flag := flags.Get(curr_id)
		if curr_flag.visited {
			continue
		}
		curr_flag.visited = true

		if self.stall_on_demand && self._IsStallable(curr_id, curr_flag.path_length, direction, flags) {
			self.stats.NodesStalled += 1
			continue
		}
		self.stats.NodesSettled += 1

		if other_flags.IsSet(curr_id) {
			other_length := other_flags.Get(curr_id).path_length
			if curr_flag.path_length+other_length < self.best_weight {
				self.best_weight = curr_flag.path_length + other_length
				self.meet_node = curr_id
			}
		}

		self.explorer.ForAdjacentEdges(curr_id, direction, graph.ADJACENT_UPWARDS, func(ref graph.EdgeRef) {
			other_flag := flags.Get(ref.OtherID)
			new_length := curr_flag.path_length + self.explorer.GetEdgeWeight(ref)
			if new_length < other_flag.path_length {
				other_flag.path_length = new_length
				other_flag.prev_edge = ref.EdgeID
				other_flag.prev_type = ref.Type
				other_flag.has_prev = true
				heap.Enqueue(ref.OtherID, new_length)
			}
		})
		return false
	}
}

// A node is stalled when it is reachable more cheaply through a
// down-edge from a higher-level node already labelled by the same
// search; its expansion cannot contribute to a shortest path.
func (self *CHRouting) _IsStallable(node int32, path_length float64, direction graph.Direction, flags *Flags[_FlagCH]) bool {
	stall_dir := graph.BACKWARD
	if direction == graph.BACKWARD {
		stall_dir = graph.FORWARD
	}
	stalled := false
	self.explorer.ForAdjacentEdges(node, stall_dir, graph.ADJACENT_UPWARDS, func(ref graph.EdgeRef) {
		if stalled || !flags.IsSet(ref.OtherID) {
			return
		}
		other_length := flags.Get(ref.OtherID).path_length
		if other_length+self.explorer.GetEdgeWeight(ref) < path_length {
			stalled = true
		}
	})
	return stalled
}

// Unpacks the forward and backward search trees at the meeting node into
// the node sequence of the underlying path.
func (self *CHRouting) GetShortestPath() Path {
	if self.meet_node == -1 {
		return NewPath(NewList[int32](0), math.Inf(1))
	}

	nodes := NewList[int32](16)

	// forward part: walk back to the start, then reverse
	segments := NewList[int32](8)
	curr_id := self.meet_node
	for {
		curr_flag := self.fwd_flags.Get(curr_id)
		if !curr_flag.has_prev {
			break
		}
		if curr_flag.prev_type == 100 {
			self.graph.GetEdgesFromShortcut(curr_flag.prev_edge, true, func(edge_id int32) {
				segments.Add(edge_id)
			})
			curr_id = self.graph.GetShortcut(curr_flag.prev_edge).From
		} else {
			segments.Add(curr_flag.prev_edge)
			curr_id = self.graph.GetEdge(curr_flag.prev_edge).NodeA
		}
	}
	nodes.Add(curr_id)
	for i := segments.Length() - 1; i >= 0; i-- {
		nodes.Add(self.graph.GetEdge(segments[i]).NodeB)
	}

	// backward part: walk towards the end
	curr_id = self.meet_node
	for {
		curr_flag := self.bwd_flags.Get(curr_id)
		if !curr_flag.has_prev {
			break
		}
		if curr_flag.prev_type == 100 {
			self.graph.GetEdgesFromShortcut(curr_flag.prev_edge, false, func(edge_id int32) {
				nodes.Add(self.graph.GetEdge(edge_id).NodeB)
			})
			curr_id = self.graph.GetShortcut(curr_flag.prev_edge).To
		} else {
			nodes.Add(self.graph.GetEdge(curr_flag.prev_edge).NodeB)
			curr_id = self.graph.GetEdge(curr_flag.prev_edge).NodeB
		}
	}

	weight := self.fwd_flags.Get(self.meet_node).path_length + self.bwd_flags.Get(self.meet_node).path_length
	return NewPath(nodes, weight)
}
