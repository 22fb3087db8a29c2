package preproc

import (
	"math"

	"github.com/daho94/chroute/graph"
	. "github.com/daho94/chroute/util"
)

//*******************************************
// witness search
//*******************************************

type _FlagSH struct {
	curr_length float64
	curr_hops   int32
	visited     bool
	is_target   bool
}

var _DefaultFlagSH = _FlagSH{curr_length: math.Inf(1)}

// Bounded local Dijkstra from start in the current remaining graph.
//
// The search never relaxes through the avoid node, skips contracted
// nodes and terminates as soon as all targets are settled, the frontier
// exceeds max_weight, the settled-node budget is used up or the hop
// budget is exhausted. Distances of reached nodes are left in flags for
// the caller to inspect.
func _RunWitnessSearch(start, avoid int32, targets List[int32], max_weight float64, explorer *CHPreprocGraphExplorer, heap *PriorityQueue[int32, float64], flags *Flags[_FlagSH], is_contracted Array[bool], max_hops, max_settled int32) {
	heap.Clear()
	flags.Reset()

	for _, target := range targets {
		flags.Get(target).is_target = true
	}
	start_flag := flags.Get(start)
	start_flag.curr_length = 0
	heap.Enqueue(start, 0)

	target_count := int32(targets.Length())
	found_count := int32(0)
	settled_count := int32(0)
	for {
		curr_id, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_flag := flags.Get(curr_id)
		if curr_flag.visited {
			continue
		}
		if curr_flag.curr_length > max_weight {
			break
		}
		if settled_count >= max_settled {
			break
		}
		curr_flag.visited = true
		settled_count += 1
		if curr_flag.is_target {
			found_count += 1
			if found_count >= target_count {
				break
			}
		}
		if curr_flag.curr_hops >= max_hops {
			continue
		}
		explorer.ForAdjacentEdges(curr_id, graph.FORWARD, func(ref graph.EdgeRef) {
			other_id := ref.OtherID
			if other_id == avoid || is_contracted[other_id] {
				return
			}
			other_flag := flags.Get(other_id)
			new_length := curr_flag.curr_length + explorer.GetEdgeWeight(ref)
			if new_length < other_flag.curr_length {
				other_flag.curr_length = new_length
				other_flag.curr_hops = curr_flag.curr_hops + 1
				heap.Enqueue(other_id, new_length)
			}
		})
	}
}

// Distance of node found by the last witness search, +inf if unreached.
func _WitnessDist(flags *Flags[_FlagSH], node int32) float64 {
	if !flags.IsSet(node) {
		return math.Inf(1)
	}
	return flags.Get(node).curr_length
}
