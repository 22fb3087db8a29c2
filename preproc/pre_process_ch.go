package preproc

import (
	"fmt"
	"time"

	"github.com/daho94/chroute/comps"
	"github.com/daho94/chroute/graph"
	"github.com/daho94/chroute/structs"
	. "github.com/daho94/chroute/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// contraction parameters
//*******************************************

type UpdateStrategy byte

const (
	// Re-evaluate the priority of the popped node before contracting it.
	UPDATE_LAZY UpdateStrategy = 1
	// Re-evaluate the priorities of a contracted node's neighbours.
	UPDATE_NEIGHBOURS UpdateStrategy = 2
)

func (self UpdateStrategy) HasLazy() bool {
	return self&UPDATE_LAZY != 0
}
func (self UpdateStrategy) HasNeighbours() bool {
	return self&UPDATE_NEIGHBOURS != 0
}

type ContractionParams struct {
	// Settled-node cap of witness searches during contraction and lazy
	// updates.
	MaxSettledNodes int32
	// Settled-node cap of witness searches during the initial ordering.
	InitialSettledNodes int32
	// Hop cap of witness searches.
	MaxHops int32

	// Priority coefficients.
	EdgeDiffCoeff         int
	DeletedNeighborsCoeff int
	SearchSpaceCoeff      int

	UpdateStrategy UpdateStrategy
}

// Defaults from benchmark tuning on mid-size road networks.
func DefaultContractionParams() ContractionParams {
	return ContractionParams{
		MaxSettledNodes:       50,
		InitialSettledNodes:   500,
		MaxHops:               16,
		EdgeDiffCoeff:         501,
		DeletedNeighborsCoeff: 401,
		SearchSpaceCoeff:      7,
		UpdateStrategy:        UPDATE_LAZY | UPDATE_NEIGHBOURS,
	}
}

//*******************************************
// contraction statistics
//*******************************************

type ContractionStats struct {
	ShortcutsAdded  int
	WitnessSearches int
	OrderingTime    time.Duration
	ContractionTime time.Duration
	TotalTime       time.Duration
}

//*******************************************
// node contractor
//*******************************************

type _Neighbour struct {
	node   int32
	weight float64
}

// Builds the contraction hierarchy for a graph: selects a contraction
// order by an online priority heuristic, inserts shortcuts for pairs
// without a witness path and assigns every node its level.
type NodeContractor struct {
	graph  *CHPreprocGraph
	params ContractionParams

	is_contracted         Array[bool]
	node_depths           Array[int32]
	contracted_neighbours Array[int32]
	node_priorities       Array[int]

	// witness search scratch
	heap  PriorityQueue[int32, float64]
	flags Flags[_FlagSH]

	explorer *CHPreprocGraphExplorer
	stats    ContractionStats
}

func NewNodeContractor(base comps.IGraphBase, weight comps.IWeighting, params ContractionParams) *NodeContractor {
	g := TransformToCHPreprocGraph(base, weight)
	node_count := g.NodeCount()
	return &NodeContractor{
		graph:                 g,
		params:                params,
		is_contracted:         NewArray[bool](node_count),
		node_depths:           NewArray[int32](node_count),
		contracted_neighbours: NewArray[int32](node_count),
		node_priorities:       NewArray[int](node_count),
		heap:                  NewPriorityQueue[int32, float64](100),
		flags:                 NewFlags[_FlagSH](int32(node_count), _DefaultFlagSH),
		explorer:              g.GetExplorer(),
	}
}

func (self *NodeContractor) Stats() ContractionStats {
	return self.stats
}

// Runs the contraction to completion and publishes the ch-data. The
// consumed graph components must not be mutated afterwards.
func (self *NodeContractor) Run() *comps.CH {
	slog.Info("started contracting graph")
	node_count := self.graph.NodeCount()
	timer := time.Now()

	// initial node ordering by simulated contraction
	queue := NewPriorityQueue[Tuple[int32, int], int](node_count)
	for i := 0; i < node_count; i++ {
		prio := self._ComputeNodePriority(int32(i), self.params.InitialSettledNodes)
		self.node_priorities[i] = prio
		queue.Enqueue(MakeTuple(int32(i), prio), prio)
	}
	self.stats.OrderingTime = time.Since(timer)
	slog.Info("finished ordering nodes", slog.Duration("duration", self.stats.OrderingTime))

	timer = time.Now()
	level := int32(0)
	count := 0
	for {
		temp, ok := queue.Dequeue()
		if !ok {
			break
		}
		node_id := temp.A
		node_prio := temp.B
		if self.is_contracted[node_id] || node_prio != self.node_priorities[node_id] {
			continue
		}

		// lazy update: re-evaluate and push back if no longer the minimum
		if self.params.UpdateStrategy.HasLazy() {
			prio := self._ComputeNodePriority(node_id, self.params.MaxSettledNodes)
			top_prio, has_top := queue.PeekPriority()
			if has_top && prio > top_prio {
				self.node_priorities[node_id] = prio
				queue.Enqueue(MakeTuple(node_id, prio), prio)
				continue
			}
		}

		in_neigbours, out_neigbours := self._ContractNode(node_id)
		self.is_contracted[node_id] = true
		self.graph.SetNodeLevel(node_id, level)
		level += 1

		count += 1
		if count%10000 == 0 {
			slog.Info(fmt.Sprintf("contracted %v / %v nodes", count, node_count))
		}

		// update neighbours of the contracted node
		depth := self.node_depths[node_id]
		for _, neigbours := range [][]_Neighbour{in_neigbours, out_neigbours} {
			for _, nb := range neigbours {
				self.node_depths[nb.node] = Max(depth+1, self.node_depths[nb.node])
				self.contracted_neighbours[nb.node] += 1
			}
		}
		if self.params.UpdateStrategy.HasNeighbours() {
			updated := NewList[int32](len(in_neigbours) + len(out_neigbours))
			for _, neigbours := range [][]_Neighbour{in_neigbours, out_neigbours} {
				for _, nb := range neigbours {
					if Contains(updated, nb.node) {
						continue
					}
					updated.Add(nb.node)
					prio := self._ComputeNodePriority(nb.node, self.params.MaxSettledNodes)
					self.node_priorities[nb.node] = prio
					queue.Enqueue(MakeTuple(nb.node, prio), prio)
				}
			}
		}
	}
	self.stats.ContractionTime = time.Since(timer)
	self.stats.TotalTime = self.stats.OrderingTime + self.stats.ContractionTime
	self.stats.ShortcutsAdded = self.graph.ShortcutCount()

	if level != int32(node_count) {
		panic("contraction finished without assigning every node a level")
	}
	slog.Info("finished contracting graph",
		slog.Int("shortcuts", self.stats.ShortcutsAdded),
		slog.Duration("duration", self.stats.ContractionTime))

	return TransformToCHData(self.graph)
}

// Contracts the nodes in the given order instead of deriving one from
// the priority heuristic. The order must list every node exactly once.
func (self *NodeContractor) RunWithOrder(order Array[int32]) *comps.CH {
	node_count := self.graph.NodeCount()
	if order.Length() != node_count {
		panic("contraction order must contain every node exactly once")
	}
	slog.Info("started contracting graph with fixed order")
	timer := time.Now()

	level := int32(0)
	for _, node_id := range order {
		if self.is_contracted[node_id] {
			panic("contraction order contains a node twice")
		}
		self._ContractNode(node_id)
		self.is_contracted[node_id] = true
		self.graph.SetNodeLevel(node_id, level)
		level += 1
	}
	self.stats.ContractionTime = time.Since(timer)
	self.stats.TotalTime = self.stats.ContractionTime
	self.stats.ShortcutsAdded = self.graph.ShortcutCount()
	slog.Info("finished contracting graph", slog.Int("shortcuts", self.stats.ShortcutsAdded))

	return TransformToCHData(self.graph)
}

// Contracts node_id: for every (u, v, w) pair without a witness path a
// shortcut u -> w is inserted. Returns the uncontracted in- and
// out-neighbours.
func (self *NodeContractor) _ContractNode(node_id int32) ([]_Neighbour, []_Neighbour) {
	in_neigbours, out_neigbours := self._FindNeighbours(node_id)

	targets := NewList[int32](len(out_neigbours))
	for _, nb := range out_neigbours {
		targets.Add(nb.node)
	}

	for _, from := range in_neigbours {
		max_weight := self._MaxPairWeight(from, out_neigbours)
		self.stats.WitnessSearches += 1
		_RunWitnessSearch(from.node, node_id, targets, max_weight, self.explorer, &self.heap, &self.flags, self.is_contracted, self.params.MaxHops, self.params.MaxSettledNodes)
		for _, to := range out_neigbours {
			if from.node == to.node {
				continue
			}
			weight := from.weight + to.weight
			if _WitnessDist(&self.flags, to.node) <= weight {
				continue
			}
			edges := self._ShortcutEdges(from.node, node_id, to.node)
			self.graph.AddShortcut(from.node, to.node, weight, edges)
		}
	}

	return in_neigbours, out_neigbours
}

// Simulates the contraction of node_id and derives its priority from the
// edge difference, the contracted-neighbours count and the search-space
// depth.
func (self *NodeContractor) _ComputeNodePriority(node_id int32, max_settled int32) int {
	in_neigbours, out_neigbours := self._FindNeighbours(node_id)

	targets := NewList[int32](len(out_neigbours))
	for _, nb := range out_neigbours {
		targets.Add(nb.node)
	}

	added := 0
	for _, from := range in_neigbours {
		max_weight := self._MaxPairWeight(from, out_neigbours)
		self.stats.WitnessSearches += 1
		_RunWitnessSearch(from.node, node_id, targets, max_weight, self.explorer, &self.heap, &self.flags, self.is_contracted, self.params.MaxHops, max_settled)
		for _, to := range out_neigbours {
			if from.node == to.node {
				continue
			}
			if _WitnessDist(&self.flags, to.node) <= from.weight+to.weight {
				continue
			}
			added += 1
		}
	}

	edge_diff := added - len(in_neigbours) - len(out_neigbours)
	return self.params.EdgeDiffCoeff*edge_diff +
		self.params.DeletedNeighborsCoeff*int(self.contracted_neighbours[node_id]) +
		self.params.SearchSpaceCoeff*int(self.node_depths[node_id])
}

// Collects the uncontracted in- and out-neighbours of node_id together
// with the cheapest connecting edge weight.
func (self *NodeContractor) _FindNeighbours(node_id int32) ([]_Neighbour, []_Neighbour) {
	out_neigbours := make([]_Neighbour, 0, 4)
	self.explorer.ForAdjacentEdges(node_id, graph.FORWARD, func(ref graph.EdgeRef) {
		other_id := ref.OtherID
		if other_id == node_id || self.is_contracted[other_id] {
			return
		}
		weight := self.explorer.GetEdgeWeight(ref)
		for i, nb := range out_neigbours {
			if nb.node == other_id {
				if weight < nb.weight {
					out_neigbours[i].weight = weight
				}
				return
			}
		}
		out_neigbours = append(out_neigbours, _Neighbour{node: other_id, weight: weight})
	})

	in_neigbours := make([]_Neighbour, 0, 4)
	self.explorer.ForAdjacentEdges(node_id, graph.BACKWARD, func(ref graph.EdgeRef) {
		other_id := ref.OtherID
		if other_id == node_id || self.is_contracted[other_id] {
			return
		}
		weight := self.explorer.GetEdgeWeight(ref)
		for i, nb := range in_neigbours {
			if nb.node == other_id {
				if weight < nb.weight {
					in_neigbours[i].weight = weight
				}
				return
			}
		}
		in_neigbours = append(in_neigbours, _Neighbour{node: other_id, weight: weight})
	})

	return in_neigbours, out_neigbours
}

func (self *NodeContractor) _MaxPairWeight(from _Neighbour, out_neigbours []_Neighbour) float64 {
	max_weight := 0.0
	for _, to := range out_neigbours {
		if to.node == from.node {
			continue
		}
		if from.weight+to.weight > max_weight {
			max_weight = from.weight + to.weight
		}
	}
	return max_weight
}

// Captures the two child edges a shortcut from -> via -> to collapses.
func (self *NodeContractor) _ShortcutEdges(from, via, to int32) [2]Tuple[int32, byte] {
	edges := [2]Tuple[int32, byte]{}
	f_edge, _, ok := self.explorer.GetMinEdgeBetween(from, via)
	if !ok {
		panic("missing edge between in-neighbour and contracted node")
	}
	edges[0] = _ChildRef(f_edge)
	t_edge, _, ok := self.explorer.GetMinEdgeBetween(via, to)
	if !ok {
		panic("missing edge between contracted node and out-neighbour")
	}
	edges[1] = _ChildRef(t_edge)
	return edges
}

func _ChildRef(edge graph.EdgeRef) Tuple[int32, byte] {
	if edge.IsShortcut() {
		return MakeTuple(edge.EdgeID, structs.CHILD_SHORTCUT)
	}
	return MakeTuple(edge.EdgeID, structs.CHILD_EDGE)
}
