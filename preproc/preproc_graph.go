package preproc

import (
	"math"

	"github.com/daho94/chroute/comps"
	"github.com/daho94/chroute/graph"
	"github.com/daho94/chroute/structs"
	. "github.com/daho94/chroute/util"
)

//*******************************************
// preprocessing graph
//*******************************************

// Working view used during contraction: the immutable base graph plus the
// growing shortcut overlay and the level vector.
type CHPreprocGraph struct {
	// added attributes to build ch
	ch_topology structs.AdjacencyList
	node_levels Array[int32]
	shortcuts   structs.ShortcutStore

	// underlying base graph
	base   comps.IGraphBase
	weight comps.IWeighting
}

func TransformToCHPreprocGraph(base comps.IGraphBase, weight comps.IWeighting) *CHPreprocGraph {
	return &CHPreprocGraph{
		ch_topology: structs.NewAdjacencyList(base.NodeCount()),
		node_levels: NewArray[int32](base.NodeCount()),
		shortcuts:   structs.NewShortcutStore(100),
		base:        base,
		weight:      weight,
	}
}

func TransformToCHData(g *CHPreprocGraph) *comps.CH {
	return comps.NewCH(g.shortcuts, *structs.AdjacencyListToArray(&g.ch_topology), g.node_levels)
}

func (self *CHPreprocGraph) GetExplorer() *CHPreprocGraphExplorer {
	return &CHPreprocGraphExplorer{
		graph:       self,
		accessor:    self.base.GetAccessor(),
		sh_accessor: self.ch_topology.GetAccessor(),
	}
}
func (self *CHPreprocGraph) NodeCount() int {
	return self.base.NodeCount()
}
func (self *CHPreprocGraph) EdgeCount() int {
	return self.base.EdgeCount()
}
func (self *CHPreprocGraph) GetShortcut(shc_id int32) structs.Shortcut {
	return self.shortcuts.GetShortcut(shc_id)
}
func (self *CHPreprocGraph) ShortcutCount() int {
	return self.shortcuts.ShortcutCount()
}
func (self *CHPreprocGraph) GetWeight(edge_id int32, is_shortcut bool) float64 {
	if is_shortcut {
		return self.shortcuts.GetShortcut(edge_id).Weight
	}
	return self.weight.GetEdgeWeight(edge_id)
}
func (self *CHPreprocGraph) GetNodeLevel(node int32) int32 {
	return self.node_levels[node]
}
func (self *CHPreprocGraph) SetNodeLevel(node int32, level int32) {
	self.node_levels[node] = level
}

// Inserts the shortcut node_a -> node_b unless a parallel shortcut with
// smaller weight already exists; a parallel shortcut with greater or
// equal weight is replaced in place.
func (self *CHPreprocGraph) AddShortcut(node_a, node_b int32, weight float64, edges [2]Tuple[int32, byte]) int32 {
	if node_a == node_b {
		return -1
	}

	shc := structs.NewShortcut(node_a, node_b, weight)

	accessor := self.ch_topology.GetAccessor()
	accessor.SetBaseNode(node_a, true)
	for accessor.Next() {
		if accessor.GetOtherID() != node_b {
			continue
		}
		shc_id := accessor.GetEdgeID()
		if self.shortcuts.GetShortcut(shc_id).Weight >= weight {
			self.shortcuts.ReplaceCHShortcut(shc_id, shc, edges)
		}
		return shc_id
	}

	shc_id := self.shortcuts.AddCHShortcut(shc, edges)
	self.ch_topology.AddEdgeEntries(node_a, node_b, shc_id)
	return shc_id
}

//*******************************************
// preprocessing graph explorer
//*******************************************

type CHPreprocGraphExplorer struct {
	graph       *CHPreprocGraph
	accessor    structs.IAdjAccessor
	sh_accessor structs.AdjListAccessor
}

func (self *CHPreprocGraphExplorer) ForAdjacentEdges(node int32, direction graph.Direction, callback func(graph.EdgeRef)) {
	self.accessor.SetBaseNode(node, direction == graph.FORWARD)
	for self.accessor.Next() {
		callback(graph.EdgeRef{
			EdgeID:  self.accessor.GetEdgeID(),
			OtherID: self.accessor.GetOtherID(),
			Type:    0,
		})
	}
	self.sh_accessor.SetBaseNode(node, direction == graph.FORWARD)
	for self.sh_accessor.Next() {
		callback(graph.EdgeRef{
			EdgeID:  self.sh_accessor.GetEdgeID(),
			OtherID: self.sh_accessor.GetOtherID(),
			Type:    100,
		})
	}
}

func (self *CHPreprocGraphExplorer) GetEdgeWeight(edge graph.EdgeRef) float64 {
	return self.graph.GetWeight(edge.EdgeID, edge.IsShortcut())
}

// Returns the cheapest edge or shortcut from -> to together with its
// weight.
func (self *CHPreprocGraphExplorer) GetMinEdgeBetween(from, to int32) (graph.EdgeRef, float64, bool) {
	min_weight := math.Inf(1)
	min_edge := graph.EdgeRef{}
	found := false

	self.accessor.SetBaseNode(from, true)
	for self.accessor.Next() {
		if self.accessor.GetOtherID() != to {
			continue
		}
		weight := self.graph.GetWeight(self.accessor.GetEdgeID(), false)
		if weight < min_weight {
			min_weight = weight
			min_edge = graph.EdgeRef{EdgeID: self.accessor.GetEdgeID(), OtherID: to, Type: 0}
			found = true
		}
	}
	self.sh_accessor.SetBaseNode(from, true)
	for self.sh_accessor.Next() {
		if self.sh_accessor.GetOtherID() != to {
			continue
		}
		weight := self.graph.GetWeight(self.sh_accessor.GetEdgeID(), true)
		if weight < min_weight {
			min_weight = weight
			min_edge = graph.EdgeRef{EdgeID: self.sh_accessor.GetEdgeID(), OtherID: to, Type: 100}
			found = true
		}
	}

	return min_edge, min_weight, found
}
