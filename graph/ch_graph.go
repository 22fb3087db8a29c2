package graph

import (
	"sync"

	"github.com/daho94/chroute/comps"
	"github.com/daho94/chroute/geo"
	"github.com/daho94/chroute/structs"
)

//*******************************************
// ch-graph interface
//******************************************

type ICHGraph interface {
	// Base IGraph
	GetGraphExplorer() IGraphExplorer
	NodeCount() int
	EdgeCount() int
	IsNode(node int32) bool
	GetNode(node int32) structs.Node
	GetEdge(edge int32) structs.Edge
	GetNodeGeom(node int32) geo.Coord
	GetClosestNode(point geo.Coord) (int32, bool)

	// CH specific
	GetNodeLevel(node int32) int32
	ShortcutCount() int
	GetShortcut(shortcut int32) structs.Shortcut
	GetEdgesFromShortcut(shortcut int32, reversed bool, handler func(int32))
}

//*******************************************
// ch-graph
//******************************************

var _ ICHGraph = &CHGraph{}

// Read-only level-annotated view over the contracted graph. Safe for
// concurrent use; every search owns its own explorer.
type CHGraph struct {
	base   comps.IGraphBase
	weight comps.IWeighting
	index  comps.IGraphIndex

	index_once sync.Once

	ch *comps.CH
}

func (self *CHGraph) GetGraphExplorer() IGraphExplorer {
	return &CHGraphExplorer{
		graph:       self,
		accessor:    self.base.GetAccessor(),
		sh_accessor: self.ch.GetShortcutAccessor(),
		weight:      self.weight,
	}
}
func (self *CHGraph) NodeCount() int {
	return self.base.NodeCount()
}
func (self *CHGraph) EdgeCount() int {
	return self.base.EdgeCount()
}
func (self *CHGraph) IsNode(node int32) bool {
	return self.base.IsNode(node)
}
func (self *CHGraph) GetNode(node int32) structs.Node {
	return self.base.GetNode(node)
}
func (self *CHGraph) GetEdge(edge int32) structs.Edge {
	return self.base.GetEdge(edge)
}
func (self *CHGraph) GetNodeGeom(node int32) geo.Coord {
	return self.base.GetNode(node).Loc
}
func (self *CHGraph) GetClosestNode(point geo.Coord) (int32, bool) {
	self.index_once.Do(func() {
		if self.index == nil {
			self.index = comps.NewGraphIndex(self.base)
		}
	})
	return self.index.GetClosestNode(point)
}
func (self *CHGraph) GetNodeLevel(node int32) int32 {
	return self.ch.GetNodeLevel(node)
}
func (self *CHGraph) ShortcutCount() int {
	return self.ch.ShortcutCount()
}
func (self *CHGraph) GetShortcut(shortcut int32) structs.Shortcut {
	return self.ch.GetShortcut(shortcut)
}
func (self *CHGraph) GetEdgesFromShortcut(shortcut int32, reversed bool, handler func(int32)) {
	self.ch.GetEdgesFromShortcut(shortcut, reversed, handler)
}

//*******************************************
// ch-graph explorer
//******************************************

type CHGraphExplorer struct {
	graph       *CHGraph
	accessor    structs.IAdjAccessor
	sh_accessor structs.IAdjAccessor
	weight      comps.IWeighting
}

func (self *CHGraphExplorer) ForAdjacentEdges(node int32, direction Direction, typ Adjacency, callback func(EdgeRef)) {
	if typ == ADJACENT_ALL {
		self.accessor.SetBaseNode(node, direction == FORWARD)
		for self.accessor.Next() {
			callback(EdgeRef{
				EdgeID:  self.accessor.GetEdgeID(),
				OtherID: self.accessor.GetOtherID(),
				Type:    0,
			})
		}
		self.sh_accessor.SetBaseNode(node, direction == FORWARD)
		for self.sh_accessor.Next() {
			callback(EdgeRef{
				EdgeID:  self.sh_accessor.GetEdgeID(),
				OtherID: self.sh_accessor.GetOtherID(),
				Type:    100,
			})
		}
	} else if typ == ADJACENT_EDGES {
		self.accessor.SetBaseNode(node, direction == FORWARD)
		for self.accessor.Next() {
			callback(EdgeRef{
				EdgeID:  self.accessor.GetEdgeID(),
				OtherID: self.accessor.GetOtherID(),
				Type:    0,
			})
		}
	} else if typ == ADJACENT_SHORTCUTS {
		self.sh_accessor.SetBaseNode(node, direction == FORWARD)
		for self.sh_accessor.Next() {
			callback(EdgeRef{
				EdgeID:  self.sh_accessor.GetEdgeID(),
				OtherID: self.sh_accessor.GetOtherID(),
				Type:    100,
			})
		}
	} else if typ == ADJACENT_UPWARDS {
		this_level := self.graph.GetNodeLevel(node)
		self.accessor.SetBaseNode(node, direction == FORWARD)
		for self.accessor.Next() {
			other_id := self.accessor.GetOtherID()
			if self.graph.GetNodeLevel(other_id) <= this_level {
				continue
			}
			callback(EdgeRef{
				EdgeID:  self.accessor.GetEdgeID(),
				OtherID: other_id,
				Type:    0,
			})
		}
		self.sh_accessor.SetBaseNode(node, direction == FORWARD)
		for self.sh_accessor.Next() {
			other_id := self.sh_accessor.GetOtherID()
			if self.graph.GetNodeLevel(other_id) <= this_level {
				continue
			}
			callback(EdgeRef{
				EdgeID:  self.sh_accessor.GetEdgeID(),
				OtherID: other_id,
				Type:    100,
			})
		}
	} else if typ == ADJACENT_DOWNWARDS {
		this_level := self.graph.GetNodeLevel(node)
		self.accessor.SetBaseNode(node, direction == FORWARD)
		for self.accessor.Next() {
			other_id := self.accessor.GetOtherID()
			if self.graph.GetNodeLevel(other_id) >= this_level {
				continue
			}
			callback(EdgeRef{
				EdgeID:  self.accessor.GetEdgeID(),
				OtherID: other_id,
				Type:    0,
			})
		}
		self.sh_accessor.SetBaseNode(node, direction == FORWARD)
		for self.sh_accessor.Next() {
			other_id := self.sh_accessor.GetOtherID()
			if self.graph.GetNodeLevel(other_id) >= this_level {
				continue
			}
			callback(EdgeRef{
				EdgeID:  self.sh_accessor.GetEdgeID(),
				OtherID: other_id,
				Type:    100,
			})
		}
	} else {
		panic("Adjacency-type not implemented for this graph.")
	}
}
func (self *CHGraphExplorer) GetEdgeWeight(edge EdgeRef) float64 {
	if edge.IsShortcut() {
		return self.graph.ch.GetShortcut(edge.EdgeID).Weight
	}
	return self.weight.GetEdgeWeight(edge.EdgeID)
}
func (self *CHGraphExplorer) GetOtherNode(edge EdgeRef, node int32) int32 {
	if edge.IsShortcut() {
		e := self.graph.GetShortcut(edge.EdgeID)
		if node == e.From {
			return e.To
		}
		if node == e.To {
			return e.From
		}
		return -1
	}
	e := self.graph.GetEdge(edge.EdgeID)
	if node == e.NodeA {
		return e.NodeB
	}
	if node == e.NodeB {
		return e.NodeA
	}
	return -1
}
