package comps

import (
	"github.com/daho94/chroute/geo"
	"github.com/daho94/chroute/structs"
	. "github.com/daho94/chroute/util"
)

//*******************************************
// graph base interface
//*******************************************

type IGraphBase interface {
	NodeCount() int
	EdgeCount() int
	GetNode(node int32) structs.Node
	IsNode(node int32) bool
	GetEdge(edge int32) structs.Edge
	IsEdge(edge int32) bool
	GetNodeGeom(node int32) geo.Coord
	GetAccessor() structs.IAdjAccessor
	GetNodeDegree(node int32, forward bool) int16
}

//*******************************************
// graph base
//*******************************************

var _ IGraphBase = &GraphBase{}

// Node table plus edge arena with per-node adjacency vectors. Mutable
// while the graph is being built; the contractor only appends shortcuts
// to its own topology, the base stays fixed from then on.
type GraphBase struct {
	nodes    List[structs.Node]
	edges    List[structs.Edge]
	topology structs.AdjacencyList
}

func NewGraphBase() *GraphBase {
	return &GraphBase{
		nodes:    NewList[structs.Node](100),
		edges:    NewList[structs.Edge](100),
		topology: structs.NewAdjacencyList(0),
	}
}

func NewGraphBaseFrom(nodes Array[structs.Node], edges Array[structs.Edge]) *GraphBase {
	topology := structs.NewAdjacencyList(nodes.Length())
	for i := 0; i < edges.Length(); i++ {
		edge := edges[i]
		topology.AddEdgeEntries(edge.NodeA, edge.NodeB, int32(i))
	}
	return &GraphBase{
		nodes:    List[structs.Node](nodes),
		edges:    List[structs.Edge](edges),
		topology: topology,
	}
}

func (self *GraphBase) NodeCount() int {
	return self.nodes.Length()
}
func (self *GraphBase) EdgeCount() int {
	return self.edges.Length()
}
func (self *GraphBase) IsNode(node int32) bool {
	return node >= 0 && node < int32(self.nodes.Length())
}
func (self *GraphBase) GetNode(node int32) structs.Node {
	return self.nodes[node]
}
func (self *GraphBase) IsEdge(edge int32) bool {
	return edge >= 0 && edge < int32(self.edges.Length())
}
func (self *GraphBase) GetEdge(edge int32) structs.Edge {
	return self.edges[edge]
}
func (self *GraphBase) GetNodeGeom(node int32) geo.Coord {
	return self.nodes[node].Loc
}
func (self *GraphBase) GetAccessor() structs.IAdjAccessor {
	accessor := self.topology.GetAccessor()
	return &accessor
}
func (self *GraphBase) GetNodeDegree(node int32, forward bool) int16 {
	return self.topology.GetDegree(node, forward)
}

//*******************************************
// modification methods
//*******************************************

// Appends a node and returns its dense id.
func (self *GraphBase) AddNode(node structs.Node) int32 {
	id := int32(self.nodes.Length())
	self.nodes.Add(node)
	self.topology.AddNodeEntry()
	return id
}

// Appends the directed edge node_a -> node_b and returns its id. Callers
// are expected to have validated both endpoints.
func (self *GraphBase) AddEdge(node_a, node_b int32) int32 {
	id := int32(self.edges.Length())
	self.edges.Add(structs.Edge{NodeA: node_a, NodeB: node_b})
	self.topology.AddEdgeEntries(node_a, node_b, id)
	return id
}

//*******************************************
// encode and decode
//*******************************************

func (self *GraphBase) Encode(writer BufferWriter) {
	node_count := self.nodes.Length()
	Write[int32](writer, int32(node_count))
	for i := 0; i < node_count; i++ {
		loc := self.nodes[i].Loc
		Write[float32](writer, loc[0])
		Write[float32](writer, loc[1])
	}
	edge_count := self.edges.Length()
	Write[int32](writer, int32(edge_count))
	for i := 0; i < edge_count; i++ {
		edge := self.edges[i]
		Write[int32](writer, edge.NodeA)
		Write[int32](writer, edge.NodeB)
	}
}

func DecodeGraphBase(reader BufferReader) *GraphBase {
	node_count := int(Read[int32](reader))
	nodes := NewArray[structs.Node](node_count)
	for i := 0; i < node_count; i++ {
		lon := Read[float32](reader)
		lat := Read[float32](reader)
		nodes[i] = structs.Node{Loc: geo.Coord{lon, lat}}
	}
	edge_count := int(Read[int32](reader))
	edges := NewArray[structs.Edge](edge_count)
	for i := 0; i < edge_count; i++ {
		node_a := Read[int32](reader)
		node_b := Read[int32](reader)
		edges[i] = structs.Edge{NodeA: node_a, NodeB: node_b}
	}
	return NewGraphBaseFrom(nodes, edges)
}
