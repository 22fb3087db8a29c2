package structs

import (
	. "github.com/daho94/chroute/util"
)

//*******************************************
// adjacency interfaces
//*******************************************

type IAdjAccessor interface {
	SetBaseNode(node int32, forward bool)
	Next() bool
	GetEdgeID() int32
	GetOtherID() int32
}

type _AdjEntry struct {
	EdgeID  int32
	OtherID int32
}

//*******************************************
// adjacency list (mutable)
//*******************************************

// Per-node adjacency vectors used while the graph is still mutable.
type AdjacencyList struct {
	fwd_entries []List[_AdjEntry]
	bwd_entries []List[_AdjEntry]
}

func NewAdjacencyList(node_count int) AdjacencyList {
	fwd_entries := make([]List[_AdjEntry], node_count)
	bwd_entries := make([]List[_AdjEntry], node_count)
	for i := 0; i < node_count; i++ {
		fwd_entries[i] = NewList[_AdjEntry](4)
		bwd_entries[i] = NewList[_AdjEntry](4)
	}
	return AdjacencyList{
		fwd_entries: fwd_entries,
		bwd_entries: bwd_entries,
	}
}

func (self *AdjacencyList) NodeCount() int {
	return len(self.fwd_entries)
}

// Grows the adjacency by one node.
func (self *AdjacencyList) AddNodeEntry() {
	self.fwd_entries = append(self.fwd_entries, NewList[_AdjEntry](4))
	self.bwd_entries = append(self.bwd_entries, NewList[_AdjEntry](4))
}

// Registers the directed edge node_a -> node_b in both the forward
// adjacency of node_a and the backward adjacency of node_b.
func (self *AdjacencyList) AddEdgeEntries(node_a, node_b, edge_id int32) {
	self.fwd_entries[node_a].Add(_AdjEntry{EdgeID: edge_id, OtherID: node_b})
	self.bwd_entries[node_b].Add(_AdjEntry{EdgeID: edge_id, OtherID: node_a})
}

func (self *AdjacencyList) GetDegree(node int32, forward bool) int16 {
	if forward {
		return int16(self.fwd_entries[node].Length())
	}
	return int16(self.bwd_entries[node].Length())
}

func (self *AdjacencyList) GetAccessor() AdjListAccessor {
	return AdjListAccessor{
		adjacency: self,
	}
}

type AdjListAccessor struct {
	adjacency *AdjacencyList
	entries   List[_AdjEntry]
	index     int
}

func (self *AdjListAccessor) SetBaseNode(node int32, forward bool) {
	if forward {
		self.entries = self.adjacency.fwd_entries[node]
	} else {
		self.entries = self.adjacency.bwd_entries[node]
	}
	self.index = -1
}
func (self *AdjListAccessor) Next() bool {
	self.index += 1
	return self.index < self.entries.Length()
}
func (self *AdjListAccessor) GetEdgeID() int32 {
	return self.entries[self.index].EdgeID
}
func (self *AdjListAccessor) GetOtherID() int32 {
	return self.entries[self.index].OtherID
}

//*******************************************
// adjacency array (frozen)
//*******************************************

// CSR layout of an adjacency, built once after mutation has finished.
type AdjacencyArray struct {
	fwd_offsets Array[int32]
	fwd_entries Array[_AdjEntry]
	bwd_offsets Array[int32]
	bwd_entries Array[_AdjEntry]
}

func AdjacencyListToArray(adjacency *AdjacencyList) *AdjacencyArray {
	node_count := adjacency.NodeCount()
	fwd_offsets := NewArray[int32](node_count + 1)
	bwd_offsets := NewArray[int32](node_count + 1)
	fwd_count := 0
	bwd_count := 0
	for i := 0; i < node_count; i++ {
		fwd_offsets[i] = int32(fwd_count)
		bwd_offsets[i] = int32(bwd_count)
		fwd_count += adjacency.fwd_entries[i].Length()
		bwd_count += adjacency.bwd_entries[i].Length()
	}
	fwd_offsets[node_count] = int32(fwd_count)
	bwd_offsets[node_count] = int32(bwd_count)

	fwd_entries := NewArray[_AdjEntry](fwd_count)
	bwd_entries := NewArray[_AdjEntry](bwd_count)
	fwd_count = 0
	bwd_count = 0
	for i := 0; i < node_count; i++ {
		for _, entry := range adjacency.fwd_entries[i] {
			fwd_entries[fwd_count] = entry
			fwd_count += 1
		}
		for _, entry := range adjacency.bwd_entries[i] {
			bwd_entries[bwd_count] = entry
			bwd_count += 1
		}
	}

	return &AdjacencyArray{
		fwd_offsets: fwd_offsets,
		fwd_entries: fwd_entries,
		bwd_offsets: bwd_offsets,
		bwd_entries: bwd_entries,
	}
}

func (self *AdjacencyArray) NodeCount() int {
	return self.fwd_offsets.Length() - 1
}

func (self *AdjacencyArray) GetDegree(node int32, forward bool) int16 {
	if forward {
		return int16(self.fwd_offsets[node+1] - self.fwd_offsets[node])
	}
	return int16(self.bwd_offsets[node+1] - self.bwd_offsets[node])
}

func (self *AdjacencyArray) GetAccessor() AdjArrayAccessor {
	return AdjArrayAccessor{
		adjacency: self,
	}
}

type AdjArrayAccessor struct {
	adjacency *AdjacencyArray
	entries   Array[_AdjEntry]
	index     int
	end       int
}

func (self *AdjArrayAccessor) SetBaseNode(node int32, forward bool) {
	if forward {
		self.entries = self.adjacency.fwd_entries
		self.index = int(self.adjacency.fwd_offsets[node]) - 1
		self.end = int(self.adjacency.fwd_offsets[node+1])
	} else {
		self.entries = self.adjacency.bwd_entries
		self.index = int(self.adjacency.bwd_offsets[node]) - 1
		self.end = int(self.adjacency.bwd_offsets[node+1])
	}
}
func (self *AdjArrayAccessor) Next() bool {
	self.index += 1
	return self.index < self.end
}
func (self *AdjArrayAccessor) GetEdgeID() int32 {
	return self.entries[self.index].EdgeID
}
func (self *AdjArrayAccessor) GetOtherID() int32 {
	return self.entries[self.index].OtherID
}

//*******************************************
// encode and decode
//*******************************************

func (self *AdjacencyArray) Encode(writer BufferWriter) {
	WriteArray[int32](writer, self.fwd_offsets)
	WriteArray[_AdjEntry](writer, self.fwd_entries)
	WriteArray[int32](writer, self.bwd_offsets)
	WriteArray[_AdjEntry](writer, self.bwd_entries)
}

func DecodeAdjacencyArray(reader BufferReader) *AdjacencyArray {
	fwd_offsets := ReadArray[int32](reader)
	fwd_entries := ReadArray[_AdjEntry](reader)
	bwd_offsets := ReadArray[int32](reader)
	bwd_entries := ReadArray[_AdjEntry](reader)
	return &AdjacencyArray{
		fwd_offsets: fwd_offsets,
		fwd_entries: fwd_entries,
		bwd_offsets: bwd_offsets,
		bwd_entries: bwd_entries,
	}
}
