package comps

import (
	"github.com/daho94/chroute/structs"
	. "github.com/daho94/chroute/util"
)

//*******************************************
// ch-data
//*******************************************

func NewCH(shortcuts structs.ShortcutStore, topology structs.AdjacencyArray, node_levels Array[int32]) *CH {
	return &CH{
		shortcuts:   shortcuts,
		topology:    topology,
		node_levels: node_levels,
	}
}

// Result of the contraction: the shortcut arena, the frozen shortcut
// topology and the level of every node. Immutable after creation.
type CH struct {
	shortcuts   structs.ShortcutStore
	topology    structs.AdjacencyArray
	node_levels Array[int32]
}

func (self *CH) GetNodeLevel(node int32) int32 {
	return self.node_levels[node]
}
func (self *CH) NodeCount() int {
	return self.node_levels.Length()
}
func (self *CH) ShortcutCount() int {
	return self.shortcuts.ShortcutCount()
}
func (self *CH) GetShortcut(shc_id int32) structs.Shortcut {
	return self.shortcuts.GetShortcut(shc_id)
}
func (self *CH) GetEdgesFromShortcut(shc_id int32, reversed bool, handler func(int32)) {
	self.shortcuts.GetEdgesFromShortcut(shc_id, reversed, handler)
}
func (self *CH) GetShortcutAccessor() structs.IAdjAccessor {
	accessor := self.topology.GetAccessor()
	return &accessor
}

//*******************************************
// encode and decode
//*******************************************

func (self *CH) Encode(writer BufferWriter) {
	self.shortcuts.Encode(writer)
	self.topology.Encode(writer)
	WriteArray[int32](writer, self.node_levels)
}

func DecodeCH(reader BufferReader) *CH {
	shortcuts := structs.DecodeShortcutStore(reader)
	topology := structs.DecodeAdjacencyArray(reader)
	node_levels := ReadArray[int32](reader)
	return &CH{
		shortcuts:   shortcuts,
		topology:    *topology,
		node_levels: node_levels,
	}
}
