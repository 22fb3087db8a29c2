package structs

import (
	. "github.com/daho94/chroute/util"
)

//*******************************************
// shortcut store
//*******************************************

// Child-edge type markers stored alongside every shortcut.
const (
	CHILD_EDGE     byte = 0
	CHILD_SHORTCUT byte = 2
)

// Arena of shortcut edges. Every shortcut references the two edges it
// collapses as (id, type) pairs; a child may itself be a shortcut, so
// unpacking is recursive. Ids are stable for the lifetime of the store.
type ShortcutStore struct {
	shortcuts List[Shortcut]
	edge_refs List[[2]Tuple[int32, byte]]
}

func NewShortcutStore(cap int) ShortcutStore {
	return ShortcutStore{
		shortcuts: NewList[Shortcut](cap),
		edge_refs: NewList[[2]Tuple[int32, byte]](cap),
	}
}

// Appends a shortcut together with its two child edges. edges[0] is the
// (u,v) edge, edges[1] the (v,w) edge, both in forward direction.
func (self *ShortcutStore) AddCHShortcut(shc Shortcut, edges [2]Tuple[int32, byte]) int32 {
	shc_id := int32(self.shortcuts.Length())
	self.shortcuts.Add(shc)
	self.edge_refs.Add(edges)
	return shc_id
}

// Overwrites an existing shortcut in place, keeping its id.
func (self *ShortcutStore) ReplaceCHShortcut(shc_id int32, shc Shortcut, edges [2]Tuple[int32, byte]) {
	self.shortcuts[shc_id] = shc
	self.edge_refs[shc_id] = edges
}

func (self *ShortcutStore) ShortcutCount() int {
	return self.shortcuts.Length()
}

func (self *ShortcutStore) GetShortcut(shc_id int32) Shortcut {
	return self.shortcuts[shc_id]
}

// Recursively resolves a shortcut into the base-edge ids it represents.
// With reversed=false edges are emitted in path order u -> ... -> w,
// otherwise in reverse.
func (self *ShortcutStore) GetEdgesFromShortcut(shc_id int32, reversed bool, handler func(int32)) {
	refs := self.edge_refs[shc_id]
	if reversed {
		self._ResolveChild(refs[1], reversed, handler)
		self._ResolveChild(refs[0], reversed, handler)
	} else {
		self._ResolveChild(refs[0], reversed, handler)
		self._ResolveChild(refs[1], reversed, handler)
	}
}

func (self *ShortcutStore) _ResolveChild(ref Tuple[int32, byte], reversed bool, handler func(int32)) {
	if ref.B == CHILD_SHORTCUT {
		self.GetEdgesFromShortcut(ref.A, reversed, handler)
	} else {
		handler(ref.A)
	}
}

//*******************************************
// encode and decode
//*******************************************

func (self *ShortcutStore) Encode(writer BufferWriter) {
	count := self.shortcuts.Length()
	Write[int32](writer, int32(count))
	for i := 0; i < count; i++ {
		shc := self.shortcuts[i]
		refs := self.edge_refs[i]
		Write[int32](writer, shc.From)
		Write[int32](writer, shc.To)
		Write[float64](writer, shc.Weight)
		Write[int32](writer, refs[0].A)
		Write[byte](writer, refs[0].B)
		Write[int32](writer, refs[1].A)
		Write[byte](writer, refs[1].B)
	}
}

func DecodeShortcutStore(reader BufferReader) ShortcutStore {
	count := int(Read[int32](reader))
	store := NewShortcutStore(count)
	for i := 0; i < count; i++ {
		from := Read[int32](reader)
		to := Read[int32](reader)
		weight := Read[float64](reader)
		var refs [2]Tuple[int32, byte]
		refs[0].A = Read[int32](reader)
		refs[0].B = Read[byte](reader)
		refs[1].A = Read[int32](reader)
		refs[1].B = Read[byte](reader)
		store.AddCHShortcut(Shortcut{From: from, To: to, Weight: weight}, refs)
	}
	return store
}
