package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/daho94/chroute/util"
)

func _CollectEdges(accessor IAdjAccessor, node int32, forward bool) []int32 {
	edges := make([]int32, 0)
	accessor.SetBaseNode(node, forward)
	for accessor.Next() {
		edges = append(edges, accessor.GetEdgeID())
	}
	return edges
}

func TestAdjacencyList(t *testing.T) {
	adjacency := NewAdjacencyList(3)
	adjacency.AddEdgeEntries(0, 1, 0)
	adjacency.AddEdgeEntries(0, 2, 1)
	adjacency.AddEdgeEntries(1, 2, 2)

	assert.Equal(t, int16(2), adjacency.GetDegree(0, true))
	assert.Equal(t, int16(0), adjacency.GetDegree(0, false))
	assert.Equal(t, int16(2), adjacency.GetDegree(2, false))

	accessor := adjacency.GetAccessor()
	assert.Equal(t, []int32{0, 1}, _CollectEdges(&accessor, 0, true))
	assert.Equal(t, []int32{1, 2}, _CollectEdges(&accessor, 2, false))
}

func TestAdjacencyListToArray(t *testing.T) {
	adjacency := NewAdjacencyList(4)
	adjacency.AddEdgeEntries(0, 1, 0)
	adjacency.AddEdgeEntries(1, 2, 1)
	adjacency.AddEdgeEntries(1, 3, 2)
	adjacency.AddEdgeEntries(3, 0, 3)

	array := AdjacencyListToArray(&adjacency)
	require.Equal(t, 4, array.NodeCount())

	list_accessor := adjacency.GetAccessor()
	array_accessor := array.GetAccessor()
	for node := int32(0); node < 4; node++ {
		for _, forward := range []bool{true, false} {
			assert.Equal(t, adjacency.GetDegree(node, forward), array.GetDegree(node, forward))
			assert.Equal(t,
				_CollectEdges(&list_accessor, node, forward),
				_CollectEdges(&array_accessor, node, forward))
		}
	}
}

func TestShortcutStoreUnpacking(t *testing.T) {
	store := NewShortcutStore(10)

	// base edges 0: a->b, 1: b->c, 2: c->d
	sh_ab_c := store.AddCHShortcut(NewShortcut(0, 2, 2), [2]Tuple[int32, byte]{
		MakeTuple(int32(0), CHILD_EDGE),
		MakeTuple(int32(1), CHILD_EDGE),
	})
	sh_ab_cd := store.AddCHShortcut(NewShortcut(0, 3, 3), [2]Tuple[int32, byte]{
		MakeTuple(sh_ab_c, CHILD_SHORTCUT),
		MakeTuple(int32(2), CHILD_EDGE),
	})

	unpacked := make([]int32, 0)
	store.GetEdgesFromShortcut(sh_ab_cd, false, func(edge int32) {
		unpacked = append(unpacked, edge)
	})
	assert.Equal(t, []int32{0, 1, 2}, unpacked)

	unpacked = unpacked[:0]
	store.GetEdgesFromShortcut(sh_ab_cd, true, func(edge int32) {
		unpacked = append(unpacked, edge)
	})
	assert.Equal(t, []int32{2, 1, 0}, unpacked)
}

func TestShortcutStoreRoundTrip(t *testing.T) {
	store := NewShortcutStore(10)
	store.AddCHShortcut(NewShortcut(1, 2, 4.5), [2]Tuple[int32, byte]{
		MakeTuple(int32(3), CHILD_EDGE),
		MakeTuple(int32(4), CHILD_EDGE),
	})
	store.AddCHShortcut(NewShortcut(2, 5, 7.25), [2]Tuple[int32, byte]{
		MakeTuple(int32(0), CHILD_SHORTCUT),
		MakeTuple(int32(6), CHILD_EDGE),
	})

	writer := NewBufferWriter()
	store.Encode(writer)
	decoded := DecodeShortcutStore(NewBufferReader(writer.Bytes()))

	require.Equal(t, store.ShortcutCount(), decoded.ShortcutCount())
	for i := int32(0); i < int32(store.ShortcutCount()); i++ {
		assert.Equal(t, store.GetShortcut(i), decoded.GetShortcut(i))
	}
}
