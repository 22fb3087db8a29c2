package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityQueueOrder(t *testing.T) {
	queue := NewPriorityQueue[int32, float64](10)
	queue.Enqueue(1, 3.0)
	queue.Enqueue(2, 1.0)
	queue.Enqueue(3, 2.0)

	node, ok := queue.Dequeue()
	assert.True(t, ok)
	assert.Equal(t, int32(2), node)
	node, _ = queue.Dequeue()
	assert.Equal(t, int32(3), node)
	node, _ = queue.Dequeue()
	assert.Equal(t, int32(1), node)
	_, ok = queue.Dequeue()
	assert.False(t, ok)
}

func TestPriorityQueueTieBreaking(t *testing.T) {
	// equal priorities dequeue in insertion order
	queue := NewPriorityQueue[int32, float64](10)
	for i := int32(0); i < 20; i++ {
		queue.Enqueue(i, 5.0)
	}
	for i := int32(0); i < 20; i++ {
		node, ok := queue.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, i, node)
	}
}

func TestPriorityQueuePeek(t *testing.T) {
	queue := NewPriorityQueue[int32, float64](10)
	_, ok := queue.PeekPriority()
	assert.False(t, ok)

	queue.Enqueue(7, 2.5)
	queue.Enqueue(8, 1.5)
	prio, ok := queue.PeekPriority()
	assert.True(t, ok)
	assert.Equal(t, 1.5, prio)
	node, ok := queue.Peek()
	assert.True(t, ok)
	assert.Equal(t, int32(8), node)
	assert.Equal(t, 2, queue.Len())

	queue.Clear()
	assert.Equal(t, 0, queue.Len())
}

func TestFlagsReset(t *testing.T) {
	flags := NewFlags[int](5, -1)
	*flags.Get(2) = 42
	assert.True(t, flags.IsSet(2))
	assert.False(t, flags.IsSet(3))
	assert.Equal(t, 42, *flags.Get(2))

	flags.Reset()
	assert.False(t, flags.IsSet(2))
	assert.Equal(t, -1, *flags.Get(2))
}
