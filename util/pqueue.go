package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type _PQItem[N any, W constraints.Ordered] struct {
	node N
	prio W
	seq  int64
}

// Binary min-heap keyed by priority.
//
// Ties are broken by insertion sequence, which keeps dequeue order
// deterministic as long as items are enqueued in a deterministic order.
// Stale entries are tolerated; callers skip them on dequeue.
type PriorityQueue[N any, W constraints.Ordered] struct {
	items List[_PQItem[N, W]]
	seq   int64
}

func NewPriorityQueue[N any, W constraints.Ordered](cap int) PriorityQueue[N, W] {
	return PriorityQueue[N, W]{
		items: NewList[_PQItem[N, W]](cap),
	}
}

func (self *PriorityQueue[N, W]) Enqueue(node N, prio W) {
	self.seq += 1
	self.items.Add(_PQItem[N, W]{node: node, prio: prio, seq: self.seq})
	self._SiftUp(self.items.Length() - 1)
}

func (self *PriorityQueue[N, W]) Dequeue() (N, bool) {
	if self.items.Length() == 0 {
		var t N
		return t, false
	}
	item := self.items[0]
	last := self.items.Length() - 1
	self.items[0] = self.items[last]
	self.items = self.items[:last]
	if self.items.Length() > 0 {
		self._SiftDown(0)
	}
	return item.node, true
}

func (self *PriorityQueue[N, W]) Peek() (N, bool) {
	if self.items.Length() == 0 {
		var t N
		return t, false
	}
	return self.items[0].node, true
}

func (self *PriorityQueue[N, W]) PeekPriority() (W, bool) {
	if self.items.Length() == 0 {
		var t W
		return t, false
	}
	return self.items[0].prio, true
}

func (self *PriorityQueue[N, W]) Len() int {
	return self.items.Length()
}

func (self *PriorityQueue[N, W]) Clear() {
	self.items.Clear()
	self.seq = 0
}

func (self *PriorityQueue[N, W]) _Less(i, j int) bool {
	a := self.items[i]
	b := self.items[j]
	if a.prio != b.prio {
		return a.prio < b.prio
	}
	return a.seq < b.seq
}

func (self *PriorityQueue[N, W]) _SiftUp(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if !self._Less(index, parent) {
			break
		}
		self.items[index], self.items[parent] = self.items[parent], self.items[index]
		index = parent
	}
}

func (self *PriorityQueue[N, W]) _SiftDown(index int) {
	length := self.items.Length()
	for {
		smallest := index
		left := 2*index + 1
		right := 2*index + 2
		if left < length && self._Less(left, smallest) {
			smallest = left
		}
		if right < length && self._Less(right, smallest) {
			smallest = right
		}
		if smallest == index {
			break
		}
		self.items[index], self.items[smallest] = self.items[smallest], self.items[index]
		index = smallest
	}
}
