package util

//*******************************************
// search flags
//*******************************************

// Per-node scratch state sized to the node count.
//
// Reset is O(1): a generation counter invalidates all slots, Get lazily
// re-initialises a slot with the default value on first access after a
// reset. This keeps the per-search reset cost proportional to the nodes
// actually touched.
type Flags[T any] struct {
	values   Array[T]
	versions Array[int32]
	version  int32
	_default T
}

func NewFlags[T any](size int32, _default T) Flags[T] {
	return Flags[T]{
		values:   NewArray[T](int(size)),
		versions: NewArray[int32](int(size)),
		version:  1,
		_default: _default,
	}
}

func (self *Flags[T]) Get(node int32) *T {
	if self.versions[node] != self.version {
		self.values[node] = self._default
		self.versions[node] = self.version
	}
	return &self.values[node]
}

// Returns true if the slot has been touched since the last reset.
func (self *Flags[T]) IsSet(node int32) bool {
	return self.versions[node] == self.version
}

func (self *Flags[T]) Reset() {
	self.version += 1
}
