package pinnedcol

// Get returns a pointer to the element at index, or false if index lies
// beyond the currently allocated capacity.
//
// PinnedConcurrentCol does not track which positions have been written: it
// is possible to construct a collection, skip a position and write
// directly past it, in which case Get on the skipped position returns a
// pointer to T's zero value, not an indication that nothing was written
// there. A wrapper that needs that distinction must track it itself (e.g.
// by using a zero value with its own "empty" sentinel, or a length
// counter that only ever advances over a gap-free prefix).
//
// Get may race with a concurrent Write to the same position; the caller
// is responsible for ensuring the position it reads has already been
// durably written, typically by bounding the read to a prefix its policy
// reports as gap-free.
func (c *PinnedConcurrentCol[T]) Get(index int) (*T, bool) {
	return c.pv.Get(index)
}

// GetMut is an alias for Get: Go has no separate mutable-reference type,
// so both names return the same pointer. It exists to mirror the
// distinction the ported API makes between read-only and mutable access.
func (c *PinnedConcurrentCol[T]) GetMut(index int) (*T, bool) {
	return c.pv.Get(index)
}

// SingleItemAsRef returns a pointer to the element at index without the
// existence check Get performs; the caller must already know index holds
// (or is about to hold) a meaningful value, e.g. because it lies in a
// range the policy reports as gap-free. Unlike Get, it first ensures
// index is covered by capacity, growing the backing vector if index is
// exactly at the frontier and spinning if another goroutine is currently
// growing it -- the same permit loop Write runs, minus the store. Index
// at or beyond MaximumCapacity panics, since this method has no error
// return through which to report ErrOutOfMaxCapacity.
func (c *PinnedConcurrentCol[T]) SingleItemAsRef(index int) *T {
	c.assertOpen()
	if index >= c.pv.MaxCapacity() {
		panic("pinnedcol: single_item_as_ref: index out of maximum capacity")
	}
	consecutive := 0
	for {
		switch c.state.WritePermit(c, index) {
		case JustWrite:
			return c.pv.GetPtr(index)
		case GrowThenWrite:
			if err := c.growTo(index + 1); err != nil {
				panic("pinnedcol: single_item_as_ref: " + err.Error())
			}
			return c.pv.GetPtr(index)
		default: // Spin
			consecutive = spinWait(consecutive)
		}
	}
}

// Iter calls yield once for a pointer to each of the first length
// elements of the backing vector, in order, stopping early if yield
// returns false. The same initialization caveat as Get applies: length
// must be a gap-free prefix the caller already knows is fully written.
func (c *PinnedConcurrentCol[T]) Iter(length int, yield func(*T) bool) {
	c.IterOverRange(0, length, yield)
}

// IterMut is an alias for Iter, mirroring GetMut.
func (c *PinnedConcurrentCol[T]) IterMut(length int, yield func(*T) bool) {
	c.Iter(length, yield)
}

// IterOverRange calls yield once for a pointer to each element in
// [begin, end), in order, stopping early if yield returns false. The
// caller must already know the range is fully written.
func (c *PinnedConcurrentCol[T]) IterOverRange(begin, end int, yield func(*T) bool) {
	for _, slice := range c.pv.Slices(begin, end) {
		for i := range slice {
			if !yield(&slice[i]) {
				return
			}
		}
	}
}
