package pinnedcol

import (
	"errors"
	"io"

	"github.com/joeycumines/go-pinnedcol/pinnedvec"
)

// Close finalizes the collection, releasing any resources held by its
// already-written elements and marking the engine unusable for further
// writes. It is idempotent: every call after the first is a no-op
// returning nil.
//
// Go's garbage collector always zero-initializes the backing vector's
// memory, so reading an unwritten position can never be unsafe the way it
// can be in a language with uninitialized-memory semantics. What remains
// is a narrower concern: a value of T that owns its own external resource
// (a file handle, a goroutine, another io.Closer) must have that resource
// released exactly once, and never for a cell that was never logically
// written (which holds only T's zero value).
//
// Close computes the largest prefix length L it can account for:
//   - if the policy pre-fills newly allocated capacity (FillWith reports
//     ok == true), every allocated cell was initialized one way or
//     another, so L is the whole allocated capacity;
//   - otherwise, Close asks the policy's TryGetNoGapLen; if it reports a
//     gap-free length k, L is min(k, capacity); if the policy cannot
//     answer, L is 0 and Close releases nothing.
//
// If T or *T implements io.Closer, Close calls Close through a pointer to
// every cell in [0, L), joining any errors with errors.Join. Cells in [L, capacity) are left
// untouched and are eventually reclaimed by ordinary garbage collection
// once the backing vector itself becomes unreachable.
func (c *PinnedConcurrentCol[T]) Close() error {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	return c.closeBackingLocked()
}

func (c *PinnedConcurrentCol[T]) closeBackingLocked() error {
	length := c.safeClosePrefixLocked()
	var errs []error
	for _, slice := range c.pv.Slices(0, length) {
		for i := range slice {
			if closer, ok := any(&slice[i]).(io.Closer); ok {
				if err := closer.Close(); err != nil {
					errs = append(errs, err)
				}
			}
		}
	}
	return errors.Join(errs...)
}

func (c *PinnedConcurrentCol[T]) safeClosePrefixLocked() int {
	capacity := c.pv.Capacity()
	if fill, ok := c.state.FillWith(); ok {
		_ = fill
		return capacity
	}
	k, ok := c.state.TryGetNoGapLen()
	if !ok {
		return 0
	}
	if k > capacity {
		k = capacity
	}
	return k
}

// Extract finalizes the collection and hands the underlying pinned vector
// back to the caller with length statedLen. Unlike Close, it calls Close on
// no element: the elements and their resources go to the caller along
// with the vector. After Extract, the
// engine no longer owns any backing storage: a subsequent Close is a
// no-op, and no further Write/WriteN calls are permitted.
//
// statedLen is the caller-known, gap-free length of the collection (e.g.
// a bag's own atomic write counter) -- Extract trusts it rather than
// recomputing it, because by construction a push-only wrapper already
// knows this precisely while a general policy's TryGetNoGapLen is only a
// best-effort estimate.
func (c *PinnedConcurrentCol[T]) Extract(statedLen int) pinnedvec.PinnedVec[T] {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()
	c.closed = true
	c.pv.SetLen(statedLen)
	inner := c.pv.IntoInner(statedLen)
	c.pv = nil
	return inner
}

// Clear resets the collection to a freshly constructed, empty state:
// priorLen is advisory context for backing strategies whose clear cost
// depends on how much of the vector was logically occupied. A fresh
// policy is built via the NewState callback supplied at construction.
func (c *PinnedConcurrentCol[T]) Clear(priorLen int) {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()
	c.pv.Clear(priorLen)
	c.state = c.newState(c.pv, 0)
	if fill, ok := c.state.FillWith(); ok {
		for _, slice := range c.pv.Slices(0, c.pv.Capacity()) {
			for i := range slice {
				slice[i] = fill()
			}
		}
	}
}

// CloneWithLen returns an independent, deep copy of the collection with
// logical length statedLen: positions [statedLen, capacity) of the clone
// are re-initialized with the policy's filler, if any. The clone gets a
// fresh policy value, built via the same NewState callback supplied at
// this collection's construction.
func (c *PinnedConcurrentCol[T]) CloneWithLen(statedLen int) *PinnedConcurrentCol[T] {
	c.lifecycleMu.Lock()
	defer c.lifecycleMu.Unlock()
	fill, _ := c.state.FillWith()
	clonedPV := c.pv.CloneWithLen(statedLen, fill)
	return &PinnedConcurrentCol[T]{
		pv:       clonedPV,
		state:    c.newState(clonedPV, statedLen),
		newState: c.newState,
	}
}
