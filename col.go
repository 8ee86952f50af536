package pinnedcol

import (
	"sync"

	"github.com/joeycumines/go-pinnedcol/pinnedvec"
)

// NewState constructs the ConcurrentState for a backing vector at a given
// logical length. Go has no equivalent of a trait's associated function
// (callable without a receiver value), so wrapper packages supply one of
// these as a constructor callback instead of a static method; the engine
// calls it once at construction and again whenever a policy must be
// rebuilt for a new backing, in Clear and CloneWithLen.
type NewState[T any] func(pv pinnedvec.ConcurrentPinnedVec[T], length int) ConcurrentState[T]

// PinnedConcurrentCol is the concurrent write/growth coordination engine.
// It owns a backing pinned vector and a ConcurrentState policy, and
// mediates every write and growth between them. It is safe for concurrent
// use by multiple goroutines, with the exception of Close, Extract, Clear,
// CloneWithLen and ReserveMaximumCapacity, which the caller must serialize
// against all other
// calls (typically by quiescing writers first) -- the engine only
// guarantees concurrency safety for the write path itself.
type PinnedConcurrentCol[T any] struct {
	pv       pinnedvec.ConcurrentPinnedVec[T]
	state    ConcurrentState[T]
	newState NewState[T]

	// lifecycleMu guards closed and serializes Close/Extract/Clear/
	// CloneWithLen against each other -- these are not part of the
	// lock-free write path and are expected to be called only once
	// writers have quiesced.
	lifecycleMu sync.Mutex
	closed      bool
}

// NewFromPinned constructs a PinnedConcurrentCol over pv, converting it to
// its concurrent form and building the initial policy via newState. If the
// policy has a filler, every allocated position beyond pv's length is
// filled with it.
func NewFromPinned[T any](pv pinnedvec.PinnedVec[T], newState NewState[T]) *PinnedConcurrentCol[T] {
	length := pv.Len()
	cpv := pv.IntoConcurrent()
	state := newState(cpv, length)
	if fill, ok := state.FillWith(); ok {
		for _, slice := range cpv.Slices(length, cpv.Capacity()) {
			for i := range slice {
				slice[i] = fill()
			}
		}
	}
	return &PinnedConcurrentCol[T]{
		pv:       cpv,
		state:    state,
		newState: newState,
	}
}

// State returns the policy driving this engine. Wrapper types typically
// keep their own reference obtained at construction instead, but this
// accessor lets generic helpers (and tests) reach it uniformly.
func (c *PinnedConcurrentCol[T]) State() ConcurrentState[T] {
	return c.state
}

// Capacity returns the number of positions currently backed by allocated
// memory in the backing vector.
func (c *PinnedConcurrentCol[T]) Capacity() int {
	return c.pv.Capacity()
}

// MaximumCapacity returns the ceiling Capacity can reach without an
// explicit call to ReserveMaximumCapacity.
func (c *PinnedConcurrentCol[T]) MaximumCapacity() int {
	return c.pv.MaxCapacity()
}

// assertOpen panics if the engine has already been finalized via Close or
// Extract. It is a programmer-contract check: a wrapper must never expose
// a collection handle to further writers after tearing it down.
func (c *PinnedConcurrentCol[T]) assertOpen() {
	if c.closed {
		panic("pinnedcol: use of PinnedConcurrentCol after Close or Extract")
	}
}
