package pinnedcol

import "github.com/joeycumines/go-pinnedcol/pinnedvec"

// WithDoublingGrowth constructs a PinnedConcurrentCol backed by a Doubling
// pinned vector, whose fragment sizes double on every growth and whose
// fragment table holds up to fragmentsCapacity fragments before a
// reservation is required. A non-positive fragmentsCapacity uses the
// package default.
func WithDoublingGrowth[T any](fragmentsCapacity int, newState NewState[T]) *PinnedConcurrentCol[T] {
	return NewFromPinned[T](pinnedvec.NewDoubling[T](fragmentsCapacity), newState)
}

// WithLinearGrowth constructs a PinnedConcurrentCol backed by a Linear
// pinned vector, whose fragments are all 1<<fragmentExp elements, with
// room for fragmentsCapacity of them before a reservation is required.
func WithLinearGrowth[T any](fragmentExp uint, fragmentsCapacity int, newState NewState[T]) *PinnedConcurrentCol[T] {
	return NewFromPinned[T](pinnedvec.NewLinear[T](fragmentExp, fragmentsCapacity), newState)
}

// WithFixedCapacity constructs a PinnedConcurrentCol backed by a Fixed
// pinned vector of exactly n positions, which never grows: a write at a
// position at or beyond n fails with ErrOutOfMaxCapacity.
func WithFixedCapacity[T any](n int, newState NewState[T]) *PinnedConcurrentCol[T] {
	return NewFromPinned[T](pinnedvec.NewFixed[T](n), newState)
}

