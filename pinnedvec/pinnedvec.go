package pinnedvec

import "errors"

// ErrCannotGrow is returned by GrowTo, GrowToAndFill and
// ReserveMaxCapacity when the backing strategy refuses to extend its
// capacity -- e.g. a Fixed vector that has already reached its fixed size.
var ErrCannotGrow = errors.New("pinnedvec: backing vector cannot grow to the requested capacity")

// PinnedVec is a growable, index-addressable, single-writer sequence of
// cells for values of type T. Once IntoConcurrent has been called, the
// same positions remain valid and addressable through the returned
// ConcurrentPinnedVec for the rest of its life.
type PinnedVec[T any] interface {
	// Len returns the number of logically occupied positions.
	Len() int

	// Capacity returns the number of positions currently backed by
	// allocated memory.
	Capacity() int

	// MaxCapacity returns the ceiling Capacity can reach without an
	// explicit reservation.
	MaxCapacity() int

	// Get returns a pointer to the value at i, or false if i is not
	// currently allocated.
	Get(i int) (*T, bool)

	// Push appends v at position Len, growing if necessary.
	Push(v T)

	// IntoConcurrent converts the vector into its concurrent form. The
	// receiver must not be used through the PinnedVec interface again.
	IntoConcurrent() ConcurrentPinnedVec[T]
}

// ConcurrentPinnedVec is the concurrency-safe view of a backing pinned
// vector: its mutating operations are split between ones safe to call
// with only a shared reference (GrowTo, GrowToAndFill, raw pointer
// access) and ones that require exclusive access (ReserveMaxCapacity,
// SetLen, Clear, CloneWithLen, IntoInner).
type ConcurrentPinnedVec[T any] interface {
	// Capacity returns the number of positions currently backed by
	// allocated memory. Safe to call concurrently with GrowTo/GrowToAndFill.
	Capacity() int

	// MaxCapacity returns the ceiling Capacity can reach without an
	// explicit reservation. Safe to call concurrently.
	MaxCapacity() int

	// Get returns a pointer to the value at i, or false if i is beyond the
	// current capacity.
	Get(i int) (*T, bool)

	// GetPtr returns a pointer to the value at i. The caller must have
	// already established that i is within capacity; out-of-range access
	// panics.
	GetPtr(i int) *T

	// Slices returns one slice per fragment overlapping [begin, end),
	// each a direct view into the corresponding fragment's backing array,
	// in order. The caller must have already established that end is
	// within capacity.
	Slices(begin, end int) [][]T

	// GrowTo extends capacity to at least target and returns the new
	// capacity, or ErrCannotGrow (wrapped) if the backing strategy refuses.
	GrowTo(target int) (int, error)

	// GrowToAndFill behaves like GrowTo, additionally calling fill once
	// per newly allocated position and storing the result there.
	GrowToAndFill(target int, fill func() T) (int, error)

	// ReserveMaxCapacity raises MaxCapacity to at least newMax, returning
	// the resulting value (which may exceed the request), or
	// ErrCannotGrow if the strategy cannot ever reach it. currentLen is
	// advisory context for strategies whose reservation cost depends on
	// how much of the vector is already logically occupied.
	ReserveMaxCapacity(currentLen, newMax int) (int, error)

	// SetLen sets the logical length reported by a subsequent IntoInner,
	// without touching allocated capacity.
	SetLen(n int)

	// Clear resets the vector to its freshly constructed, empty state.
	// priorLen is advisory context mirroring the backing's own bookkeeping.
	Clear(priorLen int)

	// CloneWithLen returns an independent deep copy with logical length n.
	// If fill is non-nil, positions [n, Capacity) of the clone are
	// initialized with fill(); otherwise they retain their zero value.
	CloneWithLen(n int, fill func() T) ConcurrentPinnedVec[T]

	// IntoInner finalizes the vector with logical length n and returns it
	// as a PinnedVec. The receiver must not be used again afterward.
	IntoInner(n int) PinnedVec[T]
}
