package pinnedcol

import (
	"strconv"
	"sync/atomic"

	"github.com/joeycumines/go-pinnedcol/pinnedvec"
)

// mockState is the simplest possible ConcurrentState: it derives every
// write permit straight from the engine's current capacity, with no
// growth-handle exclusion of its own. It is safe only for single-goroutine
// tests exercising the engine's write/grow/close mechanics in isolation --
// bag and orderedbag are the real concurrency-safe policies.
type mockState[T any] struct {
	length atomic.Int64
	fill   func() T
}

func newMockState[T any](_ pinnedvec.ConcurrentPinnedVec[T], length int) ConcurrentState[T] {
	s := &mockState[T]{}
	s.length.Store(int64(length))
	return s
}

func newMockStateFilled[T any](fill func() T) NewState[T] {
	return func(_ pinnedvec.ConcurrentPinnedVec[T], length int) ConcurrentState[T] {
		s := &mockState[T]{fill: fill}
		s.length.Store(int64(length))
		return s
	}
}

func (s *mockState[T]) FillWith() (func() T, bool) {
	if s.fill == nil {
		return nil, false
	}
	return s.fill, true
}

func (s *mockState[T]) WritePermit(col *PinnedConcurrentCol[T], i int) WritePermit {
	capacity := col.Capacity()
	switch {
	case i < capacity:
		return JustWrite
	case i == capacity:
		return GrowThenWrite
	default:
		return Spin
	}
}

func (s *mockState[T]) WritePermitN(col *PinnedConcurrentCol[T], begin, n int) WritePermit {
	capacity := col.Capacity()
	last := begin + n - 1
	switch {
	case last < capacity:
		return JustWrite
	case begin > capacity:
		return Spin
	default:
		return GrowThenWrite
	}
}

func (s *mockState[T]) ReleaseGrowthHandle() {}

func (s *mockState[T]) UpdateAfterWrite(_, end int) {
	s.length.Store(int64(end))
}

func (s *mockState[T]) TryGetNoGapLen() (int, bool) {
	return int(s.length.Load()), true
}

func itoa(i int) string { return strconv.Itoa(i) }
