package orderedbag

import (
	"sync"
	"sync/atomic"

	"github.com/joeycumines/go-pinnedcol"
	"github.com/joeycumines/go-pinnedcol/internal/growthflag"
	"github.com/joeycumines/go-pinnedcol/pinnedvec"
)

// ConcurrentOrderedBag lets goroutines write to arbitrary, already
// unique, caller-chosen positions concurrently. The caller is responsible
// for never writing the same position twice; the bag itself only
// coordinates capacity growth and tracks the largest gap-free prefix.
type ConcurrentOrderedBag[T any] struct {
	col *pinnedcol.PinnedConcurrentCol[T]
}

// NewDoubling constructs a ConcurrentOrderedBag whose backing vector grows
// by doubling fragment sizes.
func NewDoubling[T any](fragmentsCapacity int) *ConcurrentOrderedBag[T] {
	return &ConcurrentOrderedBag[T]{col: pinnedcol.WithDoublingGrowth[T](fragmentsCapacity, newOrderedBagState[T])}
}

// NewLinear constructs a ConcurrentOrderedBag whose backing vector uses
// fixed-size fragments of 1<<fragmentExp elements.
func NewLinear[T any](fragmentExp uint, fragmentsCapacity int) *ConcurrentOrderedBag[T] {
	return &ConcurrentOrderedBag[T]{col: pinnedcol.WithLinearGrowth[T](fragmentExp, fragmentsCapacity, newOrderedBagState[T])}
}

// NewFixed constructs a ConcurrentOrderedBag whose backing vector never
// grows beyond n positions.
func NewFixed[T any](n int) *ConcurrentOrderedBag[T] {
	return &ConcurrentOrderedBag[T]{col: pinnedcol.WithFixedCapacity[T](n, newOrderedBagState[T])}
}

func (b *ConcurrentOrderedBag[T]) state() *orderedBagState[T] {
	return b.col.State().(*orderedBagState[T])
}

// PushAt writes v at index. If index is exactly at the current capacity,
// PushAt grows the backing vector first; if index lies further beyond it,
// PushAt does not grow the vector itself but spins until other PushAt
// calls have grown it to cover index. The caller must guarantee no two PushAt calls ever target the same
// index concurrently (or at all, more than once).
func (b *ConcurrentOrderedBag[T]) PushAt(index int, v T) error {
	return b.col.Write(index, v)
}

// Get returns a pointer to the value at index, or false if index is not
// yet within allocated capacity.
func (b *ConcurrentOrderedBag[T]) Get(index int) (*T, bool) {
	return b.col.Get(index)
}

// Len returns the largest k such that positions [0, k) are all known to
// have been written, regardless of the order PushAt calls completed in.
func (b *ConcurrentOrderedBag[T]) Len() int {
	n, _ := b.state().TryGetNoGapLen()
	return n
}

// Capacity returns the number of positions currently backed by allocated
// memory.
func (b *ConcurrentOrderedBag[T]) Capacity() int {
	return b.col.Capacity()
}

// Close finalizes the bag: see pinnedcol.PinnedConcurrentCol.Close. The
// caller must ensure no PushAt is in flight.
func (b *ConcurrentOrderedBag[T]) Close() error {
	return b.col.Close()
}

// IntoPinnedVec finalizes the bag and returns its backing vector with
// length Len. The caller must ensure no PushAt is in flight.
func (b *ConcurrentOrderedBag[T]) IntoPinnedVec() pinnedvec.PinnedVec[T] {
	return b.col.Extract(b.Len())
}

// orderedBagState is the ConcurrentState policy backing
// ConcurrentOrderedBag. Unlike bag's pure-atomic counters, arbitrary write
// order means the gap-free prefix can only advance once every index below
// it has completed, so frontier tracking is guarded by a mutex. This is
// off the hot path of deciding a write permit (capSnapshot/growth alone
// drive that, exactly as in bag); it only serializes the bookkeeping done
// once a write has already landed.
type orderedBagState[T any] struct {
	pv          pinnedvec.ConcurrentPinnedVec[T]
	capSnapshot atomic.Int64
	growth      growthflag.Flag

	mu       sync.Mutex
	frontier int
	pending  map[int]struct{}
}

func newOrderedBagState[T any](pv pinnedvec.ConcurrentPinnedVec[T], length int) pinnedcol.ConcurrentState[T] {
	s := &orderedBagState[T]{pv: pv, frontier: length, pending: make(map[int]struct{})}
	s.capSnapshot.Store(int64(pv.Capacity()))
	return s
}

func (s *orderedBagState[T]) FillWith() (func() T, bool) {
	return nil, false
}

func (s *orderedBagState[T]) WritePermit(_ *pinnedcol.PinnedConcurrentCol[T], i int) pinnedcol.WritePermit {
	capacity := s.capSnapshot.Load()
	switch {
	case int64(i) < capacity:
		return pinnedcol.JustWrite
	case int64(i) == capacity:
		if s.growth.TryAcquire() {
			return pinnedcol.GrowThenWrite
		}
		return pinnedcol.Spin
	default:
		return pinnedcol.Spin
	}
}

func (s *orderedBagState[T]) WritePermitN(col *pinnedcol.PinnedConcurrentCol[T], begin, n int) pinnedcol.WritePermit {
	return pinnedcol.DefaultWritePermitN[T](s, col, begin, n)
}

func (s *orderedBagState[T]) ReleaseGrowthHandle() {
	s.capSnapshot.Store(int64(s.pv.Capacity()))
	s.growth.Release()
}

// UpdateAfterWrite records [begin, end) as written and advances frontier
// past every index it can now account for contiguously, draining pending
// out-of-order completions as it goes.
func (s *orderedBagState[T]) UpdateAfterWrite(begin, end int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := begin; i < end; i++ {
		if i == s.frontier {
			s.frontier++
		} else {
			s.pending[i] = struct{}{}
		}
	}
	for {
		if _, ok := s.pending[s.frontier]; !ok {
			break
		}
		delete(s.pending, s.frontier)
		s.frontier++
	}
}

func (s *orderedBagState[T]) TryGetNoGapLen() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frontier, true
}
