package bag

import (
	"runtime"
	"sync/atomic"

	"github.com/joeycumines/go-pinnedcol"
	"github.com/joeycumines/go-pinnedcol/internal/growthflag"
	"github.com/joeycumines/go-pinnedcol/pinnedvec"
)

// ConcurrentBag is a push-only, gap-free concurrent collection: every
// successful Push lands at a unique, monotonically increasing index, and
// Len reports the length of the prefix of indices whose pushes have all
// fully completed.
type ConcurrentBag[T any] struct {
	col *pinnedcol.PinnedConcurrentCol[T]
}

// NewDoubling constructs a ConcurrentBag whose backing vector grows by
// doubling fragment sizes, with room for fragmentsCapacity fragments
// before a reservation of maximum capacity is required.
func NewDoubling[T any](fragmentsCapacity int) *ConcurrentBag[T] {
	return &ConcurrentBag[T]{col: pinnedcol.WithDoublingGrowth[T](fragmentsCapacity, newBagState[T])}
}

// NewLinear constructs a ConcurrentBag whose backing vector uses
// fixed-size fragments of 1<<fragmentExp elements, with room for
// fragmentsCapacity of them.
func NewLinear[T any](fragmentExp uint, fragmentsCapacity int) *ConcurrentBag[T] {
	return &ConcurrentBag[T]{col: pinnedcol.WithLinearGrowth[T](fragmentExp, fragmentsCapacity, newBagState[T])}
}

// NewFixed constructs a ConcurrentBag whose backing vector never grows
// beyond n positions; a Push once the bag is full returns
// pinnedcol.ErrOutOfMaxCapacity or pinnedcol.ErrFailedToGrow.
func NewFixed[T any](n int) *ConcurrentBag[T] {
	return &ConcurrentBag[T]{col: pinnedcol.WithFixedCapacity[T](n, newBagState[T])}
}

func (b *ConcurrentBag[T]) state() *bagState[T] {
	return b.col.State().(*bagState[T])
}

// Push reserves the next available index and writes v there, returning
// the index it landed at. Multiple goroutines may call Push concurrently;
// each gets back a distinct index.
func (b *ConcurrentBag[T]) Push(v T) (int, error) {
	s := b.state()
	idx := int(s.reserved.Add(1) - 1)
	if err := b.col.Write(idx, v); err != nil {
		return idx, err
	}
	return idx, nil
}

// Get returns a pointer to the value at index, or false if index is not
// yet within allocated capacity. As with the engine's own Get, a position
// that has been reserved by Push but not yet written returns T's zero
// value, not false -- callers that need to distinguish "not yet written"
// should compare index against Len.
func (b *ConcurrentBag[T]) Get(index int) (*T, bool) {
	return b.col.Get(index)
}

// Len returns the length of the prefix of indices whose pushes have all
// fully completed. Because
// pushes can complete out of order relative to the index they reserved,
// Len only ever reports a value once every reservation up to that point
// has also completed -- it never races ahead of a reservation still in
// flight.
func (b *ConcurrentBag[T]) Len() int {
	return int(b.state().written.Load())
}

// Capacity returns the number of positions currently backed by allocated
// memory.
func (b *ConcurrentBag[T]) Capacity() int {
	return b.col.Capacity()
}

// Close finalizes the bag: see pinnedcol.PinnedConcurrentCol.Close. The
// caller must ensure no Push is in flight.
func (b *ConcurrentBag[T]) Close() error {
	return b.col.Close()
}

// IntoPinnedVec finalizes the bag and returns its backing vector with
// length Len. The caller must ensure no Push is in flight.
func (b *ConcurrentBag[T]) IntoPinnedVec() pinnedvec.PinnedVec[T] {
	return b.col.Extract(b.Len())
}

// bagState is the ConcurrentState policy backing ConcurrentBag. It keeps
// two atomic counters -- reserved (indices handed out by Push) and
// written (the length of the prefix of indices whose pushes have all
// finished storing their value) -- plus a snapshot
// of the backing vector's capacity and a single-grower exclusion flag,
// refreshed each time a growth this policy triggered completes.
type bagState[T any] struct {
	pv          pinnedvec.ConcurrentPinnedVec[T]
	reserved    atomic.Int64
	written     atomic.Int64
	capSnapshot atomic.Int64
	growth      growthflag.Flag
}

func newBagState[T any](pv pinnedvec.ConcurrentPinnedVec[T], length int) pinnedcol.ConcurrentState[T] {
	s := &bagState[T]{pv: pv}
	s.reserved.Store(int64(length))
	s.written.Store(int64(length))
	s.capSnapshot.Store(int64(pv.Capacity()))
	return s
}

func (s *bagState[T]) FillWith() (func() T, bool) {
	return nil, false
}

func (s *bagState[T]) WritePermit(_ *pinnedcol.PinnedConcurrentCol[T], i int) pinnedcol.WritePermit {
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

func (s *bagState[T]) WritePermitN(col *pinnedcol.PinnedConcurrentCol[T], begin, n int) pinnedcol.WritePermit {
	return pinnedcol.DefaultWritePermitN[T](s, col, begin, n)
}

func (s *bagState[T]) ReleaseGrowthHandle() {
	s.capSnapshot.Store(int64(s.pv.Capacity()))
	s.growth.Release()
}

// UpdateAfterWrite advances written from begin to end only once every
// lower index has been accounted for, so written is always the length of
// a gap-free prefix.
func (s *bagState[T]) UpdateAfterWrite(begin, end int) {
	for !s.written.CompareAndSwap(int64(begin), int64(end)) {
		runtime.Gosched()
	}
}

func (s *bagState[T]) TryGetNoGapLen() (int, bool) {
	reserved := s.reserved.Load()
	written := s.written.Load()
	if written == reserved {
		return int(written), true
	}
	return 0, false
}
