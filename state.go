package pinnedcol

// ConcurrentState is the policy a wrapper supplies to specialize
// PinnedConcurrentCol into a concrete collection flavor -- a push-only bag,
// an ordered bag that allows writes at arbitrary reserved positions, a
// vec, or anything else. It is the sole locus of concurrency invariants
// specific to that flavor; the engine only ever calls through this
// interface.
//
// A ConcurrentState value is shared across goroutines by reference, so its
// methods must be safe for concurrent use. Implementations typically use
// atomics for the write-permit decision; bookkeeping done after a write
// may also take a lock (orderedbag's state does).
type ConcurrentState[T any] interface {
	// FillWith reports whether newly allocated capacity should be
	// pre-filled, and if so, with what. When ok is true, fill is called
	// once per newly allocated position at construction, at every growth,
	// at a capacity reservation, and at CloneWithLen. A state must be
	// stable: it must return the same (fill, ok) pair for its entire
	// lifetime.
	FillWith() (fill func() T, ok bool)

	// WritePermit decides the permit for a single-position write at i. It
	// must be linearizable with respect to concurrent growths: if it
	// returns JustWrite, i was strictly less than the current capacity at
	// the moment of the decision; if it returns GrowThenWrite, i equals
	// the current capacity and this call has just acquired the growth
	// handle; otherwise it returns Spin.
	WritePermit(col *PinnedConcurrentCol[T], i int) WritePermit

	// WritePermitN decides the permit for a write to the contiguous range
	// [begin, begin+n). Implementations that cannot service partial
	// ranges may implement this by delegating to DefaultWritePermitN.
	WritePermitN(col *PinnedConcurrentCol[T], begin, n int) WritePermit

	// ReleaseGrowthHandle is called by the engine exactly once after a
	// growth triggered by this state's own GrowThenWrite decision
	// completes, whether that growth succeeded or failed.
	ReleaseGrowthHandle()

	// UpdateAfterWrite is the post-write hook, called after values have
	// been stored in [begin, end). Typically advances a length counter;
	// the range may include positions the wrapper considers gaps, so the
	// exact semantics are wrapper-defined.
	UpdateAfterWrite(begin, end int)

	// TryGetNoGapLen is a best-effort query for the largest k such that
	// positions [0, k) are all known to be written. It is consulted only
	// when the collection is closed, to decide how much of the backing
	// vector is safe to finalize. Returning ok == false is always a valid,
	// conservative answer.
	TryGetNoGapLen() (k int, ok bool)
}

// DefaultWritePermitN implements the default WritePermitN behavior
// described by ConcurrentState: it simply takes the permit of the last
// position in the range. Policies capable of servicing partial ranges
// (some positions already within capacity, the frontier inside the range)
// typically return GrowThenWrite for the crossing case and JustWrite only
// when the whole range already fits, and should implement WritePermitN
// directly rather than calling this helper.
func DefaultWritePermitN[T any](s ConcurrentState[T], col *PinnedConcurrentCol[T], begin, n int) WritePermit {
	return s.WritePermit(col, begin+n-1)
}
