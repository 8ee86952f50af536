// Package growthflag provides the single-grower exclusion primitive used by
// ConcurrentState implementations: a lock-free flag that at most one
// goroutine can hold at a time, used to guarantee that only one goroutine
// ever drives a given growth of the backing pinned vector while others
// either proceed without growing or spin.
package growthflag

import "sync/atomic"

// Flag is a lock-free, cache-line-padded single-holder flag.
type Flag struct {
	_    [64]byte
	held atomic.Bool
	_    [63]byte
}

// TryAcquire attempts to take the flag, returning true if this call is the
// one that transitioned it from free to held. Exactly one concurrent
// caller ever observes true until Release is called.
func (f *Flag) TryAcquire() bool {
	return f.held.CompareAndSwap(false, true)
}

// Release frees the flag, allowing a subsequent TryAcquire to succeed. It
// must be called exactly once by whichever goroutine's TryAcquire
// returned true, regardless of whether the growth it guarded succeeded.
func (f *Flag) Release() {
	f.held.Store(false)
}

// Held reports whether the flag is currently held by some goroutine. It is
// a point-in-time snapshot, useful only for diagnostics and tests.
func (f *Flag) Held() bool {
	return f.held.Load()
}
