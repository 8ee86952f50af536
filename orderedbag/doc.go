// Package orderedbag provides ConcurrentOrderedBag, a concurrent
// collection that allows writes at arbitrary, caller-chosen positions
// (PushAt) rather than bag's always-reserve-the-next-index discipline.
// This is the shape needed when the destination index is already known --
// e.g. an ordered pipeline stage writing results back to their original
// input position -- and it is possible for the contiguous, gap-free
// prefix to grow out of order relative to the writes that complete it.
package orderedbag
