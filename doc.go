// Package pinnedcol implements the concurrent write/growth coordination
// engine for collections built on top of a pinned backing vector: an
// ordered sequence whose already-inserted elements never move in memory
// under growth, with new capacity appended as additional non-contiguous
// fragments.
//
// The engine, PinnedConcurrentCol, lets many goroutines write to distinct
// positions of the backing vector without mutual exclusion on the hot
// path, while a single-grower protocol keeps capacity expansion race free.
// It does not track which positions have been written, does not enforce
// one-writer-per-position, and does not provide safe reads on its own --
// every method whose correctness depends on the caller discharging those
// preconditions says so in its documentation. Safe collections (a bag, an
// ordered bag, a vec) are built by pairing this engine with a
// ConcurrentState policy that encodes the collection's specific
// initialization and write-admission rules; see the bag and orderedbag
// packages for examples.
package pinnedcol
