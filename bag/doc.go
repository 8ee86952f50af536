// Package bag provides ConcurrentBag, a push-only, gap-free collection
// built on top of pinnedcol.PinnedConcurrentCol: many goroutines can Push
// concurrently, each getting back the unique index its value landed at,
// with no mutual exclusion on the write path beyond the engine's own
// single-grower protocol.
package bag
