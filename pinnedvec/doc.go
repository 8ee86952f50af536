// Package pinnedvec provides the backing pinned-vector contract consumed
// by package pinnedcol, plus three fragment-based growth strategies:
// Doubling, Linear and Fixed.
//
// A pinned vector is an ordered, index-addressable sequence whose already
// allocated positions never move in memory: growth always appends a new,
// independently allocated fragment rather than reallocating and copying
// existing ones. In Go that guarantee falls directly out of never
// re-slicing or re-appending to a fragment once it has been handed out --
// a pointer obtained from an earlier fragment stays valid for as long as
// the fragment itself is reachable.
//
// PinnedVec models single-writer construction (used to seed a collection
// before it is shared across goroutines, e.g. via Push). Converting it
// with IntoConcurrent yields a ConcurrentPinnedVec, which additionally
// supports concurrent growth and raw-pointer access. Unlike the systems
// language this package's design is ported from, Go's garbage collector
// and the absence of a borrow checker mean a single concrete type can
// implement both interfaces without a distinct "concurrent" representation
// -- IntoConcurrent is a type assertion, not a conversion.
package pinnedvec
