package pinnedvec

// fragments holds the shared storage and addressing logic used by every
// growth strategy in this package. Each entry in frags is a fully
// allocated slice (len == cap, by construction) standing in for one
// fragment of the pinned vector; once appended, a fragment is never
// reallocated or re-sliced, so a pointer into it stays valid for as long
// as the fragment itself is reachable.
type fragments[T any] struct {
	frags [][]T
}

func (f *fragments[T]) capacity() int {
	n := 0
	for _, frag := range f.frags {
		n += len(frag)
	}
	return n
}

// locate returns the fragment index and in-fragment offset for position i,
// and whether i falls within the currently allocated capacity.
func (f *fragments[T]) locate(i int) (fragIdx, offset int, ok bool) {
	if i < 0 {
		return 0, 0, false
	}
	rem := i
	for idx, frag := range f.frags {
		if rem < len(frag) {
			return idx, rem, true
		}
		rem -= len(frag)
	}
	return 0, 0, false
}

func (f *fragments[T]) get(i int) (*T, bool) {
	fragIdx, offset, ok := f.locate(i)
	if !ok {
		return nil, false
	}
	return &f.frags[fragIdx][offset], true
}

// getPtr is identical to get but panics on an out-of-range index: callers
// use it only once the index has already been established to be within
// capacity by the permit state machine.
func (f *fragments[T]) getPtr(i int) *T {
	p, ok := f.get(i)
	if !ok {
		panic("pinnedvec: index out of range")
	}
	return p
}

// slices returns one slice per fragment overlapping [begin, end), each a
// direct sub-slice of the corresponding fragment.
func (f *fragments[T]) slices(begin, end int) [][]T {
	if end <= begin {
		return nil
	}
	var out [][]T
	pos := 0
	for _, frag := range f.frags {
		fragEnd := pos + len(frag)
		lo, hi := max(begin, pos), min(end, fragEnd)
		if lo < hi {
			out = append(out, frag[lo-pos:hi-pos])
		}
		pos = fragEnd
		if pos >= end {
			break
		}
	}
	return out
}

// fillRange calls fill once for every position in [begin, end) and stores
// the result there. It assumes the range lies entirely within currently
// allocated fragments.
func (f *fragments[T]) fillRange(begin, end int, fill func() T) {
	for _, s := range f.slices(begin, end) {
		for i := range s {
			s[i] = fill()
		}
	}
}

// resetToFirst drops every fragment after the first and re-allocates the
// first fragment fresh (same length, zero-valued), releasing references
// held by any previously written values so the garbage collector can
// reclaim them.
func (f *fragments[T]) resetToFirst() {
	if len(f.frags) == 0 {
		return
	}
	first := make([]T, len(f.frags[0]))
	f.frags = [][]T{first}
}

// cloneAll returns a deep copy of every allocated fragment, so the
// clone's capacity matches the original's.
func (f *fragments[T]) cloneAll() *fragments[T] {
	clone := &fragments[T]{frags: make([][]T, len(f.frags))}
	for i, frag := range f.frags {
		cp := make([]T, len(frag))
		copy(cp, frag)
		clone.frags[i] = cp
	}
	return clone
}
