package pinnedcol

import "errors"

var (
	// ErrOutOfMaxCapacity is returned when a write (or a reservation of a
	// range for writing) would address a position at or beyond the
	// collection's maximum concurrent capacity. The wrapper is expected to
	// call ReserveMaximumCapacity before this can legitimately happen.
	ErrOutOfMaxCapacity = errors.New("pinnedcol: out of capacity: underlying pinned vector cannot grow any further while being concurrently safe")

	// ErrFailedToGrow is returned when the backing pinned vector refuses a
	// growth request, typically because it was constructed with a fixed
	// capacity.
	ErrFailedToGrow = errors.New("pinnedcol: the underlying pinned vector reached its capacity and failed to grow")
)

// errShortIter is the panic message used when an iterator passed to WriteN
// yields fewer values than the caller promised. It is a programmer error:
// the position range has already been admitted by the permit state
// machine, so returning an error instead would leave a permanent gap that
// a concurrently spinning writer could never resolve.
const errShortIter = "pinnedcol: write_n_items: iterator exhausted before n items"
