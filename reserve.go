package pinnedcol

import "errors"

// ReserveMaximumCapacity raises MaximumCapacity to at least maximumCapacity,
// returning the value actually reached. currentLen is advisory context
// some backing strategies use to decide how much work the reservation
// costs; it is the caller's responsibility to pass the collection's true
// current length.
//
// The collection must be gap-free in [0, currentLen) for the duration of
// this call: unlike Write/WriteN, it is not safe to call concurrently with
// other writers, because growing the fragment table itself (as opposed to
// growing within it) is not part of the lock-free write-permit protocol.
func (c *PinnedConcurrentCol[T]) ReserveMaximumCapacity(currentLen, maximumCapacity int) (int, error) {
	c.assertOpen()
	n, err := c.pv.ReserveMaxCapacity(currentLen, maximumCapacity)
	if err != nil {
		return n, errors.Join(ErrFailedToGrow, err)
	}
	return n, nil
}
