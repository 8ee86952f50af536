package pinnedcol

import (
	"errors"
	"iter"
)

// Write stores v at position i, growing the backing vector first if i is
// exactly at the frontier, or spinning if some other goroutine is
// currently growing it.
//
// Write is safe to call concurrently with other Write/WriteN/
// NItemsBufferAsMutSlices calls, provided the policy's WritePermit never
// admits two concurrent callers to the same position -- that guarantee is
// the policy's responsibility, not the engine's.
func (c *PinnedConcurrentCol[T]) Write(i int, v T) error {
	c.assertOpen()
	if i >= c.pv.MaxCapacity() {
		return ErrOutOfMaxCapacity
	}
	consecutive := 0
	for {
		switch c.state.WritePermit(c, i) {
		case JustWrite:
			c.writeAt(i, v)
			c.state.UpdateAfterWrite(i, i+1)
			return nil
		case GrowThenWrite:
			if err := c.growTo(i + 1); err != nil {
				return err
			}
			c.writeAt(i, v)
			c.state.UpdateAfterWrite(i, i+1)
			return nil
		default: // Spin
			consecutive = spinWait(consecutive)
		}
	}
}

// WriteN stores the first n values produced by values at the contiguous
// range [begin, begin+n), growing or spinning exactly as Write does for
// the whole range at once. If values yields more than n items, the excess
// is ignored; if it yields fewer, WriteN panics, because the range has
// already been admitted into the permit state machine and a concurrently
// spinning writer could never otherwise resolve the resulting gap.
func (c *PinnedConcurrentCol[T]) WriteN(begin, n int, values iter.Seq[T]) error {
	c.assertOpen()
	if n <= 0 {
		return nil
	}
	end := begin + n
	if end-1 >= c.pv.MaxCapacity() {
		return ErrOutOfMaxCapacity
	}
	consecutive := 0
	for {
		switch c.state.WritePermitN(c, begin, n) {
		case JustWrite:
			c.writeNAt(begin, n, values)
			c.state.UpdateAfterWrite(begin, end)
			return nil
		case GrowThenWrite:
			if err := c.growTo(end); err != nil {
				return err
			}
			c.writeNAt(begin, n, values)
			c.state.UpdateAfterWrite(begin, end)
			return nil
		default: // Spin
			consecutive = spinWait(consecutive)
		}
	}
}

// NItemsBufferAsMutSlices reserves write permission for the n positions
// starting at begin, growing or spinning exactly as WriteN does, and
// returns direct slices into the reserved region for the caller to
// populate. The caller must write every position of every returned slice;
// any left untouched keeps T's zero value but is otherwise indistinguishable
// from a written position to the rest of the engine, which can lead to a
// silent gap -- WriteN is preferred whenever the source values are
// already available as a sequence, and this escape hatch should be
// reserved for cases where copying results directly into the destination
// slices measurably matters.
func (c *PinnedConcurrentCol[T]) NItemsBufferAsMutSlices(begin, n int) ([][]T, error) {
	c.assertOpen()
	if n <= 0 {
		return nil, nil
	}
	end := begin + n
	if end-1 >= c.pv.MaxCapacity() {
		return nil, ErrOutOfMaxCapacity
	}
	consecutive := 0
	for {
		switch c.state.WritePermitN(c, begin, n) {
		case JustWrite:
			slices := c.sliceForNItemsAt(begin, n)
			c.state.UpdateAfterWrite(begin, end)
			return slices, nil
		case GrowThenWrite:
			if err := c.growTo(end); err != nil {
				return nil, err
			}
			slices := c.sliceForNItemsAt(begin, n)
			c.state.UpdateAfterWrite(begin, end)
			return slices, nil
		default: // Spin
			consecutive = spinWait(consecutive)
		}
	}
}

// NItemsBufferAsSlices returns direct, read-only-by-convention slices over
// [begin, begin+n). Unlike NItemsBufferAsMutSlices it does not go through
// the permit state machine or update any write bookkeeping -- the caller
// must already know the range is fully written, typically via
// IterOverRange's same guarantee.
func (c *PinnedConcurrentCol[T]) NItemsBufferAsSlices(begin, n int) [][]T {
	c.assertOpen()
	if n <= 0 {
		return nil
	}
	return c.pv.Slices(begin, begin+n)
}

func (c *PinnedConcurrentCol[T]) writeAt(i int, v T) {
	*c.pv.GetPtr(i) = v
}

func (c *PinnedConcurrentCol[T]) sliceForNItemsAt(begin, n int) [][]T {
	return c.pv.Slices(begin, begin+n)
}

func (c *PinnedConcurrentCol[T]) writeNAt(begin, n int, values iter.Seq[T]) {
	written := 0
	next, stop := iter.Pull(values)
	defer stop()
	for _, slice := range c.sliceForNItemsAt(begin, n) {
		for i := range slice {
			v, ok := next()
			if !ok {
				panic(errShortIter)
			}
			slice[i] = v
			written++
		}
	}
	_ = written
}

// growTo grows the backing vector to at least target, pre-filling newly
// allocated positions if the policy demands it, then releases the growth
// handle regardless of outcome -- mirroring the guarantee that
// ReleaseGrowthHandle is called exactly once per growth this state
// triggered, whether it succeeded or failed.
func (c *PinnedConcurrentCol[T]) growTo(target int) error {
	fill, ok := c.state.FillWith()
	var err error
	if ok {
		_, err = c.pv.GrowToAndFill(target, fill)
	} else {
		_, err = c.pv.GrowTo(target)
	}
	c.state.ReleaseGrowthHandle()
	if err != nil {
		return errors.Join(ErrFailedToGrow, err)
	}
	return nil
}
