package pinnedcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/go-pinnedcol/pinnedvec"
)

func TestWrite_SequentialGrowth(t *testing.T) {
	pv := pinnedvec.NewDoubling[string](32)
	pv.Push("a")
	pv.Push("b")

	col := NewFromPinned[string](pv, newMockState[string])

	for idx := 2; idx < 1485; idx++ {
		require.NoError(t, col.Write(idx, itoa(idx)))
	}

	v, ok := col.Get(0)
	require.True(t, ok)
	assert.Equal(t, "a", *v)

	v, ok = col.Get(1)
	require.True(t, ok)
	assert.Equal(t, "b", *v)

	for idx := 2; idx < 1485; idx++ {
		v, ok := col.Get(idx)
		require.True(t, ok)
		assert.Equal(t, itoa(idx), *v)
	}
}

func TestWriteN_ChunkedGrowth(t *testing.T) {
	pv := pinnedvec.NewDoubling[string](32)
	pv.Push("a")
	pv.Push("b")

	col := NewFromPinned[string](pv, newMockState[string])

	begin := 2
	for begin < 1602 {
		n := 4
		if begin+n > 1602 {
			n = 1602 - begin
		}
		b := begin
		values := func(yield func(string) bool) {
			for i := 0; i < n; i++ {
				if !yield(itoa(b + i)) {
					return
				}
			}
		}
		require.NoError(t, col.WriteN(begin, n, values))
		begin += n
	}

	for idx := 2; idx < 1602; idx++ {
		v, ok := col.Get(idx)
		require.True(t, ok)
		assert.Equal(t, itoa(idx), *v)
	}
}

func TestWriteN_ZeroItemsIsNoop(t *testing.T) {
	pv := pinnedvec.NewFixed[int](4)
	col := NewFromPinned[int](pv, newMockState[int])
	assert.NoError(t, col.WriteN(0, 0, func(yield func(int) bool) {}))
}

func TestWriteN_ShortIteratorPanics(t *testing.T) {
	pv := pinnedvec.NewDoubling[int](32)
	col := NewFromPinned[int](pv, newMockState[int])

	assert.Panics(t, func() {
		_ = col.WriteN(0, 4, func(yield func(int) bool) {
			yield(1)
			yield(2)
		})
	})
}

func TestWrite_OutOfMaxCapacity(t *testing.T) {
	pv := pinnedvec.NewFixed[int](4)
	col := NewFromPinned[int](pv, newMockState[int])

	require.NoError(t, col.Write(0, 1))
	require.NoError(t, col.Write(1, 2))
	require.NoError(t, col.Write(2, 3))
	require.NoError(t, col.Write(3, 4))

	err := col.Write(4, 5)
	assert.ErrorIs(t, err, ErrOutOfMaxCapacity)
}

func TestNItemsBufferAsMutSlices(t *testing.T) {
	pv := pinnedvec.NewDoubling[int](32)
	col := NewFromPinned[int](pv, newMockState[int])

	slices, err := col.NItemsBufferAsMutSlices(0, 10)
	require.NoError(t, err)

	n := 0
	for _, s := range slices {
		for i := range s {
			s[i] = n
			n++
		}
	}
	assert.Equal(t, 10, n)

	for i := 0; i < 10; i++ {
		v, ok := col.Get(i)
		require.True(t, ok)
		assert.Equal(t, i, *v)
	}
}
