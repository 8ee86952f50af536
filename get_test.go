package pinnedcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/go-pinnedcol/pinnedvec"
)

func TestGet_OutOfCapacityIsFalse(t *testing.T) {
	pv := pinnedvec.NewFixed[int](4)
	col := NewFromPinned[int](pv, newMockState[int])

	_, ok := col.Get(4)
	assert.False(t, ok)
}

func TestGetMut_SharesStorageWithGet(t *testing.T) {
	pv := pinnedvec.NewDoubling[int](8)
	col := NewFromPinned[int](pv, newMockState[int])
	require.NoError(t, col.Write(0, 1))

	p, ok := col.GetMut(0)
	require.True(t, ok)
	*p = 42

	v, ok := col.Get(0)
	require.True(t, ok)
	assert.Equal(t, 42, *v)
}

func TestIterOverRange_VisitsInOrderAcrossFragments(t *testing.T) {
	pv := pinnedvec.NewDoubling[int](8)
	col := NewFromPinned[int](pv, newMockState[int])
	for i := 0; i < 12; i++ {
		require.NoError(t, col.Write(i, i))
	}

	var got []int
	col.IterOverRange(0, 12, func(v *int) bool {
		got = append(got, *v)
		return true
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, got)
}

func TestIter_StopsEarly(t *testing.T) {
	pv := pinnedvec.NewDoubling[int](8)
	col := NewFromPinned[int](pv, newMockState[int])
	for i := 0; i < 8; i++ {
		require.NoError(t, col.Write(i, i))
	}

	var got []int
	col.Iter(8, func(v *int) bool {
		got = append(got, *v)
		return *v < 2
	})
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestSingleItemAsRef_PanicsOutOfRange(t *testing.T) {
	pv := pinnedvec.NewFixed[int](2)
	col := NewFromPinned[int](pv, newMockState[int])
	assert.Panics(t, func() { col.SingleItemAsRef(5) })
}
