package pinnedcol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joeycumines/go-pinnedcol/pinnedvec"
)

func TestNewFromPinned_InitialCapacity(t *testing.T) {
	pv := pinnedvec.NewDoubling[int](32)
	pv.Push(1)
	pv.Push(2)

	col := NewFromPinned[int](pv, newMockState[int])
	assert.Equal(t, 4, col.Capacity())
	assert.Greater(t, col.MaximumCapacity(), 0)
	assert.NotNil(t, col.State())
}

func TestAssertOpen_PanicsAfterClose(t *testing.T) {
	pv := pinnedvec.NewDoubling[int](32)
	col := NewFromPinned[int](pv, newMockState[int])

	require.NoError(t, col.Close())
	assert.Panics(t, func() { _ = col.Write(0, 1) })
}

func TestClose_IsIdempotent(t *testing.T) {
	pv := pinnedvec.NewDoubling[int](32)
	col := NewFromPinned[int](pv, newMockState[int])

	require.NoError(t, col.Write(0, 1))
	require.NoError(t, col.Close())
	require.NoError(t, col.Close())
}

func TestReserveMaximumCapacity(t *testing.T) {
	pv := pinnedvec.NewDoubling[int](1)
	col := NewFromPinned[int](pv, newMockState[int])

	before := col.MaximumCapacity()
	n, err := col.ReserveMaximumCapacity(0, before*10)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, before*10)
}

func TestReserveMaximumCapacity_FailsOnFixed(t *testing.T) {
	pv := pinnedvec.NewFixed[int](4)
	col := NewFromPinned[int](pv, newMockState[int])

	_, err := col.ReserveMaximumCapacity(0, 100)
	assert.ErrorIs(t, err, ErrFailedToGrow)
}

func TestWritePermit_StringerCoversAllValues(t *testing.T) {
	assert.Equal(t, "JustWrite", JustWrite.String())
	assert.Equal(t, "GrowThenWrite", GrowThenWrite.String())
	assert.Equal(t, "Spin", Spin.String())
	assert.Equal(t, "WritePermit(invalid)", WritePermit(99).String())
}
