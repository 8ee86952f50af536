package orderedbag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentOrderedBag_InOrderWrites(t *testing.T) {
	b := NewDoubling[int](8)
	for i := 0; i < 30; i++ {
		require.NoError(t, b.PushAt(i, i*i))
	}
	assert.Equal(t, 30, b.Len())

	for i := 0; i < 30; i++ {
		v, ok := b.Get(i)
		require.True(t, ok)
		assert.Equal(t, i*i, *v)
	}
}

func TestConcurrentOrderedBag_OutOfOrderWritesStillConverge(t *testing.T) {
	// fragments of 32 elements: every index below is within the initial
	// capacity, so no write lands beyond the frontier.
	b := NewLinear[int](5, 4)

	// Write every odd index first, then every even index -- frontier
	// should stay at 0 until index 0 lands, then sweep forward.
	for i := 1; i < 20; i += 2 {
		require.NoError(t, b.PushAt(i, i))
	}
	assert.Equal(t, 0, b.Len())

	for i := 0; i < 20; i += 2 {
		require.NoError(t, b.PushAt(i, i))
	}
	assert.Equal(t, 20, b.Len())
}

func TestConcurrentOrderedBag_ConcurrentOutOfOrderWrites(t *testing.T) {
	const n = 500
	b := NewDoubling[int](16)

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	// reverse order, fanned out across goroutines
	var g errgroup.Group
	for i := n - 1; i >= 0; i-- {
		idx := i
		g.Go(func() error { return b.PushAt(idx, idx*2) })
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, n, b.Len())
	for i := 0; i < n; i++ {
		v, ok := b.Get(i)
		require.True(t, ok)
		assert.Equal(t, i*2, *v)
	}
}

func TestConcurrentOrderedBag_FixedCapacityExhausted(t *testing.T) {
	b := NewFixed[int](4)
	for i := 0; i < 4; i++ {
		require.NoError(t, b.PushAt(i, i))
	}
	assert.Error(t, b.PushAt(4, 99))
}
