package probemap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet(t *testing.T) {
	ss := NewSet(WithCapacity[uint64, struct{}](4096))

	require.Equal(t, 4096, ss.t.Cap())
	require.Equal(t, 4096*65/100, ss.Stats().EffectiveCapacity)
}

func TestSet_Add(t *testing.T) {
	ss := NewSet[uint64]()

	require.True(t, ss.Add(1))
	require.False(t, ss.Add(1))
	assert.Equal(t, 1, ss.Len())
	assert.True(t, ss.Has(1))
	assert.False(t, ss.Has(2))
}

func TestSet_Add_Grow(t *testing.T) {
	ss := NewSet(WithCapacity[uint64, struct{}](16))

	for i := range uint64(1000) {
		require.True(t, ss.Add(i))
	}

	require.Equal(t, 1000, ss.Len())
	require.Equal(t, 2048, ss.Stats().Capacity)

	for i := range uint64(1000) {
		require.True(t, ss.Has(i))
	}
}

func TestSet_Tombstones(t *testing.T) {
	ss := NewSet(
		WithCapacity[string, struct{}](16),
		WithHashFunc[string, struct{}](collisionHash),
	)

	require.True(t, ss.Add("A"))
	require.True(t, ss.Add("B"))
	require.True(t, ss.Add("C"))

	// Delete the "bridge" element
	require.True(t, ss.Delete("B"))
	require.False(t, ss.Delete("B"))

	// Verify we can still find "C" even though there's a hole at "B"
	require.True(t, ss.Has("C"), "Probe chain broken: could not find 'C' after deleting 'B'")
	require.Equal(t, 1, ss.Stats().Tombstones)

	ss.Compact()
	require.Equal(t, 0, ss.Stats().Tombstones)
	require.True(t, ss.Has("C"))
}

func TestSet_All(t *testing.T) {
	ss := NewSetWithHasher[string](StringHasher{})
	for _, k := range []string{"foo", "bar", "baz"} {
		ss.Add(k)
	}

	require.Equal(t, []string{"bar", "baz", "foo"}, slices.Sorted(ss.All()))

	ss.Reset()
	require.Equal(t, 0, ss.Len())
	require.False(t, ss.Has("foo"))
}
