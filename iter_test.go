package probemap

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comparePairs(a, b Pair[string, int]) int {
	return strings.Compare(a.Key, b.Key)
}

func TestTable_Drain(t *testing.T) {
	want := make([]Pair[string, int], 0, 10_000)
	for i := range 10_000 {
		want = append(want, Pair[string, int]{Key: strconv.Itoa(i), Value: i})
	}

	tt := New[string, int]()
	for _, p := range want {
		tt.Insert(p.Key, p.Value)
	}

	capacity := tt.Cap()

	var got []Pair[string, int]
	for k, v := range tt.Drain() {
		got = append(got, Pair[string, int]{Key: k, Value: v})
	}

	slices.SortFunc(want, comparePairs)
	slices.SortFunc(got, comparePairs)
	require.Equal(t, want, got)

	require.True(t, tt.IsEmpty())
	require.Equal(t, capacity, tt.Cap())

	_, ok := tt.Get("42")
	require.False(t, ok)
}

func TestTable_Drain_Break(t *testing.T) {
	tt := New(WithCapacity[int, int](16))
	for i := range 8 {
		tt.Insert(i, i)
	}

	n := 0
	for range tt.Drain() {
		n++
		if n == 3 {
			break
		}
	}

	require.Equal(t, 3, n)
	require.True(t, tt.IsEmpty())
	require.Empty(t, slices.Collect(tt.Keys()))

	// Still usable afterwards.
	tt.Insert(1, 10)
	v, ok := tt.Get(1)
	require.True(t, ok)
	require.Equal(t, 10, v)
}

func TestTable_All(t *testing.T) {
	tt := New[string, int]()
	for i := range 10_000 {
		tt.Insert(strconv.Itoa(i), i)
	}
	tt.Remove("7")
	tt.Insert("8", 80)

	got := maps.Collect(tt.All())

	require.Len(t, got, tt.Len())
	for i := range 10_000 {
		v, ok := got[strconv.Itoa(i)]

		switch i {
		case 7:
			require.False(t, ok)
		case 8:
			require.Equal(t, 80, v)
		default:
			require.Equal(t, i, v)
		}
	}

	// Borrowing leaves the table intact.
	require.Equal(t, 9_999, tt.Len())
}

func TestTable_All_Restartable(t *testing.T) {
	tt := New(WithCapacity[int, string](16))
	for i := range 5 {
		tt.Insert(i, strconv.Itoa(i))
	}

	all := tt.All()

	first := maps.Collect(all)
	second := maps.Collect(all)
	require.Equal(t, first, second)
	require.Len(t, first, 5)
}

func TestTable_KeysValues(t *testing.T) {
	tt := New(WithCapacity[int, int](16))
	for i := range 5 {
		tt.Insert(i, i*10)
	}

	keys := slices.Sorted(tt.Keys())
	values := slices.Sorted(tt.Values())

	require.Equal(t, []int{0, 1, 2, 3, 4}, keys)
	require.Equal(t, []int{0, 10, 20, 30, 40}, values)
}

func TestIterator(t *testing.T) {
	tt := New(
		WithCapacity[string, int](16),
		WithProber[string, int](LinearProber{}),
		WithHashFunc[string, int](collisionHash),
	)
	tt.Insert("a", 1)
	tt.Insert("b", 2)
	tt.Insert("c", 3)
	tt.Remove("b")

	it := tt.Iterator()

	// Not positioned yet.
	assert.Zero(t, it.Key())
	assert.Zero(t, it.Value())

	var got []Pair[string, int]
	for it.Next() {
		got = append(got, it.Pair())
	}

	// Slot order: a at 0, tombstone at 1, c at 2.
	require.Equal(t, []Pair[string, int]{{"a", 1}, {"c", 3}}, got)

	require.False(t, it.Next())
	assert.Zero(t, it.Pair())
}

func TestIterator_Empty(t *testing.T) {
	it := New[int, int]().Iterator()

	require.False(t, it.Next())
}
