package radixsort

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortMatchesStandardLibrary(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	list := make([]uint32, 2000)
	for i := range list {
		list[i] = r.Uint32()
	}
	want := append([]uint32(nil), list...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	Sort(list)
	require.Equal(t, want, list)
}

func TestSortAlreadyMonotoneShortCircuits(t *testing.T) {
	list := []uint16{1, 2, 3, 4, 5}
	Sort(list)
	require.Equal(t, []uint16{1, 2, 3, 4, 5}, list)
}

func TestSortWithIndexIsInversePermutation(t *testing.T) {
	list := []uint32{30, 10, 20, 10}
	idx := []uint32{0, 1, 2, 3}
	SortWithIndex(list, idx)
	require.Equal(t, []uint32{10, 10, 20, 30}, list)
	for i, original := range idx {
		require.Equal(t, list[i], []uint32{30, 10, 20, 10}[original])
	}
}

func TestSortFloat64PreservesOrderForNonnegatives(t *testing.T) {
	list := []float64{3.5, 0, 1.25, 2.0, 0.001}
	SortFloat64(list)
	require.Equal(t, []float64{0, 0.001, 1.25, 2.0, 3.5}, list)
}

func TestSortEmptyAndSingleton(t *testing.T) {
	var empty []uint32
	Sort(empty)
	single := []uint32{7}
	Sort(single)
	require.Equal(t, []uint32{7}, single)
}
