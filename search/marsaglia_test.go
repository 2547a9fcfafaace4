package search

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarsagliaNextWithinSpan(t *testing.T) {
	m := NewMarsaglia(123456789)
	for i := 0; i < 1000; i++ {
		v := m.Next(37)
		require.Less(t, v, uint64(37))
	}
}

func TestMarsagliaDeterministicFromSeed(t *testing.T) {
	a := NewMarsaglia(42)
	b := NewMarsaglia(42)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(1000), b.Next(1000))
	}
}

func TestMarsagliaDistinctSeedsDiverge(t *testing.T) {
	a := NewMarsaglia(1)
	b := NewMarsaglia(2)
	same := true
	for i := 0; i < 20; i++ {
		if a.Next(1<<32) != b.Next(1<<32) {
			same = false
			break
		}
	}
	require.False(t, same)
}
