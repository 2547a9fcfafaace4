package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMedianLogfreedomWithinBounds(t *testing.T) {
	maskIdxMax := uint16(63)
	maskMax := uint16(15)
	l := MedianLogfreedom[float64](uint16(20), maskIdxMax, maskMax, NewMarsaglia(31))
	require.GreaterOrEqual(t, l, 0.0)
	q := float64(maskIdxMax) + 1
	z := float64(maskMax) + 1
	require.LessOrEqual(t, l, q*math.Log(z)+1e-6)
}

func TestMedianLogfreedomDeterministicGivenSeed(t *testing.T) {
	a := MedianLogfreedom[float64](uint16(10), uint16(31), uint16(7), NewMarsaglia(64))
	b := MedianLogfreedom[float64](uint16(10), uint16(31), uint16(7), NewMarsaglia(64))
	require.Equal(t, a, b)
}

func TestMedianLogfreedomPowerOfTwoSpan(t *testing.T) {
	// Exercises the fast bitmask path in MaskListPseudorandom.
	l := MedianLogfreedom[float64](uint16(8), uint16(127), uint16(31), NewMarsaglia(5))
	require.GreaterOrEqual(t, l, 0.0)
}
