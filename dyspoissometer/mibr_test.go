package dyspoissometer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMIBRNoCollision(t *testing.T) {
	masks := []uint16{0, 1, 2, 3, 4}
	require.EqualValues(t, 4, MIBR(masks))
}

func TestMIBRFirstCollisionAtIndexZeroIsSkipped(t *testing.T) {
	// 0 repeats immediately at index 1, but an earlier-index-0 collision
	// is skipped per the resolved Open Question; the next collision (2 at
	// index 4) governs instead.
	masks := []uint16{0, 0, 1, 2, 2}
	require.EqualValues(t, 3, MIBR(masks))
}

func TestMIBREmpty(t *testing.T) {
	require.EqualValues(t, 0, MIBR([]uint16{}))
}

func TestMIBRExpectedWithinRange(t *testing.T) {
	e := MIBRExpected[float64](uint16(99), uint16(49))
	require.GreaterOrEqual(t, e, 0.0)
	require.LessOrEqual(t, e, 49.0)
}

func TestSkewFromMIBRBounds(t *testing.T) {
	s := SkewFromMIBR[float64](uint16(100), uint16(0))
	require.InDelta(t, 1.0, s, 1e-9)
}

func TestMIBRFromSkewRoundTrips(t *testing.T) {
	maskSpan := uint16(200)
	for _, threshold := range []float64{0.9, 0.5, 0.1} {
		m := MIBRFromSkew[float64](maskSpan, threshold)
		require.GreaterOrEqual(t, SkewFromMIBR[float64](maskSpan, m), threshold)
	}
}
