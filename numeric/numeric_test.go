package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogSumMatchesFactorialLogForSmallN(t *testing.T) {
	fact := 1.0
	for n := uint32(0); n <= 10; n++ {
		if n > 0 {
			fact *= float64(n)
		}
		got := LogSum[float64](n)
		require.InDelta(t, math.Log(fact), got, 1e-9)
	}
}

func TestLogSumNPlus1(t *testing.T) {
	require.InDelta(t, LogSum[float64](uint32(6)), LogSumNPlus1[float64](uint32(5)), 1e-12)
}

func TestClamp01(t *testing.T) {
	require.Equal(t, 0.0, Clamp01(-0.5))
	require.Equal(t, 1.0, Clamp01(1.5))
	require.Equal(t, 0.25, Clamp01(0.25))
}

func TestClampNonNegative(t *testing.T) {
	require.Equal(t, 0.0, ClampNonNegative(-1e-12))
	require.Equal(t, 3.0, ClampNonNegative(3.0))
}

func TestIndexMax(t *testing.T) {
	require.Equal(t, uint16(0xFFFF), IndexMax[uint16]())
	require.Equal(t, uint32(0xFFFFFFFF), IndexMax[uint32]())
}

func TestRoundTiesAwayFromZero(t *testing.T) {
	require.Equal(t, 3.0, Round(2.5))
	require.Equal(t, -3.0, Round(-2.5))
}
