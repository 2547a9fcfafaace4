package dyspoissometer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildFrequencyList(t *testing.T) {
	masks := []uint16{0, 1, 1, 2, 2, 2}
	freq := BuildFrequencyList(masks, uint16(3))
	require.Equal(t, FrequencyList[uint16]{1, 2, 3}, freq)
}

func TestBuildPopulationList(t *testing.T) {
	freq := FrequencyList[uint16]{1, 2, 2, 3}
	pop := BuildPopulationList(freq, FreqMaxMinus1(freq))
	require.Equal(t, uint16(1), pop.FreqMin)
	require.Equal(t, []uint16{1, 2, 1}, pop.Pop)
}

func TestFreqMaxMinus1AllZero(t *testing.T) {
	require.Equal(t, uint16(0), FreqMaxMinus1(FrequencyList[uint16]{0, 0, 0}))
}

func TestAccruePreservesImpliedSum(t *testing.T) {
	freq := make(FrequencyList[uint8], 4)
	var implied uint8
	Accrue(freq, &implied, []uint8{0, 1, 1, 2, 3, 3, 3})
	var sum uint16
	for _, f := range freq {
		sum += uint16(f)
	}
	require.Equal(t, uint16(implied), sum)
	require.EqualValues(t, 7, implied)
}

func TestAccrueAutoscalesOnOverflow(t *testing.T) {
	freq := FrequencyList[uint8]{250, 5}
	implied := uint8(255)
	autoscaled := Accrue(freq, &implied, []uint8{0})
	require.True(t, autoscaled)
	// halveRoundEven(250) = 125, halveRoundEven(5) = 2 (5&3==1, no round-up)
	require.EqualValues(t, 126, freq[0])
	require.EqualValues(t, 2, freq[1])
}

func TestHalveRoundEven(t *testing.T) {
	freq := FrequencyList[uint16]{0, 1, 2, 3, 4, 7}
	halveRoundEven(freq)
	// f&3==3 rounds up: 3->2, 7->4; others floor-halve.
	require.Equal(t, FrequencyList[uint16]{0, 0, 1, 2, 2, 4}, freq)
}
