package dyspoissometer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogfreedomDenseAndSparseAgree(t *testing.T) {
	masks := []uint16{0, 0, 1, 2, 2, 2, 3, 4, 4}
	maskCount := uint16(len(masks))
	maskSpan := uint16(5)
	freq := BuildFrequencyList(masks, maskSpan)
	pop := BuildPopulationList(freq, FreqMaxMinus1(freq))

	dense := LogfreedomDense[float64](pop, maskCount, maskSpan)
	sparse := LogfreedomSparse[float64](freq, maskCount, maskSpan)
	require.InDelta(t, dense, sparse, 1e-9)
}

func TestLogfreedomBounds(t *testing.T) {
	masks := []uint16{0, 1, 2, 3, 4, 5, 6, 7}
	maskCount := uint16(len(masks))
	maskSpan := uint16(8)
	freq := BuildFrequencyList(masks, maskSpan)
	pop := BuildPopulationList(freq, FreqMaxMinus1(freq))
	l := LogfreedomDense[float64](pop, maskCount, maskSpan)
	require.GreaterOrEqual(t, l, 0.0)
	require.LessOrEqual(t, l, float64(maskCount)*math.Log(float64(maskSpan)))
}

func TestDyspoissonismRange(t *testing.T) {
	masks := []uint16{0, 0, 0, 1}
	freq := BuildFrequencyList(masks, uint16(2))
	pop := BuildPopulationList(freq, FreqMaxMinus1(freq))
	l := LogfreedomDense[float64](pop, uint16(4), uint16(2))
	d := Dyspoissonism(l, uint16(4), uint16(2))
	require.GreaterOrEqual(t, d, 0.0)
	require.LessOrEqual(t, d, 1.0)
}

func TestDyspoissonismZeroWhenDegenerate(t *testing.T) {
	require.Equal(t, 0.0, Dyspoissonism(0.0, uint16(0), uint16(5)))
	require.Equal(t, 0.0, Dyspoissonism(0.0, uint16(3), uint16(1)))
}

func TestSparsityDegenerate(t *testing.T) {
	require.Equal(t, 0.0, Sparsity(0.5, 0.0))
}

func TestSparsityRange(t *testing.T) {
	s := Sparsity(1.0, 4.0)
	require.InDelta(t, 0.75, s, 1e-12)
}
