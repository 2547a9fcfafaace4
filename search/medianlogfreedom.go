package search

import (
	"github.com/egione/enranda/dyspoissometer"
	"github.com/egione/enranda/numeric"
	"github.com/egione/enranda/radixsort"
)

// MedianLogfreedom estimates the typical logfreedom of a mask list with
// mask count (maskIdxMax+1) and mask span (maskMax+1) by generating
// (iterationMax+1) independent pseudorandom mask lists with
// MaskListPseudorandom, computing each one's dense logfreedom, sorting
// the results, and returning the sample at index iterationMax/2 —
// grounded in original_source/dyspoissometer.c's
// dyspoissometer_logfreedom_median_get, which indexes the sorted list
// with iteration_max>>1 rather than sample_count>>1; the two differ
// whenever iterationMax is odd, so the original's exact index is kept
// rather than re-deriving it from the sample count.
func MedianLogfreedom[R numeric.Real, U numeric.Index](iterationMax U, maskIdxMax, maskMax U, m *Marsaglia) R {
	maskCount := maskIdxMax + 1
	maskSpan := maskMax + 1
	sampleCount := int(iterationMax) + 1
	samples := make([]float64, sampleCount)
	masks := make([]U, maskCount)
	for s := 0; s < sampleCount; s++ {
		MaskListPseudorandom(masks, maskMax, m)
		freq := dyspoissometer.BuildFrequencyList(masks, maskSpan)
		freqMaxMinus1 := dyspoissometer.FreqMaxMinus1(freq)
		pop := dyspoissometer.BuildPopulationList(freq, freqMaxMinus1)
		l := dyspoissometer.LogfreedomDense[R](pop, maskCount, maskSpan)
		samples[s] = float64(l)
	}
	radixsort.SortFloat64(samples)
	return R(samples[int(iterationMax)/2])
}
