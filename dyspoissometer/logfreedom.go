package dyspoissometer

import (
	"github.com/egione/enranda/numeric"
	"github.com/egione/enranda/radixsort"
)

// LogfreedomDense computes L = log(Q!) + log(Z!) - log(h0!) -
// sum_i(log(H[f_i]!) + H[f_i]*log(f_i!)) from a population list, where
// h0 = Z - sum(H). Every factorial is evaluated via log-gamma
// (numeric.LogSum), never by accumulating log(k) in a loop. The result
// is clamped to >= 0 as a guard against negative epsilons from rounding.
func LogfreedomDense[R numeric.Real, U numeric.Index](pop PopulationList[U], maskCount, maskSpan U) R {
	var sumH uint64
	var sumTerm R
	for i, h := range pop.Pop {
		if h == 0 {
			continue
		}
		freq := pop.FreqMin + U(i)
		sumH += uint64(h)
		sumTerm += numeric.LogSum[R](h) + R(h)*numeric.LogSum[R](freq)
	}
	h0 := U(uint64(maskSpan) - sumH)
	l := numeric.LogSum[R](maskCount) + numeric.LogSum[R](maskSpan) - numeric.LogSum[R](h0) - sumTerm
	return numeric.ClampNonNegative(l)
}

// LogfreedomSparse computes the same quantity as LogfreedomDense, but
// from a raw frequency list rather than a pre-built population list: it
// compacts freq to its nonzero values, sorts them ascending with the
// shared radixsort, then walks runs of equal frequency to recover each
// (population, frequency) pair the dense path would have been handed
// directly. This is functionally equivalent to, though simpler than, the
// original's binary-searched run boundaries (original_source's
// dyspoissometer_logfreedom_sparse_get) since a single linear scan over
// an already-sorted list finds the same run boundaries.
func LogfreedomSparse[R numeric.Real, U numeric.Index](freq FrequencyList[U], maskCount, maskSpan U) R {
	nonzero := make([]U, 0, len(freq))
	for _, f := range freq {
		if f != 0 {
			nonzero = append(nonzero, f)
		}
	}
	radixsort.Sort(nonzero)
	var sumTerm R
	i := 0
	for i < len(nonzero) {
		j := i
		for j < len(nonzero) && nonzero[j] == nonzero[i] {
			j++
		}
		runLen := U(j - i)
		freqVal := nonzero[i]
		sumTerm += numeric.LogSum[R](runLen) + R(runLen)*numeric.LogSum[R](freqVal)
		i = j
	}
	h0 := maskSpan - U(len(nonzero))
	l := numeric.LogSum[R](maskCount) + numeric.LogSum[R](maskSpan) - numeric.LogSum[R](h0) - sumTerm
	return numeric.ClampNonNegative(l)
}

// Dyspoissonism returns 1 - L/(Q*log(Z)), clamped to [0,1]. It is defined
// as 0 when Q==0 or Z==1, since the denominator vanishes; the Z->1+
// mathematical limit is 1, but the original's Q==0/Z==1 convention of
// returning 0 is preserved here rather than special-cased away (see
// DESIGN.md's Open Question resolution).
func Dyspoissonism[R numeric.Real, U numeric.Index](logfreedom R, maskCount, maskSpan U) R {
	if maskCount == 0 || maskSpan == 1 {
		return 0
	}
	return numeric.Clamp01(1 - logfreedom/(R(maskCount)*numeric.Log(R(maskSpan))))
}

// Sparsity returns 1 - L/Lmax, clamped to [0,1]. Lmax==0 is degenerate
// (every mask list compatible with (Q,Z) has the same, maximal,
// logfreedom) and is defined as sparsity 0.
func Sparsity[R numeric.Real](logfreedom, logfreedomMax R) R {
	if logfreedomMax == 0 {
		return 0
	}
	return numeric.Clamp01(1 - logfreedom/logfreedomMax)
}
