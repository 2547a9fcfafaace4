package dyspoissometer

import (
	"github.com/egione/enranda/numeric"
	"github.com/egione/enranda/radixsort"
)

// MIBR returns the maximum index before repetition: the length of the
// longest all-distinct prefix of masks, less one, or len(masks)-1 if no
// collision occurs. It is computed by sorting masks with a parallel
// original-index array and, within each run of equal values, taking the
// minimum (second-occurrence original index - 1) over all adjacent
// pairs; since the sorted run's original indexes increase monotonically,
// the minimum next falls on the first non-skipped adjacent pair, which
// is exactly the earliest point in the original sequence at which any
// value repeats.
//
// Open Question resolution (see DESIGN.md): a second occurrence whose
// earlier original index is 0 is skipped, per spec.md's stated preferred
// reading of the ambiguous source.
func MIBR[U numeric.Index](masks []U) U {
	n := len(masks)
	if n == 0 {
		return 0
	}
	maskIdxMax := U(n - 1)
	sorted := make([]U, n)
	copy(sorted, masks)
	idx := make([]uint32, n)
	for i := range idx {
		idx[i] = uint32(i)
	}
	radixsort.SortWithIndex(sorted, idx)
	best := maskIdxMax
	found := false
	i := 0
	for i < n {
		j := i
		for j < n && sorted[j] == sorted[i] {
			j++
		}
		if j-i > 1 {
			positions := append([]uint32(nil), idx[i:j]...)
			insertionSortUint32(positions)
			for k := 1; k < len(positions); k++ {
				if positions[k-1] == 0 {
					continue
				}
				ibr := U(positions[k] - 1)
				if !found || ibr < best {
					best = ibr
					found = true
				}
			}
		}
		i = j
	}
	if !found {
		return maskIdxMax
	}
	return best
}

func insertionSortUint32(list []uint32) {
	for i := 1; i < len(list); i++ {
		v := list[i]
		j := i - 1
		for j >= 0 && list[j] > v {
			list[j+1] = list[j]
			j--
		}
		list[j+1] = v
	}
}

// MIBRExpected returns the expected (mean) MIBR for mask count
// (maskIdxMax+1) and mask span (maskMax+1), via the weighted-sum closed
// form from
// original_source/dyspoissometer.c's dyspoissometer_mibr_expected_get.
func MIBRExpected[R numeric.Real, U numeric.Index](maskIdxMax, maskMax U) R {
	if maskIdxMax == 0 || maskMax == 0 {
		return 0
	}
	maskSpan := R(maskMax) + 1
	maskSpanRecip := 1 / maskSpan
	mibrMax := maskIdxMax
	if maskMax < mibrMax {
		mibrMax = maskMax
	}
	weightPartial := R(maskMax) * maskSpanRecip * maskSpanRecip
	weightSum := maskSpanRecip
	var mibrExpected R
	mibr := U(1)
	for {
		mibrExpectedOld := mibrExpected
		weight := (R(mibr) + 1) * weightPartial
		mibrExpected += R(mibr) * weight
		weightSum += weight
		weightPartial *= R(maskMax-mibr) * maskSpanRecip
		if mibrExpected == mibrExpectedOld || mibr == mibrMax {
			break
		}
		mibr++
	}
	mibrExpected += R(mibrMax) * (1 - weightSum)
	if mibrExpected <= 0 {
		return 0
	}
	if R(mibrMax) < mibrExpected {
		return R(mibrMax)
	}
	return mibrExpected
}

// SkewFromMIBR returns exp(log((Z-1)!) - log((Z-1-m)!) - m*log(Z)),
// clamped to [0,1].
func SkewFromMIBR[R numeric.Real, U numeric.Index](maskSpan, mibr U) R {
	logVal := numeric.LogSum[R](maskSpan-1) - numeric.LogSum[R](maskSpan-1-mibr) - R(mibr)*numeric.Log(R(maskSpan))
	return numeric.Clamp01(numeric.Exp(logVal))
}

// MIBRFromSkew binary-searches [0, maskSpan-1] for the largest m whose
// SkewFromMIBR(maskSpan, m) is still >= threshold.
func MIBRFromSkew[R numeric.Real, U numeric.Index](maskSpan U, threshold R) U {
	if maskSpan == 0 {
		return 0
	}
	lo, hi := U(0), maskSpan-1
	best := U(0)
	for {
		mid := lo + (hi-lo)/2
		if SkewFromMIBR[R](maskSpan, mid) >= threshold {
			best = mid
			if mid == hi {
				break
			}
			lo = mid + 1
		} else {
			if mid == lo {
				break
			}
			hi = mid - 1
		}
	}
	return best
}
