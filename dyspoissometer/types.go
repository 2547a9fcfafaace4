// Package dyspoissometer computes the distribution-shape metrics used to
// characterize how close a finite mask sequence sits to the maximum-
// entropy distribution its count and span constraints allow:
// logfreedom, dyspoissonism, sparsity, the kernel family, the MIBR
// family, and the moment helpers (mean/variance/kurtosis). It is grounded
// on original_source/dyspoissometer.c, realized with Go generics over the
// numeric package's Real/Index precision pair in place of the original's
// compile-time DYSPOISSOMETER_NUMBER/DYSPOISSOMETER_UINT macros.
package dyspoissometer

import "github.com/egione/enranda/numeric"

// FrequencyList is a dense array of per-mask occurrence counts, indexed
// by mask value on [0, maskMax].
type FrequencyList[U numeric.Index] []U

// PopulationList is a dense array of per-frequency mask counts. Pop[i]
// is the number of masks whose frequency is exactly (FreqMin + i).
type PopulationList[U numeric.Index] struct {
	FreqMin U
	Pop     []U
}

// BuildFrequencyList tabulates occurrences of each mask in masks into a
// dense frequency list spanning [0, maskSpan).
func BuildFrequencyList[U numeric.Index](masks []U, maskSpan U) FrequencyList[U] {
	freq := make(FrequencyList[U], maskSpan)
	for _, m := range masks {
		freq[m]++
	}
	return freq
}

// FreqMaxMinus1 returns the largest frequency value present in freq, less
// one; this sizes the population list built from freq.
func FreqMaxMinus1[U numeric.Index](freq FrequencyList[U]) U {
	var max U
	for _, f := range freq {
		if f > max {
			max = f
		}
	}
	if max == 0 {
		return 0
	}
	return max - 1
}

// BuildPopulationList converts a frequency list into a population list
// indexed from FreqMin=1; masks that never occur are excluded, matching
// the convention the logfreedom and median-logfreedom paths share.
func BuildPopulationList[U numeric.Index](freq FrequencyList[U], freqMaxMinus1 U) PopulationList[U] {
	pop := PopulationList[U]{FreqMin: 1, Pop: make([]U, freqMaxMinus1+1)}
	for _, f := range freq {
		if f == 0 {
			continue
		}
		pop.Pop[f-1]++
	}
	return pop
}

// Accrue folds masks into freq in index order (oldest first), tracking
// the implied total mask count in *maskCountImplied. Whenever the
// implied total would overflow U on the next mask, every entry of freq
// is halved with round-half-to-even (f -> (f>>1) + (f&3==3)) and the
// implied count is recomputed from the halved list before the mask is
// folded in. This is the exponential-decay autoscaling that bounds
// freq's representation for an indefinite mask stream: older memory
// fades faster than newer. Accrue reports whether autoscaling occurred
// at least once.
func Accrue[U numeric.Index](freq FrequencyList[U], maskCountImplied *U, masks []U) bool {
	uintMax := numeric.IndexMax[U]()
	autoscaled := false
	for _, mask := range masks {
		if *maskCountImplied == uintMax {
			halveRoundEven(freq)
			*maskCountImplied = sumFreq(freq)
			autoscaled = true
		}
		freq[mask]++
		*maskCountImplied++
	}
	return autoscaled
}

func halveRoundEven[U numeric.Index](freq FrequencyList[U]) {
	for i, f := range freq {
		var roundUp U
		if f&3 == 3 {
			roundUp = 1
		}
		freq[i] = (f >> 1) + roundUp
	}
}

func sumFreq[U numeric.Index](freq FrequencyList[U]) U {
	var sum uint64
	for _, f := range freq {
		sum += uint64(f)
	}
	return U(sum)
}
