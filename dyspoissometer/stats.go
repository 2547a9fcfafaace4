package dyspoissometer

import "github.com/egione/enranda/numeric"

// Stats bundles the moment helpers spec.md §2 names among the metrics
// budget ("mean/variance/kurtosis helpers") without spelling out their
// formulas; these are the standard moments-about-the-mean of the
// frequency distribution a population list implies.
type Stats[R numeric.Real] struct {
	Mean     R
	Variance R
	Kurtosis R
}

// Mean returns the mean frequency of masks that actually occur, implied
// by a population list: Q divided by the number of masks with nonzero
// frequency.
func Mean[R numeric.Real, U numeric.Index](pop PopulationList[U], maskCount U) R {
	nonzero := nonzeroMaskCount(pop)
	if nonzero == 0 {
		return 0
	}
	return R(maskCount) / R(nonzero)
}

// Variance returns the variance of the frequency distribution a
// population list implies, about the given mean.
func Variance[R numeric.Real, U numeric.Index](pop PopulationList[U], mean R) R {
	nonzero := nonzeroMaskCount(pop)
	if nonzero == 0 {
		return 0
	}
	var sumSq R
	for i, h := range pop.Pop {
		if h == 0 {
			continue
		}
		freq := pop.FreqMin + U(i)
		d := R(freq) - mean
		sumSq += R(h) * d * d
	}
	return sumSq / R(nonzero)
}

// Kurtosis returns the excess kurtosis (fourth standardized moment minus
// 3) of the frequency distribution a population list implies.
func Kurtosis[R numeric.Real, U numeric.Index](pop PopulationList[U], mean, variance R) R {
	if variance == 0 {
		return 0
	}
	nonzero := nonzeroMaskCount(pop)
	if nonzero == 0 {
		return 0
	}
	var sum4 R
	for i, h := range pop.Pop {
		if h == 0 {
			continue
		}
		freq := pop.FreqMin + U(i)
		d := R(freq) - mean
		d2 := d * d
		sum4 += R(h) * d2 * d2
	}
	m4 := sum4 / R(nonzero)
	return m4/(variance*variance) - 3
}

// ComputeStats is a convenience wrapper computing Mean, Variance and
// Kurtosis in sequence over the same population list.
func ComputeStats[R numeric.Real, U numeric.Index](pop PopulationList[U], maskCount U) Stats[R] {
	mean := Mean[R](pop, maskCount)
	variance := Variance[R](pop, mean)
	kurtosis := Kurtosis[R](pop, mean, variance)
	return Stats[R]{Mean: mean, Variance: variance, Kurtosis: kurtosis}
}

func nonzeroMaskCount[U numeric.Index](pop PopulationList[U]) uint64 {
	var n uint64
	for _, h := range pop.Pop {
		n += uint64(h)
	}
	return n
}
