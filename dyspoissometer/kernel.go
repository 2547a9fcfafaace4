package dyspoissometer

import "github.com/egione/enranda/numeric"

// KernelSize returns the size of the limit cycle of the map
// i -> list[list[i]], measured as the cardinality of the set of values
// reached by iterating every starting index in parallel until that set
// stops changing between successive double-steps. Every starting index's
// trajectory under a finite self-map eventually enters its terminal
// cycle, at which point list[list[x]] permutes the cycle among itself
// and the visited-value set stabilizes, so this loop is guaranteed to
// terminate.
func KernelSize[U numeric.Index](list []U) int {
	n := len(list)
	if n == 0 {
		return 0
	}
	cur := make([]U, n)
	for i := range cur {
		cur[i] = U(i)
	}
	prev := make([]bool, n)
	for {
		next := make([]U, n)
		visited := make([]bool, n)
		for i, v := range cur {
			nv := list[list[v]]
			next[i] = nv
			visited[nv] = true
		}
		if boolSliceEqual(visited, prev) {
			return popCountBool(visited)
		}
		cur = next
		prev = visited
	}
}

func boolSliceEqual(a, b []bool) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func popCountBool(b []bool) int {
	n := 0
	for _, v := range b {
		if v {
			n++
		}
	}
	return n
}

// ExpectedKernelDensityFast returns E[S0], the expected kernel density
// for a mask list of length maskCount, by summing
// Q!/((Q-p)!*Q^p) for p on [1, Q-1] (in log space, via numeric.LogSum,
// to avoid factorial overflow), stopping the first time a term
// underflows to zero.
func ExpectedKernelDensityFast[R numeric.Real, U numeric.Index](maskCount U) R {
	if maskCount == 0 {
		return 0
	}
	q := R(maskCount)
	logQ := numeric.Log(q)
	qLogSum := numeric.LogSum[R](maskCount)
	sum := R(1)
	for p := U(1); p < maskCount; p++ {
		logTerm := qLogSum - numeric.LogSum[R](maskCount-p) - R(p)*logQ
		term := numeric.Exp(logTerm)
		if term == 0 {
			break
		}
		sum += term
	}
	return sum / q
}

// ExpectedKernelDensitySlow computes the same sum as
// ExpectedKernelDensityFast, but first binary-searches the largest p
// whose term is nonzero, then accumulates from that largest p down to 1
// so that the smallest-magnitude terms are added first, preserving
// precision in the running sum. p is tracked with a signed counter
// internally since Go unsigned integers cannot be decremented past zero
// the way original_source's do-while post-decrement idiom relies on.
func ExpectedKernelDensitySlow[R numeric.Real, U numeric.Index](maskCount U) R {
	q := int64(maskCount)
	if q == 0 {
		return 0
	}
	logQ := numeric.Log(R(q))
	qLogSum := numeric.LogSum[R](maskCount)
	term := func(p int64) R {
		return numeric.Exp(qLogSum - numeric.LogSum[R](U(q-p)) - R(p)*logQ)
	}
	var pMax int64
	if q > 1 {
		lo, hi := int64(1), q-1
		if term(hi) != 0 {
			pMax = hi
		} else {
			for lo < hi {
				mid := lo + (hi-lo)/2
				if term(mid) != 0 {
					pMax = mid
					lo = mid + 1
				} else {
					hi = mid
				}
			}
		}
	}
	sum := R(0)
	for p := pMax; p >= 1; p-- {
		sum += term(p)
	}
	sum += 1
	return sum / R(q)
}

// KernelSkew returns a two-sided normalized deviation of density from
// expected: 0.5*density/expected when density<=expected, else
// 0.5*(2-expected/density), clamped to [0,1].
func KernelSkew[R numeric.Real](density, expected R) R {
	if expected == 0 {
		return 0
	}
	var skew R
	if density <= expected {
		skew = 0.5 * density / expected
	} else {
		skew = 0.5 * (2 - expected/density)
	}
	return numeric.Clamp01(skew)
}
