package search

import (
	"github.com/egione/enranda/dyspoissometer"
	"github.com/egione/enranda/numeric"
)

// growableList is a population list indexed by raw frequency value
// rather than an offset from a fixed base, growing its backing slice
// (and sliding FreqMin) whenever a write lands outside the current
// window. This plays the role original_source's manual power-of-2
// doubling-and-recentering reallocation of pop_list_base plays, without
// needing to replicate its pointer arithmetic: Go's append already
// amortizes the cost, and sliding FreqMin on underflow keeps addressing
// by frequency value simple throughout the rest of the search.
type growableList struct {
	freqMin int64
	pop     []int64
}

func newGrowableList(freqMin int64, size int) *growableList {
	return &growableList{freqMin: freqMin, pop: make([]int64, size)}
}

func (g *growableList) get(freq int64) int64 {
	idx := freq - g.freqMin
	if idx < 0 || idx >= int64(len(g.pop)) {
		return 0
	}
	return g.pop[idx]
}

func (g *growableList) set(freq, v int64) {
	if freq < g.freqMin {
		grow := g.freqMin - freq
		extended := make([]int64, int64(len(g.pop))+grow)
		copy(extended[grow:], g.pop)
		g.pop = extended
		g.freqMin = freq
	} else if freq-g.freqMin >= int64(len(g.pop)) {
		grow := freq - g.freqMin - int64(len(g.pop)) + 1
		g.pop = append(g.pop, make([]int64, grow)...)
	}
	g.pop[freq-g.freqMin] = v
}

func (g *growableList) clone() *growableList {
	pop := make([]int64, len(g.pop))
	copy(pop, g.pop)
	return &growableList{freqMin: g.freqMin, pop: pop}
}

// toPopulationList converts the growable list to the dense
// dyspoissometer.PopulationList representation LogfreedomDense expects.
func toPopulationList[U numeric.Index](g *growableList) dyspoissometer.PopulationList[U] {
	pop := make([]U, len(g.pop))
	for i, v := range g.pop {
		if v > 0 {
			pop[i] = U(v)
		}
	}
	return dyspoissometer.PopulationList[U]{FreqMin: U(g.freqMin), Pop: pop}
}

// LogfreedomMax approximates the maximum logfreedom attainable by any
// mask list with mask count (maskIdxMax+1) and mask span (maskMax+1), by
// Monte-Carlo hill-climbing over population lists with noise injection
// to escape local maxima (original_source's
// dyspoissometer_logfreedom_max_get). Cheap closed forms are used for
// Z==1, Z==2, and Q<=3 without running the search at all. iterationMax
// is the number of search iterations, less one.
func LogfreedomMax[R numeric.Real, U numeric.Index](iterationMax uint64, maskIdxMax, maskMax U, m *Marsaglia) R {
	if !(maskIdxMax > 2 && maskMax > 1) {
		return closedFormLogfreedomMax[R](maskIdxMax, maskMax)
	}
	maskCount := int64(maskIdxMax) + 1
	maskSpan := int64(maskMax) + 1
	lambda := maskCount / maskSpan
	lambdaXSpan := lambda * maskSpan
	popLambdaPlus1 := maskCount - lambdaXSpan
	popLambda := maskSpan - popLambdaPlus1

	pop := newGrowableList(lambda, 2)
	pop.set(lambda, popLambda)
	pop.set(lambda+1, popLambdaPlus1)
	best := pop.clone()

	nzMin, nzMax := lambda, lambda+1
	nzMinBest, nzMaxBest := nzMin, nzMax

	logfreedomDeltaSum := R(0)
	var iterationLastChange uint64

	for iteration := uint64(0); ; iteration++ {
		downFreq, upFreq, popDownRightI, popUpLeftI := drawMove(pop, nzMin, nzMax, m)

		popDownLeftI := pop.get(downFreq - 1)
		popUpRightI := pop.get(upFreq + 1)
		popDownLeft, popDownRight := R(popDownLeftI), R(popDownRightI)
		popUpLeft, popUpRight := R(popUpLeftI), R(popUpRightI)
		freqExpression := numeric.Log[R](R(downFreq)) - numeric.Log[R](R(upFreq+1))

		branch := branchFor(downFreq, upFreq)
		ldd := func(d int64) R {
			return deltaDelta(branch, freqExpression, popDownLeft, popDownRight, popUpLeft, popUpRight, d)
		}

		popDeltaMax := popDownRightI
		if popUpLeftI < popDeltaMax {
			popDeltaMax = popUpLeftI
		}
		if branch == branchOverlap {
			popDeltaMax >>= 1
		}
		popDeltaMin := int64(1)
		popDeltaMaxMinus1 := popDeltaMax - popDeltaMin
		if popDeltaMaxMinus1 > 0 && ldd(1) > 0 {
			lo, hi := popDeltaMin, popDeltaMaxMinus1
			for lo != hi {
				mid := hi - ((hi - lo) >> 1)
				if ldd(mid) > 0 {
					lo = mid
				} else {
					hi = mid - 1
				}
			}
			popDeltaMin = lo + 1
		}
		delta := popDeltaMin

		logfreedomDelta, newDownLeft, newDownRight, newUpLeft, newUpRight := applyMove(
			branch, freqExpression, popDownLeft, popDownRight, popUpLeft, popUpRight, delta)
		pop.set(downFreq-1, int64(numeric.Round(newDownLeft)))
		pop.set(downFreq, int64(numeric.Round(newDownRight)))
		pop.set(upFreq, int64(numeric.Round(newUpLeft)))
		pop.set(upFreq+1, int64(numeric.Round(newUpRight)))

		if downFreq == nzMin {
			nzMin--
		} else if downFreq == nzMax && newDownRight == 0 && upFreq < downFreq {
			nzMax--
		}
		if upFreq == nzMax {
			nzMax++
		} else if upFreq == nzMin && newUpLeft == 0 && upFreq < downFreq {
			nzMin--
		}

		logfreedomDeltaSum += logfreedomDelta
		if logfreedomDeltaSum > 0 {
			logfreedomDeltaSum = 0
			iterationLastChange = iteration
			best = pop.clone()
			nzMinBest, nzMaxBest = nzMin, nzMax
		} else if uint64(nzMax-nzMin+1) <= iteration-iterationLastChange {
			logfreedomDeltaSum = 0
			iterationLastChange = iteration
			pop = best.clone()
			nzMin, nzMax = nzMinBest, nzMaxBest
		}

		if iteration == iterationMax {
			break
		}
	}

	bestPop := toPopulationList[U](best)
	logfreedomMax := dyspoissometer.LogfreedomDense[R](bestPop, U(maskCount), U(maskSpan))
	return numeric.ClampNonNegative(logfreedomMax)
}

// drawMove draws a random (down, up) frequency pair within the
// nonzero-population window, retrying until the pair is usable: both
// endpoints nonzero, down's frequency itself nonzero (frequency 0 has no
// lower neighbor to move into), and not the degenerate one-unit-apart
// case that can get permanently stuck.
func drawMove(pop *growableList, nzMin, nzMax int64, m *Marsaglia) (downFreq, upFreq, popDownRight, popUpLeft int64) {
	span := uint64(nzMax - nzMin + 1)
	for {
		for {
			downFreq = nzMin + int64(m.Next(span))
			popDownRight = pop.get(downFreq)
			if popDownRight != 0 && downFreq != 0 {
				break
			}
		}
		var idxDelta int64
		for {
			upFreq = nzMin + int64(m.Next(span))
			popUpLeft = pop.get(upFreq)
			idxDelta = downFreq - upFreq
			if popUpLeft != 0 && !(idxDelta == 0 && popUpLeft == 1) {
				break
			}
		}
		if idxDelta != 1 {
			return
		}
	}
}

type topology int

const (
	branchDisjoint topology = iota
	branchOverlap
	branchContiguous
)

func branchFor(downFreq, upFreq int64) topology {
	switch {
	case downFreq == upFreq:
		return branchOverlap
	case downFreq == upFreq+2:
		return branchContiguous
	default:
		return branchDisjoint
	}
}

// deltaDelta evaluates the discrete derivative of logfreedomDelta with
// respect to a candidate transfer size d, per the closed form for this
// move's topology (original_source/dyspoissometer.c, within
// dyspoissometer_logfreedom_max_get's large comment block). It takes a
// population-count quadruple expressed directly in R (rather than the
// topology carrying its own generic method, which Go does not allow)
// since the value only ever feeds back into logarithms.
func deltaDelta[R numeric.Real](t topology, freqExpr, downLeft, downRight, upLeft, upRight R, d int64) R {
	switch t {
	case branchOverlap:
		return freqExpr - numeric.Log[R]((downLeft+R(d)+1)*(upRight+R(d)+1)/((downRight-R(d<<1)-1)*(downRight-R(d<<1))))
	case branchContiguous:
		return freqExpr - numeric.Log[R]((downLeft+R(d<<1)+1)*(downLeft+R(d<<1)+2)/((downRight-R(d))*(upLeft-R(d))))
	default:
		return freqExpr - numeric.Log[R]((downLeft+R(d)+1)*(upRight+R(d)+1)/((downRight-R(d))*(upLeft-R(d))))
	}
}

// applyMove evaluates the final logfreedomDelta at the chosen transfer
// size delta and returns the four updated population values.
func applyMove[R numeric.Real](t topology, freqExpr, downLeft, downRight, upLeft, upRight R, delta int64) (logfreedomDelta, newDownLeft, newDownRight, newUpLeft, newUpRight R) {
	d := R(delta)
	base := numeric.LogSum[R, uint64](uint64(downLeft)) + numeric.LogSum[R, uint64](uint64(downRight)) + d*freqExpr
	switch t {
	case branchOverlap:
		base += numeric.LogSum[R, uint64](uint64(upRight))
		newDownLeft = downLeft + d
		newDownRight = downRight - 2*d
		newUpLeft = newDownRight
		newUpRight = upRight + d
		base -= numeric.LogSum[R, uint64](uint64(newDownLeft)) + numeric.LogSum[R, uint64](uint64(newDownRight)) + numeric.LogSum[R, uint64](uint64(newUpRight))
	case branchContiguous:
		base += numeric.LogSum[R, uint64](uint64(upLeft))
		newDownLeft = downLeft + 2*d
		newDownRight = downRight - d
		newUpLeft = upLeft - d
		newUpRight = newDownLeft
		base -= numeric.LogSum[R, uint64](uint64(newDownLeft)) + numeric.LogSum[R, uint64](uint64(newDownRight)) + numeric.LogSum[R, uint64](uint64(newUpLeft))
	default:
		base += numeric.LogSum[R, uint64](uint64(upLeft)) + numeric.LogSum[R, uint64](uint64(upRight))
		newDownLeft = downLeft + d
		newDownRight = downRight - d
		newUpLeft = upLeft - d
		newUpRight = upRight + d
		base -= numeric.LogSum[R, uint64](uint64(newDownLeft)) + numeric.LogSum[R, uint64](uint64(newDownRight)) + numeric.LogSum[R, uint64](uint64(newUpLeft)) + numeric.LogSum[R, uint64](uint64(newUpRight))
	}
	return base, newDownLeft, newDownRight, newUpLeft, newUpRight
}

// closedFormLogfreedomMax covers the Z==1, Z==2, and Q<=3 special cases
// the search loop above never runs for.
func closedFormLogfreedomMax[R numeric.Real, U numeric.Index](maskIdxMax, maskMax U) R {
	if maskMax == 0 {
		return 0
	}
	if maskIdxMax > 2 {
		maskCount := maskIdxMax + 1
		part0 := maskCount >> 1
		part1 := maskCount - part0
		l := numeric.LogSum[R](maskCount) - numeric.LogSum[R](part0) - numeric.LogSum[R](part1)
		if part0 != part1 {
			l += numeric.Log(R(2))
		}
		return l
	}
	l := numeric.LogNPlus1[R](maskMax)
	if maskIdxMax != 0 {
		l += numeric.Log(R(maskMax))
		if maskIdxMax == 2 {
			maxVal := maskMax
			if maxVal < 4 {
				maxVal = 4
			}
			l += numeric.Log(R(maxVal - 1))
		}
	}
	return l
}
