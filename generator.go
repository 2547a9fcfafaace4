// Package enranda implements a timing-jitter-based true-random
// generator: it accrues protoentropy by sampling a monotonic timestamp
// source, validates novelty of the resulting sequence hash against a
// history window, records permutative information in a Fisher-Yates-
// style shuffle, and trapdoors the resulting permutation into output
// entropy by modular addition of its two halves. Grounded in
// original_source's enranda.c state machine; see DESIGN.md.
package enranda

import "github.com/pkg/errors"

// BuildBreak and BuildFeature are the compile-time version counters
// Init checks the caller's expectations against: BuildBreak increases
// on any backward-incompatible change, BuildFeature on any backward-
// compatible addition.
const (
	BuildBreak   = 1
	BuildFeature = 0
)

const ringSize = 1 << 16

// Phase is the accrual state machine's current mode.
type Phase uint8

const (
	// PhaseAccrue is sampling timestamps and folding them into the
	// sequence-hash ring and history-hash permutation.
	PhaseAccrue Phase = iota
	// PhaseTrapdoor is draining the completed permutation as output.
	PhaseTrapdoor
)

// Generator is a single timing-jitter entropy-accrual instance. It is
// not safe for concurrent use from multiple goroutines; the expected
// parallel pattern is one Generator per worker.
type Generator struct {
	sequenceHashCountList [ringSize]uint16
	sequenceHashList      [ringSize]uint16
	uniqueList            [ringSize]uint16

	historyHash     uint16
	sequenceHash    uint16
	sequenceHashIdx uint16
	time            uint16
	uniqueIdx       uint32
	phase           Phase

	source TimestampSource
}

// Init version-gates the caller against BuildBreak/BuildFeature and
// returns a freshly rewound Generator sampling from source. source may
// be nil, in which case a MonotonicTimestampSource is constructed.
func Init(expectedBreakCount, expectedFeatureCount uint32, source TimestampSource) (*Generator, error) {
	if expectedBreakCount != BuildBreak || expectedFeatureCount > BuildFeature {
		return nil, errors.Wrapf(ErrVersionMismatch, "want break=%d feature<=%d, have break=%d feature=%d",
			expectedBreakCount, expectedFeatureCount, BuildBreak, BuildFeature)
	}
	if source == nil {
		source = NewMonotonicTimestampSource()
	}
	g := &Generator{source: source}
	g.Rewind()
	return g, nil
}

// Rewind resets the Generator to its initial Accrue-phase state:
// sequenceHashCountList[i] = 1, sequenceHashList[i] = i, uniqueList[i]
// = i for all i, every scalar zeroed. Seeding time = 0 rather than the
// current timestamp is deliberate: it avoids a source read during
// rewind and maximizes first-delta entropy.
func (g *Generator) Rewind() {
	for i := 0; i < ringSize; i++ {
		g.sequenceHashCountList[i] = 1
		g.sequenceHashList[i] = uint16(i)
		g.uniqueList[i] = uint16(i)
	}
	g.historyHash = 0
	g.sequenceHash = 0
	g.sequenceHashIdx = 0
	g.time = 0
	g.uniqueIdx = 0
	g.phase = PhaseAccrue
}

// Free releases the Generator's resources. Go's garbage collector
// reclaims the backing arrays on its own; Free exists so callers
// written against the allocate/free discipline the rest of this module
// follows have a symmetric call, and so a future pooled-allocator
// backend has a hook to release into.
func (g *Generator) Free() {
	*g = Generator{}
}

// Phase reports the Generator's current state.
func (g *Generator) Phase() Phase {
	return g.phase
}

func rotr16(x uint16, k uint) uint16 {
	return (x >> k) | (x << (16 - k))
}

// accrueStep performs a single timestamp-step of the Accrue phase, per
// spec: form the sequence hash, evict/insert in the ring, and on a
// first-occurrence (count==1) fold the sequence hash into the history
// hash, swap it into the permutation, and advance unique_idx.
func (g *Generator) accrueStep(timestamp uint16) {
	timedelta := timestamp - g.time
	g.time = timestamp
	g.sequenceHash = rotr16(g.sequenceHash, 3) + timedelta

	count := g.sequenceHashCountList[g.sequenceHash] + 1
	if count == 0 {
		// Count would wrap past its representable range; drop this
		// sample but keep the new sequence hash for the next step.
		return
	}

	evicted := g.sequenceHashList[g.sequenceHashIdx]
	g.sequenceHashCountList[g.sequenceHash] = count
	g.sequenceHashCountList[evicted]--
	g.sequenceHashList[g.sequenceHashIdx] = g.sequenceHash
	g.sequenceHashIdx++

	if count == 1 {
		g.historyHash = rotr16(g.historyHash, 1) + g.sequenceHash
		g.uniqueList[g.uniqueIdx], g.uniqueList[g.historyHash] =
			g.uniqueList[g.historyHash], g.uniqueList[g.uniqueIdx]
		g.sequenceHash = 0
		g.uniqueIdx++
		if g.uniqueIdx == ringSize {
			g.uniqueIdx = 0
			g.phase = PhaseTrapdoor
		}
	}
}

// Accrue folds timestamps into the generator until the permutation is
// complete. With fill set, it reads four timestamps per source call
// (TimestampSource.ReadX4) and loops internally until Trapdoor is
// entered or the Generator is already in Trapdoor phase; without fill,
// it performs exactly one timestamp step and returns whether the
// generator transitioned to (or already sits in) Trapdoor phase.
// Calling Accrue while already in Trapdoor phase is a no-op that
// reports ready.
func (g *Generator) Accrue(fill bool) (ready bool) {
	if g.phase == PhaseTrapdoor {
		return true
	}
	if !fill {
		g.accrueStep(uint16(g.source.Read()))
		return g.phase == PhaseTrapdoor
	}
	for g.phase == PhaseAccrue {
		packed := g.source.ReadX4()
		for shift := uint(0); shift < 64 && g.phase == PhaseAccrue; shift += 16 {
			g.accrueStep(uint16(packed >> shift))
		}
	}
	return true
}
