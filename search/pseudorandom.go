package search

import "github.com/egione/enranda/numeric"

// MaskListPseudorandom advances masks in place to a new pseudorandom
// mask list consistent with maskMax, drawn from an essentially uniform
// distribution. Each element is updated by modular summation of its
// previous value and the generator's current state, using a fast
// bitmask path when (maskMax+1) is a power of two. masks must already
// hold a valid mask list (all zero on the first call).
func MaskListPseudorandom[U numeric.Index](masks []U, maskMax U, m *Marsaglia) {
	maskSpan := uint64(maskMax) + 1
	pow2 := uint64(maskMax)&maskSpan == 0
	for i, mask := range masks {
		c := m.P >> 32
		x := m.P & 0xFFFFFFFF
		var next uint64
		if pow2 {
			next = (m.P + uint64(mask)) & uint64(maskMax)
		} else {
			next = (m.P + uint64(mask)) % maskSpan
		}
		m.P = x*MarsagliaA + c
		masks[i] = U(next)
	}
}
