// Package radixsort implements the bytewise LSD radix sort shared across
// the mask-list, MIBR, and median-logfreedom code paths, grounded in
// dyspoissometer_number_list_sort and its sibling uint-list sorts in
// original_source/dyspoissometer.c.
//
// Sorting proceeds one byte lane at a time, least-significant first,
// double-buffered between the caller's slice and an owned scratch slice.
// A monotonicity check taken during each lane's histogram pass lets
// already-sorted input short-circuit remaining lanes.
package radixsort

import (
	"math"
	"unsafe"

	"github.com/egione/enranda/numeric"
)

// Sort sorts list ascending in place.
func Sort[U numeric.Index](list []U) {
	sortCore(list, nil)
}

// SortWithIndex sorts list ascending in place while permuting idx (same
// length as list) in lockstep, so that afterward idx[i] holds the
// original position of list[i]. Callers seed idx with 0..len(list)-1 to
// recover the sorting permutation.
func SortWithIndex[U numeric.Index](list []U, idx []uint32) {
	if len(idx) != len(list) {
		panic("radixsort: idx and list length mismatch")
	}
	sortCore(list, idx)
}

func sortCore[U numeric.Index](list []U, idx []uint32) {
	n := len(list)
	if n < 2 {
		return
	}
	lanes := int(unsafe.Sizeof(list[0]))
	scratch := make([]U, n)
	var idxScratch []uint32
	if idx != nil {
		idxScratch = make([]uint32, n)
	}
	src, dst := list, scratch
	srcIdx, dstIdx := idx, idxScratch
	inScratch := false
	for lane := 0; lane < lanes; lane++ {
		shift := uint(8 * lane)
		var counts [256]int
		monotone := true
		prev := src[0]
		for _, v := range src {
			if v < prev {
				monotone = false
			}
			prev = v
			counts[byte(v>>shift)]++
		}
		if monotone {
			break
		}
		var offset [256]int
		sum := 0
		for b := 0; b < 256; b++ {
			offset[b] = sum
			sum += counts[b]
		}
		for i, v := range src {
			b := byte(v >> shift)
			pos := offset[b]
			offset[b]++
			dst[pos] = v
			if idx != nil {
				dstIdx[pos] = srcIdx[i]
			}
		}
		src, dst = dst, src
		if idx != nil {
			srcIdx, dstIdx = dstIdx, srcIdx
		}
		inScratch = !inScratch
	}
	if inScratch {
		copy(list, src)
		if idx != nil {
			copy(idx, srcIdx)
		}
	}
}

// SortFloat32 sorts the raw IEEE-754 bit patterns of list ascending, via
// bit-cast to uint32 and back. Every value this module ever sorts is a
// clamped-nonnegative logfreedom-family result, so the IEEE bit-pattern
// order and the numeric order coincide; this function is not valid for
// lists that may contain negative values.
func SortFloat32(list []float32) {
	bits := make([]uint32, len(list))
	for i, v := range list {
		bits[i] = math.Float32bits(v)
	}
	Sort(bits)
	for i, b := range bits {
		list[i] = math.Float32frombits(b)
	}
}

// SortFloat64 is SortFloat32 at double precision.
func SortFloat64(list []float64) {
	bits := make([]uint64, len(list))
	for i, v := range list {
		bits[i] = math.Float64bits(v)
	}
	Sort(bits)
	for i, b := range bits {
		list[i] = math.Float64frombits(b)
	}
}
