// Package numeric provides the precision-abstracted floating-point and
// integer kernel shared by the radixsort, dyspoissometer and search
// packages. Three precision profiles are supported by instantiating the
// same generic functions over different type parameter pairs:
//
//	half:   Real = float32, Index = uint16
//	single: Real = float64, Index = uint32
//	double: Real = float64, Index = uint64
//
// Go has neither a 128-bit float nor a preprocessor, so "double" precision
// is realized by pairing ordinary float64 arithmetic with the wider
// 64-bit Index envelope; see DESIGN.md for the Open Question this
// resolves.
package numeric

import "math"

// Real is the floating-point type parameter used throughout this module.
type Real interface {
	~float32 | ~float64
}

// Index is the unsigned integer type parameter tied to a given Real's
// precision: 16 bits for half, 32 for single, 64 for double.
type Index interface {
	~uint16 | ~uint32 | ~uint64
}

// Log returns the natural logarithm of x.
func Log[R Real](x R) R {
	return R(math.Log(float64(x)))
}

// Exp returns e**x.
func Exp[R Real](x R) R {
	return R(math.Exp(float64(x)))
}

// Sqrt returns the square root of x.
func Sqrt[R Real](x R) R {
	return R(math.Sqrt(float64(x)))
}

// Round returns x rounded to the nearest integer, ties away from zero.
func Round[R Real](x R) R {
	return R(math.Round(float64(x)))
}

// LogSum returns log(n!), evaluated as log(Gamma(n+1)) via log-gamma. This
// is the single most-called primitive in the whole stack and must never
// be computed by accumulating log(k) in a loop: that loses precision at
// the mask counts this module is meant to handle.
func LogSum[R Real, U Index](n U) R {
	lg, _ := math.Lgamma(float64(n) + 1)
	return R(lg)
}

// LogSumNPlus1 returns log((n+1)!), i.e. log(Gamma(n+2)).
func LogSumNPlus1[R Real, U Index](n U) R {
	lg, _ := math.Lgamma(float64(n) + 2)
	return R(lg)
}

// LogNPlus1 returns log(n+1).
func LogNPlus1[R Real, U Index](n U) R {
	return R(math.Log(float64(n) + 1))
}

// IndexMax returns the maximum representable value of an Index type.
func IndexMax[U Index]() U {
	return ^U(0)
}

// Clamp01 clamps x to [0, 1], absorbing the small negative epsilons and
// marginal above-one overshoots that accumulate from log-gamma rounding.
func Clamp01[R Real](x R) R {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ClampNonNegative clamps x to >= 0, the guard every logfreedom-family
// result is passed through before being returned to a caller.
func ClampNonNegative[R Real](x R) R {
	if x < 0 {
		return 0
	}
	return x
}
