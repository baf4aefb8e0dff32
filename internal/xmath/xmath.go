// Package xmath holds tiny epsilon-aware numeric helpers for
// ssp.Instance's debug postconditions: ssp.TestCosts uses AbsDiff;
// TestOptimality and the rest of the module use neither helper.
package xmath

import "golang.org/x/exp/constraints"

// AbsDiff returns |a-b| for any signed integer or floating-point type.
func AbsDiff[T constraints.Signed | constraints.Float](a, b T) T {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}

// Signbit reports whether x is negative. Grounded on
// katalvlaran-lvlath/matrix's epsilon-guarded comparisons, generalized
// to a shared generic helper rather than duplicated per call site.
func Signbit[T constraints.Float](x T) bool {
	return x < 0
}
