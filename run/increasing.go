package run

import "cmp"

// IsIncreasing reports whether x is strictly increasing: x[i] < x[i+1] for
// every adjacent pair. Empty and single-element slices are increasing.
// It stops at the first violating pair.
//
// Complexity: O(len(x)) time, O(1) memory.
func IsIncreasing[T cmp.Ordered](x []T) bool {
	for i := 0; i+1 < len(x); i++ {
		if !(x[i] < x[i+1]) {
			return false
		}
	}

	return true
}

// IsIncreasingFunc is IsIncreasing with a caller-supplied strict order.
// It panics if less is nil.
func IsIncreasingFunc[T any](x []T, less func(a, b T) bool) bool {
	mustLess(less, "IsIncreasingFunc")
	for i := 0; i+1 < len(x); i++ {
		if !less(x[i], x[i+1]) {
			return false
		}
	}

	return true
}

// lessOrdered is the built-in < for ordered types. Unlike cmp.Less it keeps
// NaN incomparable, so a NaN breaks any run it touches.
func lessOrdered[T cmp.Ordered](a, b T) bool {
	return a < b
}
