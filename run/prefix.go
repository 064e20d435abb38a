package run

import "cmp"

// IncreasingPrefix returns the leading strictly-increasing run [0, k) of x.
// An empty x yields [0, 0); otherwise k >= 1.
func IncreasingPrefix[T cmp.Ordered](x []T) Interval {
	return increasingPrefix(x, lessOrdered[T])
}

// IncreasingPrefixFunc is IncreasingPrefix with a caller-supplied strict order.
// It panics if less is nil.
func IncreasingPrefixFunc[T any](x []T, less func(a, b T) bool) Interval {
	mustLess(less, "IncreasingPrefixFunc")

	return increasingPrefix(x, less)
}

func increasingPrefix[T any](x []T, less func(a, b T) bool) Interval {
	if len(x) == 0 {
		return Interval{}
	}
	k := 1
	for k < len(x) && less(x[k-1], x[k]) {
		k++
	}

	return Interval{Start: 0, End: k}
}
