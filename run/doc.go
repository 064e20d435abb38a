// Package run locates the leftmost longest strictly-increasing contiguous run
// inside a finite ordered sequence.
//
// What
//
//   - IsIncreasing reports whether every adjacent pair of a slice satisfies <.
//   - Length (Interval.Len) measures a half-open interval [Start, End).
//   - LongestIncreasing scans the sequence once and returns the Interval of the
//     leftmost run of maximal length.
//   - IncreasingPrefix returns the leading increasing run [0, k).
//
// Tie-break
//
//	Among all runs of maximal length the one with the smallest Start wins.
//	The scan replaces its best candidate whenever the current window is still
//	increasing (its length is then >= the previous best), walks left to right,
//	and stops as soon as the best run is at least as long as anything the
//	current window could still grow into.
//
// Ordering
//
//	The plain API is bounded by cmp.Ordered. Use the Func variants with a
//	strict less function for any other element type. NaN values compare false
//	under < and therefore break a run.
//
// Complexity (n = len(x))
//
//   - Time:   O(n), at most n-1 element comparisons
//   - Memory: O(1)
//
// Usage
//
//	iv := run.LongestIncreasing([]int{12, 45, 32, 65, 78, 23, 35, 45, 57})
//	fmt.Println(iv, run.Slice(xs, iv)) // [5, 9) [23 35 45 57]
//
//	iv, err := run.LongestIncreasingFunc(points, func(a, b Point) bool { return a.X < b.X })
//	if err != nil {
//		// ErrNilLess or ErrOptionViolation
//	}
//
// Options
//
//   - WithEarlyExit(false): scan the whole input; the result is unchanged.
//   - WithOnStep(fn):       observe every scan step.
//   - WithLogger(l):        debug trace of the scan via log/slog.
//
// Errors
//
//   - ErrInvalidInterval  if an Interval would have Start < 0 or End < Start.
//   - ErrNilLess          if a Func variant receives a nil comparator.
//   - ErrOptionViolation  if an invalid Option was supplied.
package run
