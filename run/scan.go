package run

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
)

// LongestIncreasing returns the leftmost longest strictly-increasing run of x
// as a half-open Interval.
//
// Algorithm:
//  1. best = [0, 0), lower = 0.
//  2. For i = 0..n-1 with j = i+1:
//     a. If x[lower:j] is increasing and longer than best, best = [lower, j).
//     b. If x[lower:j] is not increasing, restart the window: lower = j-1.
//     c. Stop once len(best) >= n-lower: no window starting at lower can
//     beat best any more.
//  3. Return best.
//
// Because best is only replaced by a strictly longer run and the scan walks
// left to right, ties resolve to the smallest Start.
//
// Edge cases:
//   - empty input → [0, 0)
//   - one element, strictly decreasing or all-equal input → [0, 1)
//
// Complexity: O(n) time, O(1) memory.
func LongestIncreasing[T cmp.Ordered](x []T) Interval {
	o := DefaultOptions()
	iv, _ := scan(x, lessOrdered[T], &o)

	return iv
}

// LongestIncreasingFunc is LongestIncreasing for any element type ordered by
// a strict less function.
//
// Errors: ErrNilLess if less is nil, ErrOptionViolation for a bad Option.
func LongestIncreasingFunc[T any](x []T, less func(a, b T) bool, opts ...Option) (Interval, error) {
	if less == nil {
		return Interval{}, ErrNilLess
	}
	o, err := resolve(opts)
	if err != nil {
		return Interval{}, err
	}
	iv, _ := scan(x, less, &o)

	return iv, nil
}

// LongestIncreasingStats runs the scan and also reports how much work it did.
func LongestIncreasingStats[T cmp.Ordered](x []T, opts ...Option) (Interval, Stats, error) {
	o, err := resolve(opts)
	if err != nil {
		return Interval{}, Stats{}, err
	}
	iv, st := scan(x, lessOrdered[T], &o)

	return iv, st, nil
}

// LongestIncreasingRunes scans the code points of s. The returned indices
// count runes, not bytes.
func LongestIncreasingRunes(s string) Interval {
	return LongestIncreasing([]rune(s))
}

// scan keeps two pieces of state: best, the leftmost longest run seen so far,
// and lower, the start of the current increasing window. After every step
// x[lower:i+1] is increasing, so extending the window only needs the ordering
// check on the pair that enters it.
func scan[T any](x []T, less func(a, b T) bool, o *Options) (Interval, Stats) {
	var (
		n     = len(x)
		best  Interval
		lower int
		st    Stats
	)
	counted := func(a, b T) bool {
		st.Comparisons++
		return less(a, b)
	}
	ctx := context.Background()
	debug := o.Logger != nil && o.Logger.Enabled(ctx, slog.LevelDebug)
	if debug {
		o.Logger.LogAttrs(ctx, slog.LevelDebug, "run: scan start",
			slog.Int("n", n), slog.Bool("early_exit", o.EarlyExit))
	}

	for i := 0; i < n; i++ {
		j := i + 1
		st.Steps++

		increasing := IsIncreasingFunc(x[max(lower, j-2):j], counted)
		if increasing {
			if j-lower > best.Len() {
				best = Interval{Start: lower, End: j}
			}
		} else {
			lower = j - 1
		}
		if o.OnStep != nil {
			o.OnStep(Step{Index: i, Lower: lower, Best: best, Increasing: increasing})
		}

		if o.EarlyExit && best.Len() >= n-lower {
			st.EarlyExit = j < n
			if debug && st.EarlyExit {
				o.Logger.LogAttrs(ctx, slog.LevelDebug, "run: early exit",
					slog.Int("index", i), slog.Int("lower", lower), slog.String("best", best.String()))
			}
			break
		}
	}

	if debug {
		o.Logger.LogAttrs(ctx, slog.LevelDebug, "run: scan done",
			slog.String("best", best.String()),
			slog.Int("steps", st.Steps),
			slog.Int("comparisons", st.Comparisons))
	}

	return best, st
}

// mustLess guards the exported Func helpers that cannot return an error.
func mustLess[T any](less func(a, b T) bool, op string) {
	if less == nil {
		panic(fmt.Errorf("run: %s: %w", op, ErrNilLess))
	}
}
