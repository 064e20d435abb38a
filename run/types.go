package run

import (
	"fmt"
)

// Interval is a half-open index range [Start, End) into a sequence.
//
// The zero value is the empty interval at position 0, which is also the
// result for an empty input. Build intervals with NewInterval or
// MustInterval so that End < Start never appears.
type Interval struct {
	Start int // first index in the run
	End   int // one past the last index in the run
}

// NewInterval validates 0 <= start <= end and returns the Interval.
func NewInterval(start, end int) (Interval, error) {
	if start < 0 || end < start {
		return Interval{}, fmt.Errorf("%w: start=%d end=%d", ErrInvalidInterval, start, end)
	}

	return Interval{Start: start, End: end}, nil
}

// MustInterval is NewInterval for literals; it panics on an invalid range.
func MustInterval(start, end int) Interval {
	iv, err := NewInterval(start, end)
	if err != nil {
		panic(err)
	}

	return iv
}

// Len returns End - Start.
func (iv Interval) Len() int {
	return iv.End - iv.Start
}

// Empty reports whether the interval covers no elements.
func (iv Interval) Empty() bool {
	return iv.Start == iv.End
}

// Within reports whether the interval fits a sequence of length n.
func (iv Interval) Within(n int) bool {
	return iv.Start >= 0 && iv.Start <= iv.End && iv.End <= n
}

// String renders the interval as "[start, end)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}

// Length is the substring metric of an interval: End - Start.
func Length(iv Interval) int {
	return iv.Len()
}

// Slice returns x[iv.Start:iv.End]. The result shares memory with x.
func Slice[T any](x []T, iv Interval) []T {
	return x[iv.Start:iv.End]
}

// Step is the state of the scan after one element has been considered.
type Step struct {
	Index      int      // position of the element just added to the window
	Lower      int      // window start after the step
	Best       Interval // best run found so far
	Increasing bool     // whether the window stayed increasing
}

// Stats summarises the work done by one scan.
type Stats struct {
	Steps       int  // elements considered before returning
	Comparisons int  // evaluations of the less relation
	EarlyExit   bool // true if the scan stopped before the last element
}
