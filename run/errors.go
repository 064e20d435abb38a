package run

import "errors"

// Sentinel errors for run. Branch on them with errors.Is.
var (
	// ErrInvalidInterval is returned when an Interval would have Start < 0 or End < Start.
	ErrInvalidInterval = errors.New("run: invalid interval")

	// ErrNilLess is returned when a Func variant receives a nil comparator.
	ErrNilLess = errors.New("run: less function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("run: invalid option supplied")
)
