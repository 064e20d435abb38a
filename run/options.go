package run

import (
	"fmt"
	"log/slog"
)

// Option configures a scan via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// scan is invoked.
type Option func(*Options)

// Options holds the knobs of LongestIncreasingFunc and LongestIncreasingStats.
type Options struct {
	// EarlyExit stops the scan once the best run is at least as long as the
	// window could still become. Turning it off never changes the result.
	EarlyExit bool

	// OnStep is called after every element has been considered.
	OnStep func(Step)

	// Logger receives debug records for scan start, early exit and finish.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with early exit enabled, a no-op OnStep hook
// and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		EarlyExit: true,
		OnStep:    func(Step) {},
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithEarlyExit toggles the early-exit bound.
func WithEarlyExit(on bool) Option {
	return func(o *Options) {
		o.EarlyExit = on
	}
}

// WithOnStep registers a hook observing every scan step.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnStep is nil", ErrOptionViolation)
			return
		}
		o.OnStep = fn
	}
}

// WithLogger routes the scan trace to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: Logger is nil", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
