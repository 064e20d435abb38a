// Package cli wraps the run package in a command-line program: it turns text
// into a sequence, runs the scan and renders the resulting interval.
package cli

import (
	"cmp"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/incrun/run"
)

// Exit codes returned by Run.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Run executes one invocation and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	cfg, rest, err := Parse(args, getenv, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintln(stderr, "incrun:", err)
		return ExitUsage
	}
	log := NewLogger(stderr, cfg.LogLevel, cfg.NoColor)

	res, err := Analyze(cfg, rest, stdin, log)
	if err != nil {
		log.Error("incrun failed", "err", err)
		if errors.Is(err, ErrUsage) {
			return ExitUsage
		}
		return ExitError
	}
	if err := render(stdout, cfg.Format, res); err != nil {
		log.Error("write result", "err", err)
		return ExitError
	}

	return ExitOK
}

// Analyze builds the input sequence described by cfg and finds its leftmost
// longest increasing run.
func Analyze(cfg Config, args []string, stdin io.Reader, log *slog.Logger) (Result, error) {
	opts := []run.Option{
		run.WithLogger(log),
		run.WithEarlyExit(!cfg.FullScan),
	}

	if cfg.Gen != "" {
		xs, err := generate(cfg)
		if err != nil {
			return Result{}, err
		}
		log.Info("generated input", "shape", cfg.Gen, "n", len(xs), "seed", cfg.Seed)
		return analyze(ModeInts, xs, formatInt, opts)
	}

	text, err := readText(cfg, args, stdin)
	if err != nil {
		return Result{}, err
	}
	log.Debug("read input", "mode", cfg.Mode, "bytes", len(text))

	switch cfg.Mode {
	case ModeInts:
		xs, err := parseInts(text)
		if err != nil {
			return Result{}, err
		}
		return analyze(cfg.Mode, xs, formatInt, opts)
	case ModeFloats:
		xs, err := parseFloats(text)
		if err != nil {
			return Result{}, err
		}
		return analyze(cfg.Mode, xs, formatFloat, opts)
	case ModeWords:
		return analyze(cfg.Mode, strings.Fields(text), func(s string) string { return s }, opts)
	default:
		return analyze(ModeChars, []rune(text), func(r rune) string { return string(r) }, opts)
	}
}

func analyze[T cmp.Ordered](mode string, x []T, format func(T) string, opts []run.Option) (Result, error) {
	iv, st, err := run.LongestIncreasingStats(x, opts...)
	if err != nil {
		return Result{}, err
	}
	seg := run.Slice(x, iv)
	out := make([]string, len(seg))
	for i, v := range seg {
		out[i] = format(v)
	}

	return Result{
		Mode:        mode,
		Size:        len(x),
		Start:       iv.Start,
		End:         iv.End,
		Length:      iv.Len(),
		Run:         out,
		Steps:       st.Steps,
		Comparisons: st.Comparisons,
		EarlyExit:   st.EarlyExit,
	}, nil
}

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
