package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/incrun/sequence"
)

// ErrInput marks input that cannot be turned into a sequence.
var ErrInput = errors.New("invalid input")

// readText returns the raw input: the positional args if any, stdin otherwise.
// In chars mode the args are concatenated so that spaces between arguments do
// not become elements.
func readText(cfg Config, args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		if cfg.Mode == ModeChars {
			return strings.Join(args, ""), nil
		}
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return strings.TrimRight(string(b), "\r\n"), nil
}

// fields splits on whitespace and commas.
func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
}

func parseInts(s string) ([]int64, error) {
	toks := fields(s)
	out := make([]int64, len(toks))
	for i, tok := range toks {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q: %w", ErrInput, i, tok, err)
		}
		out[i] = v
	}

	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	toks := fields(s)
	out := make([]float64, len(toks))
	for i, tok := range toks {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d %q: %w", ErrInput, i, tok, err)
		}
		out[i] = v
	}

	return out, nil
}

// generate builds a fixture sequence for -gen.
func generate(cfg Config) ([]int64, error) {
	xs, err := sequence.ByName(cfg.Gen, cfg.N, cfg.Param, sequence.WithSeed(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	out := make([]int64, len(xs))
	for i, v := range xs {
		out[i] = int64(v)
	}

	return out, nil
}
