// SPDX-License-Identifier: MIT
// Package: incrun/sequence
//
// shapes.go - deterministic sequence generators.
//
// Contract:
//   • Each generator returns a fresh slice of length n (n == 0 → empty, non-nil).
//   • O(n) time and O(n) memory; no global state.

package sequence

import (
	"fmt"
	"sort"
	"strings"
)

// Method names used as error context.
const (
	MethodAscending  = "Ascending"
	MethodDescending = "Descending"
	MethodConstant   = "Constant"
	MethodSawtooth   = "Sawtooth"
	MethodPlateau    = "Plateau"
	MethodRandom     = "Random"
)

// Ascending returns 0,1,...,n-1.
func Ascending(n int) ([]int, error) {
	if n < 0 {
		return nil, sizeErrorf(MethodAscending, "n=%d", n)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out, nil
}

// Descending returns n-1,...,1,0.
func Descending(n int) ([]int, error) {
	if n < 0 {
		return nil, sizeErrorf(MethodDescending, "n=%d", n)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = n - 1 - i
	}

	return out, nil
}

// Constant returns n copies of v.
func Constant(n, v int) ([]int, error) {
	if n < 0 {
		return nil, sizeErrorf(MethodConstant, "n=%d", n)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out, nil
}

// Sawtooth repeats 0..period-1. Every full tooth is a run of length period,
// so the leftmost one (starting at 0) must win.
func Sawtooth(n, period int) ([]int, error) {
	switch {
	case n < 0:
		return nil, sizeErrorf(MethodSawtooth, "n=%d", n)
	case period < 1:
		return nil, sizeErrorf(MethodSawtooth, "period=%d", period)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i % period
	}

	return out, nil
}

// Plateau builds increasing runs of length width where each run starts at the
// value the previous one ended on: 0,1,2,2,3,4,4,5,6,... for width 3. The
// sequence never decreases, so only the equal seams break runs.
func Plateau(n, width int) ([]int, error) {
	switch {
	case n < 0:
		return nil, sizeErrorf(MethodPlateau, "n=%d", n)
	case width < 1:
		return nil, sizeErrorf(MethodPlateau, "width=%d", width)
	}
	out := make([]int, n)
	v := 0
	for i := range out {
		if i > 0 && i%width == 0 {
			v-- // repeat the previous value at the seam
		}
		out[i] = v
		v++
	}

	return out, nil
}

// Random returns n values drawn uniformly from [0, max).
// Defaults: seed 1, max 100 (see WithSeed, WithRand, WithMax).
func Random(n int, opts ...Option) ([]int, error) {
	if n < 0 {
		return nil, sizeErrorf(MethodRandom, "n=%d", n)
	}
	cfg := newConfig(opts...)
	out := make([]int, n)
	for i := range out {
		out[i] = cfg.rng.Intn(cfg.max)
	}

	return out, nil
}

// generators maps lower-case shape names to generators with a fixed shape
// parameter (period/width) of param.
var generators = map[string]func(n, param int, opts ...Option) ([]int, error){
	"ascending":  func(n, _ int, _ ...Option) ([]int, error) { return Ascending(n) },
	"descending": func(n, _ int, _ ...Option) ([]int, error) { return Descending(n) },
	"constant":   func(n, param int, _ ...Option) ([]int, error) { return Constant(n, param) },
	"sawtooth":   func(n, param int, _ ...Option) ([]int, error) { return Sawtooth(n, param) },
	"plateau":    func(n, param int, _ ...Option) ([]int, error) { return Plateau(n, param) },
	"random":     func(n, _ int, opts ...Option) ([]int, error) { return Random(n, opts...) },
}

// ByName dispatches to the generator called name (case-insensitive).
// param is the value for Constant, the period for Sawtooth and the width for
// Plateau; the other shapes ignore it.
func ByName(name string, n, param int, opts ...Option) ([]int, error) {
	gen, ok := generators[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownShape, name, strings.Join(Shapes(), ", "))
	}

	return gen(n, param, opts...)
}

// Shapes lists the names accepted by ByName in sorted order.
func Shapes() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
