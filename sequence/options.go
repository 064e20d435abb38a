// SPDX-License-Identifier: MIT
// Package: incrun/sequence
//
// options.go - functional options for the stochastic generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package sequence

import (
	"math/rand"
)

// Deterministic defaults.
const (
	defaultSeed = int64(1) // seed used when neither WithSeed nor WithRand is given
	defaultMax  = 100      // exclusive upper bound of Random values
)

// Option customizes a generator by mutating a config before generation.
type Option func(*config)

// config aggregates the knobs of the stochastic generators.
// It is passed by VALUE to generators.
type config struct {
	rng *rand.Rand // nil → seeded from defaultSeed at generation time
	max int        // exclusive upper bound for Random, > 0
}

// newConfig applies options in order (last wins) on top of the defaults.
func newConfig(opts ...Option) config {
	cfg := config{max: defaultMax}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("sequence: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithMax sets the exclusive upper bound of Random values. Panics if m < 1.
// Small bounds produce many equal neighbours, which is what stresses the
// run-breaking path.
func WithMax(m int) Option {
	if m < 1 {
		panic("sequence: WithMax(m<1)")
	}
	return func(c *config) {
		c.max = m
	}
}
