// SPDX-License-Identifier: MIT
// Package: incrun/sequence
//
// Package sequence generates deterministic integer sequences used as fixtures
// for the run package: tests, benchmarks, examples and the CLI -gen mode.
//
// Shapes:
//   • Ascending(n)          0,1,2,...,n-1           one run covering everything
//   • Descending(n)         n-1,...,1,0             every pair breaks
//   • Constant(n, v)        v,v,...,v               every pair breaks (equal)
//   • Sawtooth(n, period)   0..p-1,0..p-1,...       equal-length runs, tie-break stress
//   • Plateau(n, width)     runs of `width` joined by a repeated value
//   • Random(n, opts...)    uniform values in [0, max) from a seeded RNG
//
// Contract:
//   • Every generator is pure and deterministic per (arguments, options).
//   • Invalid sizes return ErrBadSize; nothing panics at generation time.
//   • Option constructors (WithSeed, WithRand, WithMax) panic on meaningless
//     values so the mistake surfaces at the call site.
package sequence
