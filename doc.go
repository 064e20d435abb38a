// Package incrun finds the leftmost longest strictly-increasing contiguous run
// in a sequence of ordered values.
//
// Everything is organized under a few subpackages:
//
//	run/           the scan: IsIncreasing, Interval metrics, LongestIncreasing
//	sequence/      deterministic fixtures (ascending, sawtooth, random, ...)
//	internal/cli/  the incrun command: input parsing, rendering, logging
//	cmd/incrun/    the binary
//	examples/      runnable scenarios (candle rallies, sensor warm-up)
//
// Quick example:
//
//	x := []int{12, 45, 32, 65, 78, 23, 35, 45, 57}
//	iv := run.LongestIncreasing(x) // [5, 9)
//
//	go get github.com/katalvlaran/incrun
package incrun
