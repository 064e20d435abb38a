// Package run_test verifies that independent scans can run concurrently.
package run_test

import (
	"testing"

	"github.com/katalvlaran/incrun/run"
	"github.com/katalvlaran/incrun/sequence"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentScans runs many scans in parallel over shared read-only
// inputs and compares each with the sequential answer.
func TestConcurrentScans(t *testing.T) {
	const workers = 64
	inputs := make([][]int, workers)
	want := make([]run.Interval, workers)
	for i := range inputs {
		x, err := sequence.Random(2000, sequence.WithSeed(int64(i)), sequence.WithMax(8))
		require.NoError(t, err)
		inputs[i] = x
		want[i] = run.LongestIncreasing(x)
	}

	got := make([]run.Interval, workers)
	var g errgroup.Group
	g.SetLimit(8)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			// every goroutine also rescans a neighbour's input
			_ = run.LongestIncreasing(inputs[(i+1)%workers])
			got[i] = run.LongestIncreasing(inputs[i])
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, want, got)
}
