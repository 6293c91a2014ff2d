// SPDX-License-Identifier: MIT
//
// File: connectivity.go
// Role: connectivity rate of Erdős–Rényi G(n,p) samples.

package experiment

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/dfs"
)

// ConnectivityPoint is the measured connectivity rate at one p.
type ConnectivityPoint struct {
	P         float64
	Rate      float64 // connected samples / trials
	Connected int
	Trials    int

	// GiantFraction is the mean share of vertices in the largest component.
	GiantFraction float64
}

// ConnectivityThreshold returns ln(n)/n, the p around which G(n,p) becomes
// connected with high probability. It is 0 for n < 2.
func ConnectivityThreshold(n int) float64 {
	if n < 2 {
		return 0
	}

	return math.Log(float64(n)) / float64(n)
}

// ConnectivityRate samples trials graphs G(n,p) from rng and returns the
// fraction that are connected.
func ConnectivityRate(n int, p float64, trials int, rng *rand.Rand) (float64, error) {
	pt, err := connectivityPoint(context.Background(), n, p, trials, rng)
	if err != nil {
		return 0, err
	}

	return pt.Rate, nil
}

// ConnectivityCurve measures the connectivity rate for every p in ps, in order,
// drawing all samples from the same rng.
func ConnectivityCurve(ctx context.Context, n int, ps []float64, trials int, rng *rand.Rand) ([]ConnectivityPoint, error) {
	if len(ps) == 0 {
		return nil, fmt.Errorf("ConnectivityCurve: %w", ErrEmptySweep)
	}
	out := make([]ConnectivityPoint, 0, len(ps))
	for _, p := range ps {
		pt, err := connectivityPoint(ctx, n, p, trials, rng)
		if err != nil {
			return out, err
		}
		out = append(out, pt)
	}

	return out, nil
}

func connectivityPoint(ctx context.Context, n int, p float64, trials int, rng *rand.Rand) (ConnectivityPoint, error) {
	if trials < 1 {
		return ConnectivityPoint{}, fmt.Errorf("ConnectivityRate: trials=%d: %w", trials, ErrInvalidTrials)
	}
	var opts []builder.BuilderOption
	if rng != nil {
		opts = append(opts, builder.WithRand(rng))
	}

	pt := ConnectivityPoint{P: p, Trials: trials}
	giant := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return pt, err
		}
		g, err := builder.BuildGraph(opts, builder.RandomSparse(n, p))
		if err != nil {
			return pt, fmt.Errorf("ConnectivityRate: n=%d p=%g: %w", n, p, err)
		}
		if g.IsConnected() {
			pt.Connected++
		}
		frac, err := dfs.LargestComponentFraction(g)
		if err != nil {
			return pt, fmt.Errorf("ConnectivityRate: %w", err)
		}
		giant = append(giant, frac)
	}
	pt.Rate = float64(pt.Connected) / float64(trials)
	mean, err := stats.Mean(giant)
	if err != nil {
		return pt, fmt.Errorf("ConnectivityRate: %w", err)
	}
	pt.GiantFraction = mean

	return pt, nil
}
