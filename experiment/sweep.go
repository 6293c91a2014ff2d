// SPDX-License-Identifier: MIT
//
// File: sweep.go
// Role: Watts–Strogatz sweep of C(p)/C(0) and L(p)/L(0).
// Policy:
//   - The baseline is the unrewired lattice, measured once.
//   - A metric that is undefined for a sample (disconnected graph, no vertex
//     of degree >= 2) is recorded as NaN; the sweep itself does not fail.

package experiment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/smallworld/analysis"
	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/core"
	"github.com/katalvlaran/smallworld/smallworld"
)

// SweepConfig describes a Watts–Strogatz sweep.
type SweepConfig struct {
	N      int       // vertices
	K      int       // lattice degree
	Ps     []float64 // rewiring probabilities, measured in order
	Trials int       // rewired samples averaged per p; 0 means 1
	Strict bool      // WithStrictRewiring
}

// SweepPoint holds the averaged metrics at one p.
type SweepPoint struct {
	P      float64
	C      float64 // mean clustering coefficient
	L      float64 // mean shortest-path coefficient over connected samples
	CRatio float64 // C / C(0)
	LRatio float64 // L / L(0)

	// Disconnected counts samples whose L was undefined.
	Disconnected int
}

// Sweep runs cfg with a background context.
func Sweep(cfg SweepConfig, rng *rand.Rand) ([]SweepPoint, error) {
	return SweepContext(context.Background(), cfg, rng)
}

// SweepContext measures the lattice baseline, then for every p in cfg.Ps
// builds cfg.Trials lattices, rewires each with probability p, and averages
// C and L. Points are returned in cfg.Ps order.
func SweepContext(ctx context.Context, cfg SweepConfig, rng *rand.Rand) ([]SweepPoint, error) {
	if len(cfg.Ps) == 0 {
		return nil, fmt.Errorf("Sweep: %w", ErrEmptySweep)
	}
	trials := cfg.Trials
	if trials == 0 {
		trials = 1
	}
	if trials < 0 {
		return nil, fmt.Errorf("Sweep: trials=%d: %w", trials, ErrInvalidTrials)
	}
	for _, p := range cfg.Ps {
		if err := builder.ValidateProbability(p); err != nil {
			return nil, fmt.Errorf("Sweep: %w", err)
		}
	}

	base, err := smallworld.New(cfg.N, cfg.K)
	if err != nil {
		return nil, fmt.Errorf("Sweep: %w", err)
	}
	c0, l0, _, err := measure(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("Sweep: baseline: %w", err)
	}

	opts := []smallworld.Option{}
	if rng != nil {
		opts = append(opts, smallworld.WithRand(rng))
	}
	if cfg.Strict {
		opts = append(opts, smallworld.WithStrictRewiring())
	}

	out := make([]SweepPoint, 0, len(cfg.Ps))
	for _, p := range cfg.Ps {
		pt, err := sweepPoint(ctx, cfg, p, trials, opts)
		if err != nil {
			return out, err
		}
		pt.CRatio = ratio(pt.C, c0)
		pt.LRatio = ratio(pt.L, l0)
		out = append(out, pt)
	}

	return out, nil
}

func sweepPoint(ctx context.Context, cfg SweepConfig, p float64, trials int, opts []smallworld.Option) (SweepPoint, error) {
	pt := SweepPoint{P: p}
	cs := make([]float64, 0, trials)
	ls := make([]float64, 0, trials)
	for i := 0; i < trials; i++ {
		if err := ctx.Err(); err != nil {
			return pt, err
		}
		g, err := smallworld.New(cfg.N, cfg.K, opts...)
		if err != nil {
			return pt, fmt.Errorf("Sweep: p=%g: %w", p, err)
		}
		if err = g.Rewire(p); err != nil {
			return pt, fmt.Errorf("Sweep: p=%g: %w", p, err)
		}
		c, l, connected, err := measure(ctx, g)
		if err != nil {
			return pt, fmt.Errorf("Sweep: p=%g: %w", p, err)
		}
		if !math.IsNaN(c) {
			cs = append(cs, c)
		}
		if !connected {
			pt.Disconnected++
			continue
		}
		ls = append(ls, l)
	}
	pt.C = mean(cs)
	pt.L = mean(ls)

	return pt, nil
}

// measure returns C and L of g; undefined metrics come back as NaN and
// connected reports whether L was defined.
func measure(ctx context.Context, g *smallworld.Graph) (c, l float64, connected bool, err error) {
	c, err = g.ClusteringCoefficient()
	switch {
	case errors.Is(err, analysis.ErrUndefinedClustering):
		c = math.NaN()
	case err != nil:
		return 0, 0, false, err
	}

	l, err = g.ShortestPathCoeffContext(ctx)
	switch {
	case errors.Is(err, core.ErrDisconnected), errors.Is(err, analysis.ErrTooFewVertices):
		return c, math.NaN(), false, nil
	case err != nil:
		return 0, 0, false, err
	}

	return c, l, true, nil
}

// mean is stats.Mean with NaN for an empty sample.
func mean(xs []float64) float64 {
	m, err := stats.Mean(xs)
	if err != nil {
		return math.NaN()
	}

	return m
}

func ratio(x, base float64) float64 {
	if base == 0 || math.IsNaN(base) {
		return math.NaN()
	}

	return x / base
}
