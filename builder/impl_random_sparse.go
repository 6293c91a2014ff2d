// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p): RandomSparse(n, p) and AddRandomEdges.
//
// Canonical model:
//   - Iterate unordered pairs {i,j} with i<j in vertex rank order, each exactly once.
//   - Include the pair with probability p: rng.Float64() < p.
//     Float64 ∈ [0,1), so p=0 never includes and p=1 always includes.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability); NaN is rejected.
//   - rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Exactly one rng.Float64() draw per pair when rng != nil, so the edge set
//     is a pure function of (vertex order, p, seed).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/smallworld/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodAddRandomEdges    = "AddRandomEdges"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that adds n vertices and samples G(n,p)
// over them using cfg.rng.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := ValidateProbability(p); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(methodRandomSparse, g, n, cfg.idFn); err != nil {
			return err
		}
		if err := AddRandomEdges(g, p, cfg.rng); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		return nil
	}
}

// AddRandomEdges adds Erdős–Rényi edges to g: every unordered pair of distinct
// vertices is considered exactly once and connected with probability p.
// Pairs that are already connected are replaced by an equal edge.
func AddRandomEdges(g *core.Graph, p float64, rng *rand.Rand) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", methodAddRandomEdges, ErrConstructFailed)
	}
	if err := ValidateProbability(p); err != nil {
		return fmt.Errorf("%s: %w", methodAddRandomEdges, err)
	}
	if rng == nil && p > MinProbability && p < MaxProbability {
		return fmt.Errorf("%s: %w", methodAddRandomEdges, ErrNeedRandSource)
	}

	vs := g.Vertices()
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if !bernoulli(rng, p) {
				continue
			}
			e, err := core.NewEdge(vs[i], vs[j])
			if err != nil {
				return fmt.Errorf("%s: %w", methodAddRandomEdges, err)
			}
			if err = g.AddEdge(e); err != nil {
				return fmt.Errorf("%s: %w", methodAddRandomEdges, err)
			}
		}
	}

	return nil
}

// bernoulli draws one trial with success probability p.
// Without an rng only p ∈ {0,1} is meaningful (callers validate that).
func bernoulli(rng *rand.Rand, p float64) bool {
	if rng == nil {
		return p >= MaxProbability
	}

	return rng.Float64() < p
}
