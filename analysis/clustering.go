// SPDX-License-Identifier: MIT
//
// File: clustering.go
// Role: LocalClustering and ClusteringCoefficient.
// Determinism:
//   - Vertices are visited in rank order; the result does not depend on map order.

package analysis

import (
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/smallworld/core"
)

// LocalClustering returns the fraction of v's neighbor pairs that are adjacent.
// Fails with ErrUndefinedClustering when deg(v) < 2 and with
// core.ErrVertexNotFound when v is absent.
func LocalClustering(g *core.Graph, v core.Vertex) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	nbrs, err := g.OutVertices(v)
	if err != nil {
		return 0, fmt.Errorf("LocalClustering: %w", err)
	}
	d := len(nbrs)
	if d < 2 {
		return 0, fmt.Errorf("LocalClustering(%s): deg=%d: %w", v, d, ErrUndefinedClustering)
	}

	return float64(triangles(g, nbrs)) / float64(d*(d-1)/2), nil
}

// ClusteringCoefficient returns the mean LocalClustering over every vertex of
// degree >= 2. Returns ErrUndefinedClustering when no vertex qualifies.
func ClusteringCoefficient(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	ratios := make([]float64, 0, g.VertexCount())
	for _, v := range g.Vertices() {
		c, err := LocalClustering(g, v)
		if errors.Is(err, ErrUndefinedClustering) {
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("ClusteringCoefficient: %w", err)
		}
		ratios = append(ratios, c)
	}
	if len(ratios) == 0 {
		return 0, fmt.Errorf("ClusteringCoefficient: %w", ErrUndefinedClustering)
	}

	return stats.Mean(ratios)
}

// triangles counts unordered pairs of nbrs that are connected.
func triangles(g *core.Graph, nbrs []core.Vertex) int {
	t := 0
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if g.HasEdge(nbrs[i], nbrs[j]) {
				t++
			}
		}
	}

	return t
}
