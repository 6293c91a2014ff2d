// SPDX-License-Identifier: MIT
//
// File: paths.go
// Role: ShortestPaths (single-source hop distances) and ShortestPathCoefficient.
// Policy:
//   - Edges have unit length; distances come from bfs.BFS.
//   - The start vertex is not a key of the ShortestPaths map.

package analysis

import (
	"context"
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/smallworld/bfs"
	"github.com/katalvlaran/smallworld/core"
)

// ShortestPaths returns the hop distance from start to every other vertex.
// Vertices in another component map to Unreachable.
// Returns core.ErrVertexNotFound if start is absent.
func ShortestPaths(g *core.Graph, start core.Vertex) (map[core.Vertex]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("ShortestPaths(%s): %w", start, core.ErrVertexNotFound)
	}
	res, err := bfs.BFS(g, start)
	if err != nil {
		return nil, fmt.Errorf("ShortestPaths(%s): %w", start, err)
	}

	out := make(map[core.Vertex]int, g.VertexCount()-1)
	for _, v := range g.Vertices() {
		if v == start {
			continue
		}
		if d, ok := res.Depth[v]; ok {
			out[v] = d
		} else {
			out[v] = Unreachable
		}
	}

	return out, nil
}

// ShortestPathCoefficient returns the mean shortest-path length over all
// ordered pairs of distinct vertices.
// Fails with ErrTooFewVertices for |V| < 2 and core.ErrDisconnected when any
// pair is unreachable.
func ShortestPathCoefficient(g *core.Graph) (float64, error) {
	return ShortestPathCoefficientContext(context.Background(), g)
}

// ShortestPathCoefficientContext is ShortestPathCoefficient with cancellation
// checked between sources.
func ShortestPathCoefficientContext(ctx context.Context, g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	n := g.VertexCount()
	if n < 2 {
		return 0, fmt.Errorf("ShortestPathCoefficient: n=%d: %w", n, ErrTooFewVertices)
	}

	// every source contributes exactly n-1 distances, so the mean of
	// per-source means equals the mean over all ordered pairs
	perSource := make([]float64, 0, n)
	for _, v := range g.Vertices() {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		res, err := bfs.BFS(g, v, bfs.WithContext(ctx))
		if err != nil {
			return 0, fmt.Errorf("ShortestPathCoefficient: %w", err)
		}
		if len(res.Order) != n {
			return 0, fmt.Errorf("ShortestPathCoefficient: %s reaches %d of %d vertices: %w",
				v, len(res.Order), n, core.ErrDisconnected)
		}
		sum := 0
		for _, d := range res.Depth {
			sum += d
		}
		perSource = append(perSource, float64(sum)/float64(n-1))
	}

	return stats.Mean(perSource)
}
