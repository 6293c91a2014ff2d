// SPDX-License-Identifier: MIT

package smallworld

import (
	"context"

	"github.com/katalvlaran/smallworld/analysis"
	"github.com/katalvlaran/smallworld/core"
)

// ClusteringCoefficient returns C, see analysis.ClusteringCoefficient.
func (s *Graph) ClusteringCoefficient() (float64, error) {
	if err := s.ready("ClusteringCoefficient"); err != nil {
		return 0, err
	}
	return analysis.ClusteringCoefficient(s.g)
}

// ShortestPaths returns hop distances from v, see analysis.ShortestPaths.
func (s *Graph) ShortestPaths(v core.Vertex) (map[core.Vertex]int, error) {
	if err := s.ready("ShortestPaths"); err != nil {
		return nil, err
	}
	return analysis.ShortestPaths(s.g, v)
}

// ShortestPathCoeff returns L, see analysis.ShortestPathCoefficient.
func (s *Graph) ShortestPathCoeff() (float64, error) {
	return s.ShortestPathCoeffContext(context.Background())
}

// ShortestPathCoeffContext is ShortestPathCoeff with cancellation.
func (s *Graph) ShortestPathCoeffContext(ctx context.Context) (float64, error) {
	if err := s.ready("ShortestPathCoeff"); err != nil {
		return 0, err
	}
	return analysis.ShortestPathCoefficientContext(ctx, s.g)
}

// IsConnected reports whether the current graph is connected.
func (s *Graph) IsConnected() bool {
	if s == nil || s.g == nil {
		return false
	}
	return s.g.IsConnected()
}
