// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once (core.Graph.AddAllEdges).
//
// Complexity:
//   • Time: O(n) vertices + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(methodComplete, g, n, cfg.idFn); err != nil {
			return err
		}
		if err := g.AddAllEdges(); err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}

		return nil
	}
}
