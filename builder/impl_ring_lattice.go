// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// impl_ring_lattice.go: implementation of RingLattice(n, k) constructor.
//
// Contract:
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1); that order
//     is the circle on which the lattice is laid out.
//   • (n,k) feasibility is decided by core.Graph.AddRegularEdges over the whole
//     graph; its *core.DegreeError is wrapped, so errors.Is(err, core.ErrDegree) holds.
//   • On failure the vertices stay in g (no partial cleanup, like BuildGraph).
//   • k = 2 yields the cycle C_n.
//
// Complexity:
//   • Time: O(n) vertices + O(n·k/2) edges.
//
// Determinism:
//   • Fully deterministic; cfg.rng is never read.

package builder

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

const methodRingLattice = "RingLattice"

// RingLattice returns a Constructor that builds the k-regular ring lattice on n vertices.
func RingLattice(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := addVertices(methodRingLattice, g, n, cfg.idFn); err != nil {
			return err
		}
		if err := g.AddRegularEdges(k); err != nil {
			return fmt.Errorf("%s: n=%d k=%d: %w", methodRingLattice, n, k, err)
		}

		return nil
	}
}
