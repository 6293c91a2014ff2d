// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Graph type, New and accessors.

package smallworld

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/core"
)

// Graph is a ring lattice that can be rewired into a small world.
// The zero value is Uninitialized; use New.
type Graph struct {
	g      *core.Graph
	k      int
	state  State
	rng    *rand.Rand
	strict bool
}

// New builds the k-regular ring lattice on n vertices labelled by the ID
// scheme (decimal by default). A failed precondition is returned as a wrapped
// *core.DegreeError.
func New(n, k int, opts ...Option) (*Graph, error) {
	cfg := newConfig(opts...)
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDScheme(cfg.idFn)},
		builder.RingLattice(n, k),
	)
	if err != nil {
		return nil, fmt.Errorf("smallworld.New: %w", err)
	}

	return &Graph{
		g:      g,
		k:      k,
		state:  Lattice,
		rng:    cfg.rng,
		strict: cfg.strict,
	}, nil
}

// Core returns the underlying graph. Mutating it directly bypasses the
// state machine.
func (s *Graph) Core() *core.Graph {
	if s == nil {
		return nil
	}
	return s.g
}

// K returns the lattice degree the graph was built with.
func (s *Graph) K() int {
	if s == nil {
		return 0
	}
	return s.k
}

// State returns the construction stage.
func (s *Graph) State() State {
	if s == nil {
		return Uninitialized
	}
	return s.state
}

// Vertices returns the vertices in rank order.
func (s *Graph) Vertices() []core.Vertex {
	if s == nil || s.g == nil {
		return nil
	}
	return s.g.Vertices()
}

// Edges returns the current edges in rank order.
func (s *Graph) Edges() []core.Edge {
	if s == nil || s.g == nil {
		return nil
	}
	return s.g.Edges()
}

func (s *Graph) ready(method string) error {
	if s == nil || s.g == nil {
		return fmt.Errorf("%s: %w", method, ErrUninitialized)
	}

	return nil
}
