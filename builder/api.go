// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the cost of every constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph, resolving opts once.
// It is the in-place counterpart of BuildGraph.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addVertices inserts idFn(0..n-1) into g in ascending index order.
func addVertices(method string, g *core.Graph, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id, err := safeID(idFn, i)
		if err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
		v := core.NewVertex(id)
		if err := g.AddVertex(v); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, v, err)
		}
	}

	return nil
}

// safeID calls idFn(i), turning a panic (e.g. SymbolIDFn past "Z") into
// ErrConstructFailed.
func safeID(idFn IDFn, i int) (id string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ID scheme at index %d: %v: %w", i, r, ErrConstructFailed)
		}
	}()

	return idFn(i), nil
}
