// SPDX-License-Identifier: MIT
//
// File: rewire.go
// Role: Rewire (Watts–Strogatz) and Replace.
// Determinism:
//   - Candidate edges are visited by closeness c = 0..k-1, then by vertex rank.
//   - For p > 0, one rng.Float64 draw per candidate and one draw per replaced edge.
//   - Same seed and same (n, k, p) ⇒ identical edge set.

package smallworld

import (
	"fmt"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/core"
)

const (
	methodRewire  = "Rewire"
	methodReplace = "Replace"
)

// arc is an edge to rewire together with the endpoint that keeps it.
type arc struct {
	from core.Vertex
	edge core.Edge
}

// Rewire applies the Watts–Strogatz procedure with probability p.
//
// Every lattice edge is a candidate exactly once. For closeness c = 0..k-1 and
// each vertex v in rank order, the c-th neighbor w of v (by rank) is looked
// up; if {v,w} is still a candidate it is consumed and marked with probability
// p. Marked edges are then re-pointed from v to a random vertex (see Replace).
//
// Valid only in the Lattice state; a second call fails with ErrAlreadyRewired.
// p outside [0,1] fails with builder.ErrInvalidProbability.
func (s *Graph) Rewire(p float64) error {
	if err := s.ready(methodRewire); err != nil {
		return err
	}
	if s.state != Lattice {
		return fmt.Errorf("%s: state=%s: %w", methodRewire, s.state, ErrAlreadyRewired)
	}
	if err := builder.ValidateProbability(p); err != nil {
		return fmt.Errorf("%s: %w", methodRewire, err)
	}
	if s.rng == nil && p > builder.MinProbability {
		return fmt.Errorf("%s: %w", methodRewire, builder.ErrNeedRandSource)
	}

	marked, err := s.mark(p)
	if err != nil {
		return fmt.Errorf("%s: %w", methodRewire, err)
	}
	if err = s.replaceArcs(marked); err != nil {
		return fmt.Errorf("%s: %w", methodRewire, err)
	}
	s.state = Rewired

	return nil
}

// mark selects the edges to rewire. The graph is not modified.
func (s *Graph) mark(p float64) ([]arc, error) {
	candidates := make(map[core.Edge]struct{}, s.g.EdgeCount())
	for _, e := range s.g.Edges() {
		candidates[e] = struct{}{}
	}

	var marked []arc
	vs := s.g.Vertices()
	for c := 0; c < s.k && len(candidates) > 0; c++ {
		for _, v := range vs {
			nbrs, err := s.g.OutVertices(v)
			if err != nil {
				return nil, err
			}
			if c >= len(nbrs) {
				continue
			}
			e, _ := s.g.EdgeBetween(v, nbrs[c])
			if _, ok := candidates[e]; !ok {
				continue
			}
			delete(candidates, e)
			if p > builder.MinProbability && s.rng.Float64() < p {
				marked = append(marked, arc{from: v, edge: e})
			}
		}
	}

	return marked, nil
}

// Replace re-points every edge in edges: the edge is removed and its first
// endpoint (in Endpoints order) is joined to a vertex drawn uniformly among
// all other vertices. A target that is already a neighbor leaves a single edge.
// Under WithStrictRewiring the draw excludes current neighbors.
//
// All edges are validated before anything is mutated: each must be present
// (core.ErrEdgeNotFound) and listed once (ErrDuplicateEdge).
func (s *Graph) Replace(edges []core.Edge) error {
	if err := s.ready(methodReplace); err != nil {
		return err
	}
	if len(edges) == 0 {
		return nil
	}
	if s.rng == nil {
		return fmt.Errorf("%s: %w", methodReplace, builder.ErrNeedRandSource)
	}

	seen := make(map[core.Edge]struct{}, len(edges))
	arcs := make([]arc, len(edges))
	for i, e := range edges {
		u, w := e.Endpoints()
		if e.IsZero() || !s.g.HasEdge(u, w) {
			return fmt.Errorf("%s: %s: %w", methodReplace, e, core.ErrEdgeNotFound)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("%s: %s: %w", methodReplace, e, ErrDuplicateEdge)
		}
		seen[e] = struct{}{}
		arcs[i] = arc{from: u, edge: e}
	}

	if err := s.replaceArcs(arcs); err != nil {
		return fmt.Errorf("%s: %w", methodReplace, err)
	}
	s.state = Rewired

	return nil
}

// replaceArcs performs the removals and additions in order.
func (s *Graph) replaceArcs(arcs []arc) error {
	vs := s.g.Vertices()
	for _, a := range arcs {
		if err := s.g.RemoveEdge(a.edge); err != nil {
			return err
		}
		target, ok := s.pickTarget(vs, a.from)
		if !ok {
			// nothing to rewire to: keep the edge where it was
			if err := s.g.AddEdge(a.edge); err != nil {
				return err
			}
			continue
		}
		e, err := core.NewEdge(a.from, target)
		if err != nil {
			return err
		}
		if err = s.g.AddEdge(e); err != nil {
			return err
		}
	}

	return nil
}

// pickTarget draws the new endpoint for an edge leaving from.
func (s *Graph) pickTarget(vs []core.Vertex, from core.Vertex) (core.Vertex, bool) {
	if !s.strict {
		if len(vs) < 2 {
			return core.Vertex{}, false
		}
		// uniform over vs \ {from}: draw among n-1 slots and skip from's rank
		fromRank, _ := s.g.Rank(from)
		i := s.rng.Intn(len(vs) - 1)
		if i >= fromRank {
			i++
		}
		return vs[i], true
	}

	choices := make([]core.Vertex, 0, len(vs))
	for _, u := range vs {
		if u != from && !s.g.HasEdge(from, u) {
			choices = append(choices, u)
		}
	}
	if len(choices) == 0 {
		return core.Vertex{}, false
	}

	return choices[s.rng.Intn(len(choices))], true
}
