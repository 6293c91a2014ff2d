// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Vertex and edge lifecycle: AddVertex/HasVertex/AddEdge/RemoveEdge/EdgeBetween.
// Policy:
//   - Both adjacency directions are written or removed together, or not at all.
//   - Lookups never fail loudly: EdgeBetween and HasEdge are comma-ok / bool queries.

package core

import "fmt"

// AddVertex inserts v with an empty adjacency map.
// If v is already present this is a no-op: its edges are kept, so the
// symmetric adjacency invariant cannot be broken by a repeated insert.
// Returns ErrEmptyLabel for an empty label.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v Vertex) error {
	if v.Label == "" {
		return ErrEmptyLabel
	}
	if _, exists := g.adjacency[v]; exists {
		return nil
	}
	g.adjacency[v] = make(map[Vertex]Edge)
	g.rank[v] = len(g.order)
	g.order = append(g.order, v)

	return nil
}

// HasVertex reports whether v is in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(v Vertex) bool {
	_, ok := g.adjacency[v]
	return ok
}

// Rank returns v's position in insertion order, and false if v is absent.
// Rank is the deterministic vertex order used by every enumeration.
func (g *Graph) Rank(v Vertex) (int, bool) {
	r, ok := g.rank[v]
	return r, ok
}

// VertexCount returns |V|. O(1).
func (g *Graph) VertexCount() int {
	return len(g.order)
}

// EdgeCount returns |E|, each undirected edge counted once. O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// AddEdge installs e in both adjacency directions.
// Both endpoints must already be present (ErrMissingEndpoint); the zero Edge
// is rejected with ErrSelfLoop. If the pair is already connected the stored
// Edge is replaced and connectivity is unchanged.
// Complexity: O(1).
func (g *Graph) AddEdge(e Edge) error {
	if e.IsZero() {
		return fmt.Errorf("AddEdge(%s): %w", e, ErrSelfLoop)
	}
	u, v := e.Endpoints()
	nu, ok := g.adjacency[u]
	if !ok {
		return fmt.Errorf("AddEdge(%s): %s: %w", e, u, ErrMissingEndpoint)
	}
	nv, ok := g.adjacency[v]
	if !ok {
		return fmt.Errorf("AddEdge(%s): %s: %w", e, v, ErrMissingEndpoint)
	}
	if _, exists := nu[v]; !exists {
		g.edgeCount++
	}
	nu[v] = e
	nv[u] = e

	return nil
}

// RemoveEdge deletes e from both adjacency directions.
// Returns ErrEdgeNotFound if the endpoints are not connected.
// Complexity: O(1).
func (g *Graph) RemoveEdge(e Edge) error {
	u, v := e.Endpoints()
	if _, ok := g.adjacency[u][v]; !ok {
		return fmt.Errorf("RemoveEdge(%s): %w", e, ErrEdgeNotFound)
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.edgeCount--

	return nil
}

// EdgeBetween returns the edge connecting v and w in either orientation,
// and false when they are not connected or either vertex is absent.
// Complexity: O(1).
func (g *Graph) EdgeBetween(v, w Vertex) (Edge, bool) {
	e, ok := g.adjacency[v][w]
	return e, ok
}

// HasEdge reports whether v and w are connected. O(1).
func (g *Graph) HasEdge(v, w Vertex) bool {
	_, ok := g.adjacency[v][w]
	return ok
}
