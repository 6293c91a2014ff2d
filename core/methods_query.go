// SPDX-License-Identifier: MIT
//
// File: methods_query.go
// Role: Read-only enumeration: Vertices/Edges/OutVertices/OutEdges/Degree.
// Determinism:
//   - Vertices() is insertion order.
//   - Edges(), OutVertices(), OutEdges() are sorted by vertex rank, so two calls
//     on an unmodified graph return identical slices.

package core

import (
	"fmt"
	"sort"
)

// Vertices returns all vertices in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every distinct edge once, although each is stored under
// both endpoints. Edges are ordered by (rank of lower endpoint, rank of higher endpoint).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, v := range g.order {
		rv := g.rank[v]
		for w, e := range g.adjacency[v] {
			// keep only the copy stored under the lower-ranked endpoint
			if rv < g.rank[w] {
				out = append(out, e)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ai, bi := g.edgeRanks(out[i])
		aj, bj := g.edgeRanks(out[j])
		if ai != aj {
			return ai < aj
		}
		return bi < bj
	})

	return out
}

// OutVertices returns the neighbors of v sorted by rank.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(d·log d).
func (g *Graph) OutVertices(v Vertex) ([]Vertex, error) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("OutVertices(%s): %w", v, ErrVertexNotFound)
	}
	out := make([]Vertex, 0, len(nbrs))
	for w := range nbrs {
		out = append(out, w)
	}
	g.sortByRank(out)

	return out, nil
}

// OutEdges returns the edges incident to v, ordered like OutVertices(v).
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(d·log d).
func (g *Graph) OutEdges(v Vertex) ([]Edge, error) {
	nbrs, err := g.OutVertices(v)
	if err != nil {
		return nil, fmt.Errorf("OutEdges: %w", err)
	}
	out := make([]Edge, len(nbrs))
	for i, w := range nbrs {
		out[i] = g.adjacency[v][w]
	}

	return out, nil
}

// Degree returns the number of neighbors of v. O(1).
func (g *Graph) Degree(v Vertex) (int, error) {
	nbrs, ok := g.adjacency[v]
	if !ok {
		return 0, fmt.Errorf("Degree(%s): %w", v, ErrVertexNotFound)
	}

	return len(nbrs), nil
}

// sortByRank orders vs by insertion rank in place.
func (g *Graph) sortByRank(vs []Vertex) {
	sort.Slice(vs, func(i, j int) bool { return g.rank[vs[i]] < g.rank[vs[j]] })
}

// edgeRanks returns the endpoint ranks of e, lower first.
func (g *Graph) edgeRanks(e Edge) (int, int) {
	a, b := g.rank[e.u], g.rank[e.v]
	if b < a {
		a, b = b, a
	}

	return a, b
}
