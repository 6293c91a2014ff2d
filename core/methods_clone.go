// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clones keep insertion order, so ranks (and every sorted enumeration) match the source.

package core

// CloneEmpty returns a new Graph with the same vertices in the same order, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	clone := &Graph{
		adjacency: make(map[Vertex]map[Vertex]Edge, len(g.order)),
		order:     make([]Vertex, len(g.order)),
		rank:      make(map[Vertex]int, len(g.order)),
	}
	copy(clone.order, g.order)
	for i, v := range g.order {
		clone.adjacency[v] = make(map[Vertex]Edge)
		clone.rank[v] = i
	}

	return clone
}

// Clone returns a deep copy of the Graph: vertices, order and edges.
// Vertex and Edge are values, so nothing is shared with the source.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	for v, nbrs := range g.adjacency {
		inner := clone.adjacency[v]
		for w, e := range nbrs {
			inner[w] = e
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}
