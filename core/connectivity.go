// SPDX-License-Identifier: MIT
//
// File: connectivity.go
// Role: Reachability: IsConnected / IsConnectedFrom.
// Policy:
//   - Iterative worklist (explicit stack) and a visited set; no recursion, so
//     large rings do not grow the goroutine stack.

package core

import "fmt"

// IsConnected reports whether every vertex is reachable from every other.
// The search starts from the first vertex in rank order. A graph with no
// vertices is vacuously connected.
// Complexity: O(V+E).
func (g *Graph) IsConnected() bool {
	if len(g.order) == 0 {
		return true
	}

	return len(g.reach(g.order[0])) == len(g.order)
}

// IsConnectedFrom is IsConnected with an explicit start vertex.
// For an undirected graph the answer does not depend on start.
// Returns ErrVertexNotFound if start is absent.
func (g *Graph) IsConnectedFrom(start Vertex) (bool, error) {
	if !g.HasVertex(start) {
		return false, fmt.Errorf("IsConnectedFrom(%s): %w", start, ErrVertexNotFound)
	}

	return len(g.reach(start)) == len(g.order), nil
}

// reach returns the set of vertices reachable from start (inclusive).
func (g *Graph) reach(start Vertex) map[Vertex]struct{} {
	marked := make(map[Vertex]struct{}, len(g.order))
	stack := []Vertex{start}
	marked[start] = struct{}{}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for w := range g.adjacency[v] {
			if _, seen := marked[w]; seen {
				continue
			}
			marked[w] = struct{}{}
			stack = append(stack, w)
		}
	}

	return marked
}
