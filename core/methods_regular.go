// SPDX-License-Identifier: MIT
//
// File: methods_regular.go
// Role: Deterministic whole-graph constructions: complete graph K_n and k-regular ring lattice.
// Determinism:
//   - Both constructions walk vertices in rank order; the same graph always gets the same edges.
// Contract:
//   - Validation happens before the first mutation, so a failed call leaves the graph untouched.

package core

import "fmt"

const (
	methodAddAllEdges             = "AddAllEdges"
	methodCheckRegularPossibility = "CheckRegularPossibility"
	methodAddRegularEdges         = "AddRegularEdges"
)

// AddAllEdges connects every distinct pair of vertices, producing K_n.
// Existing edges are replaced by equal ones, so it is safe on a non-empty edge set.
// Complexity: O(V²).
func (g *Graph) AddAllEdges() error {
	n := len(g.order)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			e, err := NewEdge(g.order[i], g.order[j])
			if err != nil {
				return fmt.Errorf("%s: %w", methodAddAllEdges, err)
			}
			if err = g.AddEdge(e); err != nil {
				return fmt.Errorf("%s: %w", methodAddAllEdges, err)
			}
		}
	}

	return nil
}

// CheckRegularPossibility reports whether a k-regular graph on the current
// n vertices can exist: k ≥ 0, n ≥ k+1 and n·k even (handshake lemma).
// The returned error is a *DegreeError naming the violated condition.
// Complexity: O(1).
func (g *Graph) CheckRegularPossibility(k int) error {
	n := len(g.order)
	if k < 0 {
		return fmt.Errorf("%s: %w", methodCheckRegularPossibility, degreeError(n, k, ErrNegativeDegree))
	}
	if n < k+1 {
		return fmt.Errorf("%s: %w", methodCheckRegularPossibility, degreeError(n, k, ErrTooFewVertices))
	}
	if (n*k)%2 != 0 {
		return fmt.Errorf("%s: %w", methodCheckRegularPossibility, degreeError(n, k, ErrOddDegreeSum))
	}

	return nil
}

// AddRegularEdges turns an edgeless graph into a k-regular ring lattice.
//
// Vertices are arranged on a circle in rank order. For even k each vertex i
// is joined to i±1..i±k/2 (mod n). For odd k the vertex count must be even:
// the (k−1)-lattice is built first, then the perfect matching i ↔ i+n/2
// lifts every degree by one.
//
// Errors: *DegreeError (kind ErrDegree) for infeasible (n,k); ErrNotEdgeless
// if the graph already has edges.
// Complexity: O(V·k).
func (g *Graph) AddRegularEdges(k int) error {
	if err := g.CheckRegularPossibility(k); err != nil {
		return fmt.Errorf("%s: %w", methodAddRegularEdges, err)
	}
	if g.edgeCount > 0 {
		return fmt.Errorf("%s: %d edges present: %w", methodAddRegularEdges, g.edgeCount, ErrNotEdgeless)
	}

	if k%2 == 1 {
		if err := g.addRingEdges(k - 1); err != nil {
			return fmt.Errorf("%s: %w", methodAddRegularEdges, err)
		}
		if err := g.addOppositeMatching(); err != nil {
			return fmt.Errorf("%s: %w", methodAddRegularEdges, err)
		}

		return nil
	}
	if err := g.addRingEdges(k); err != nil {
		return fmt.Errorf("%s: %w", methodAddRegularEdges, err)
	}

	return nil
}

// addRingEdges joins every vertex i to i+1..i+k/2 (mod n); k must be even.
func (g *Graph) addRingEdges(k int) error {
	n := len(g.order)
	for i, v := range g.order {
		for j := 1; j <= k/2; j++ {
			e, err := NewEdge(v, g.order[(i+j)%n])
			if err != nil {
				return err
			}
			if err = g.AddEdge(e); err != nil {
				return err
			}
		}
	}

	return nil
}

// addOppositeMatching joins i to i+n/2 for i < n/2; n must be even.
func (g *Graph) addOppositeMatching() error {
	half := len(g.order) / 2
	for i := 0; i < half; i++ {
		e, err := NewEdge(g.order[i], g.order[i+half])
		if err != nil {
			return err
		}
		if err = g.AddEdge(e); err != nil {
			return err
		}
	}

	return nil
}
