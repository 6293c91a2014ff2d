// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/core"
)

// Common vertices used across core tests.
var (
	VertexA = core.NewVertex("a")
	VertexB = core.NewVertex("b")
	VertexC = core.NewVertex("c")
	VertexD = core.NewVertex("d")
)

// numbered returns n vertices labelled "0".."n-1".
func numbered(n int) []core.Vertex {
	vs := make([]core.Vertex, n)
	for i := range vs {
		vs[i] = core.NewVertex(strconv.Itoa(i))
	}

	return vs
}

// newGraph builds a graph over vs and fails the test on error.
func newGraph(t testing.TB, vs ...core.Vertex) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(vs...)
	require.NoError(t, err)

	return g
}

// triangle returns the graph {a,b,c} with all three edges.
func triangle(t testing.TB) *core.Graph {
	t.Helper()
	g := newGraph(t, VertexA, VertexB, VertexC)
	require.NoError(t, g.AddEdge(core.MustEdge(VertexA, VertexB)))
	require.NoError(t, g.AddEdge(core.MustEdge(VertexA, VertexC)))
	require.NoError(t, g.AddEdge(core.MustEdge(VertexB, VertexC)))

	return g
}

// requireSymmetric asserts the adjacency invariant through the public API.
func requireSymmetric(t testing.TB, g *core.Graph) {
	t.Helper()
	for _, v := range g.Vertices() {
		nbrs, err := g.OutVertices(v)
		require.NoError(t, err)
		for _, w := range nbrs {
			evw, ok := g.EdgeBetween(v, w)
			require.True(t, ok)
			ewv, ok := g.EdgeBetween(w, v)
			require.True(t, ok, "missing mirror %s-%s", w, v)
			require.Equal(t, evw, ewv)
		}
	}
}
