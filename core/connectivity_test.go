package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/core"
)

func TestGraph_IsConnected_Complete(t *testing.T) {
	for n := 1; n <= 10; n++ {
		g := newGraph(t, numbered(n)...)
		require.NoError(t, g.AddAllEdges())
		assert.True(t, g.IsConnected(), "K_%d", n)
	}
}

func TestGraph_IsConnected_Edgeless(t *testing.T) {
	for n := 2; n <= 10; n++ {
		g := newGraph(t, numbered(n)...)
		assert.False(t, g.IsConnected(), "edgeless n=%d", n)
	}
	assert.True(t, newGraph(t).IsConnected(), "empty graph is vacuously connected")
	assert.True(t, newGraph(t, VertexA).IsConnected())
}

func TestGraph_IsConnected_RingLattice(t *testing.T) {
	g := newGraph(t, numbered(6)...)
	require.NoError(t, g.AddRegularEdges(2))
	assert.True(t, g.IsConnected())
}

func TestGraph_IsConnectedFrom(t *testing.T) {
	g := newGraph(t, VertexA, VertexB, VertexC, VertexD)
	require.NoError(t, g.AddEdge(core.MustEdge(VertexA, VertexB)))
	require.NoError(t, g.AddEdge(core.MustEdge(VertexC, VertexD)))

	for _, start := range g.Vertices() {
		ok, err := g.IsConnectedFrom(start)
		require.NoError(t, err)
		assert.False(t, ok, "start %s", start)
	}

	require.NoError(t, g.AddEdge(core.MustEdge(VertexB, VertexC)))
	for _, start := range g.Vertices() {
		ok, err := g.IsConnectedFrom(start)
		require.NoError(t, err)
		assert.True(t, ok, "start %s", start)
	}

	_, err := g.IsConnectedFrom(core.NewVertex("zz"))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_IsConnected_LongPath(t *testing.T) {
	const n = 100000
	vs := numbered(n)
	g := newGraph(t, vs...)
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(core.MustEdge(vs[i], vs[i+1])))
	}
	assert.True(t, g.IsConnected(), "path of %d vertices", n)
}
