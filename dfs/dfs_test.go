package dfs_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/core"
	"github.com/katalvlaran/smallworld/dfs"
)

func v(l string) core.Vertex { return core.NewVertex(l) }

// buildChain creates the path N0–N1–…–N(n-1).
func buildChain(t testing.TB, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph()
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(v("N"+strconv.Itoa(i))))
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(core.MustEdge(v("N"+strconv.Itoa(i)), v("N"+strconv.Itoa(i+1)))))
	}

	return g
}

// buildPairs creates a graph over labels with the given edges.
func buildPairs(t testing.TB, labels []string, pairs ...[2]string) *core.Graph {
	t.Helper()
	g, err := core.NewGraph()
	require.NoError(t, err)
	for _, l := range labels {
		require.NoError(t, g.AddVertex(v(l)))
	}
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(core.MustEdge(v(p[0]), v(p[1]))))
	}

	return g
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, v("A"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := buildPairs(t, nil)
	res, err := dfs.DFS(g, v("X"))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
}

func TestDFS_SingleVertex(t *testing.T) {
	g := buildPairs(t, []string{"X"})
	res, err := dfs.DFS(g, v("X"))
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{v("X")}, res.Order)
	assert.True(t, res.Visited[v("X")])
	assert.Equal(t, 0, res.Depth[v("X")])
	_, hasParent := res.Parent[v("X")]
	assert.False(t, hasParent, "start vertex should have no parent")
	assert.Equal(t, []core.Vertex{v("X")}, res.Roots)
}

func TestDFS_Chain(t *testing.T) {
	g := buildChain(t, 5)
	res, err := dfs.DFS(g, v("N0"))
	require.NoError(t, err)

	// post-order on a path from one end: deepest first
	assert.Equal(t, []core.Vertex{v("N4"), v("N3"), v("N2"), v("N1"), v("N0")}, res.Order)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, res.Depth[v("N"+strconv.Itoa(i))])
	}
	assert.Equal(t, v("N3"), res.Parent[v("N4")])
}

func TestDFS_RankOrderedBranches(t *testing.T) {
	// A has neighbors B and C; B is explored first because it was added first
	g := buildPairs(t, []string{"A", "B", "C", "D"}, [2]string{"A", "C"}, [2]string{"A", "B"}, [2]string{"B", "D"})
	res, err := dfs.DFS(g, v("A"))
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{v("D"), v("B"), v("C"), v("A")}, res.Order)
}

func TestDFS_MaxDepth(t *testing.T) {
	g := buildChain(t, 5)

	res, err := dfs.DFS(g, v("N0"), dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Len(t, res.Order, 3)
	assert.False(t, res.Visited[v("N3")])

	res, err = dfs.DFS(g, v("N0"), dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{v("N0")}, res.Order)
}

func TestDFS_FilterNeighbor(t *testing.T) {
	g := buildChain(t, 4)
	res, err := dfs.DFS(g, v("N0"), dfs.WithFilterNeighbor(func(x core.Vertex) bool { return x != v("N2") }))
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{v("N1"), v("N0")}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_Hooks(t *testing.T) {
	g := buildChain(t, 3)
	var pre, post []string
	_, err := dfs.DFS(g, v("N0"),
		dfs.WithOnVisit(func(x core.Vertex) error { pre = append(pre, x.Label); return nil }),
		dfs.WithOnExit(func(x core.Vertex) error { post = append(post, x.Label); return nil }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"N0", "N1", "N2"}, pre)
	assert.Equal(t, []string{"N2", "N1", "N0"}, post)

	boom := errors.New("boom")
	_, err = dfs.DFS(g, v("N0"), dfs.WithOnVisit(func(x core.Vertex) error {
		if x == v("N1") {
			return boom
		}
		return nil
	}))
	assert.ErrorIs(t, err, boom)

	_, err = dfs.DFS(g, v("N0"), dfs.WithOnExit(func(core.Vertex) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestDFS_Cancellation(t *testing.T) {
	g := buildChain(t, 50)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(g, v("N0"), dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDFS_FullTraversal(t *testing.T) {
	g := buildPairs(t, []string{"A", "B", "C", "D", "E"}, [2]string{"A", "B"}, [2]string{"C", "D"})
	res, err := dfs.DFS(g, core.Vertex{}, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []core.Vertex{v("A"), v("C"), v("E")}, res.Roots)
	assert.Len(t, res.Order, 5)
}

func TestDFS_DeepPath(t *testing.T) {
	g := buildChain(t, 20000)
	res, err := dfs.DFS(g, v("N0"))
	require.NoError(t, err)
	assert.Len(t, res.Order, 20000)
	assert.Equal(t, 19999, res.Depth[v("N19999")])
}

func TestComponents(t *testing.T) {
	g := buildPairs(t, []string{"A", "B", "C", "D", "E", "F"},
		[2]string{"A", "B"}, [2]string{"D", "E"}, [2]string{"E", "F"})
	comps, err := dfs.Components(g)
	require.NoError(t, err)
	assert.Equal(t, [][]core.Vertex{
		{v("D"), v("E"), v("F")},
		{v("A"), v("B")},
		{v("C")},
	}, comps)

	frac, err := dfs.LargestComponentFraction(g)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, frac, 1e-12)
}

func TestComponents_Edge(t *testing.T) {
	_, err := dfs.Components(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	comps, err := dfs.Components(buildPairs(t, nil))
	require.NoError(t, err)
	assert.Empty(t, comps)
	frac, err := dfs.LargestComponentFraction(buildPairs(t, nil))
	require.NoError(t, err)
	assert.Zero(t, frac)

	ring, err := builder.BuildGraph(nil, builder.RingLattice(12, 2))
	require.NoError(t, err)
	comps, err = dfs.Components(ring)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, ring.Vertices(), comps[0])
}
