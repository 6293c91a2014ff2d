package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
	"github.com/katalvlaran/smallworld/dfs"
)

// ExampleComponents splits a graph with an isolated vertex and two paths.
func ExampleComponents() {
	a, b, c, d, e := core.NewVertex("a"), core.NewVertex("b"), core.NewVertex("c"), core.NewVertex("d"), core.NewVertex("e")
	g, _ := core.NewGraph(a, b, c, d, e)
	_ = g.AddEdge(core.MustEdge(a, b))
	_ = g.AddEdge(core.MustEdge(c, d))
	_ = g.AddEdge(core.MustEdge(d, e))

	comps, _ := dfs.Components(g)
	for _, comp := range comps {
		fmt.Println(comp)
	}
	// Output:
	// [Vertex(c) Vertex(d) Vertex(e)]
	// [Vertex(a) Vertex(b)]
}
