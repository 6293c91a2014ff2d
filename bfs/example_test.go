package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/smallworld/bfs"
	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/core"
)

// ExampleBFS_ringLattice shows hop distances on the 2-regular ring C_6.
func ExampleBFS_ringLattice() {
	g, err := builder.BuildGraph(nil, builder.RingLattice(6, 2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := bfs.BFS(g, core.NewVertex("0"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range res.Order {
		fmt.Printf("%s:%d ", v.Label, res.Depth[v])
	}
	fmt.Println()
	// Output:
	// 0:0 1:1 5:1 2:2 4:2 3:3
}

// ExampleBFSResult_PathTo reconstructs the fewest-hop route in a small network.
func ExampleBFSResult_PathTo() {
	g, _ := core.NewGraph(core.NewVertex("A"), core.NewVertex("B"), core.NewVertex("C"),
		core.NewVertex("D"), core.NewVertex("E"), core.NewVertex("F"), core.NewVertex("K"))
	// Route1: A–B–C–D–K (4 hops); Route2: A–E–F–K (3 hops)
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"}, {"A", "E"}, {"E", "F"}, {"F", "K"}} {
		_ = g.AddEdge(core.MustEdge(core.NewVertex(p[0]), core.NewVertex(p[1])))
	}
	res, _ := bfs.BFS(g, core.NewVertex("A"))
	path, _ := res.PathTo(core.NewVertex("K"))
	fmt.Println(path)
	// Output:
	// [Vertex(A) Vertex(E) Vertex(F) Vertex(K)]
}
