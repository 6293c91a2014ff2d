package builder_test

import (
	"fmt"

	"github.com/katalvlaran/smallworld/builder"
)

// ExampleRingLattice builds the 4-regular ring on 8 vertices and prints
// the neighbors of vertex "0": two on each side of the circle.
func ExampleRingLattice() {
	g, err := builder.BuildGraph(nil, builder.RingLattice(8, 4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	nbrs, _ := g.OutVertices(g.Vertices()[0])
	fmt.Println(g.EdgeCount(), nbrs)
	// Output:
	// 16 [Vertex(1) Vertex(2) Vertex(6) Vertex(7)]
}

// ExampleRandomSparse shows the two deterministic extremes of G(n,p).
func ExampleRandomSparse() {
	empty, _ := builder.BuildGraph(nil, builder.RandomSparse(6, 0))
	full, _ := builder.BuildGraph(nil, builder.RandomSparse(6, 1))
	fmt.Println(empty.EdgeCount(), full.EdgeCount())
	// Output:
	// 0 15
}

// ExampleBuildGraph combines an ID scheme with a seeded G(n,p) sample.
func ExampleBuildGraph() {
	opts := []builder.BuilderOption{builder.WithPrefixedIDs("v"), builder.WithSeed(42)}
	a, _ := builder.BuildGraph(opts, builder.RandomSparse(30, 0.1))
	b, _ := builder.BuildGraph(opts, builder.RandomSparse(30, 0.1)) // WithSeed reseeds per build
	fmt.Println(a.Vertices()[0], a.VertexCount(), a.EdgeCount() == b.EdgeCount())
	// Output:
	// Vertex(v0) 30 true
}
