package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/smallworld/bfs"
	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	labels := make([]string, N+1)
	for i := range labels {
		labels[i] = fmt.Sprintf("v%d", i)
	}
	g := chain(b, labels...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, core.NewVertex("v0"))
	}
}

// BenchmarkBFS_RingLattice runs BFS on a 10-regular ring lattice of 1000 vertices.
func BenchmarkBFS_RingLattice(b *testing.B) {
	g, err := builder.BuildGraph(nil, builder.RingLattice(1000, 10))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, core.NewVertex("0"))
	}
}
