package builder_test

import (
	"testing"

	"github.com/katalvlaran/smallworld/builder"
)

// BenchmarkRingLattice measures lattice construction for n=1000, k=10.
func BenchmarkRingLattice(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = builder.BuildGraph(nil, builder.RingLattice(1000, 10))
	}
}

// BenchmarkRandomSparse measures G(n,p) sampling on 500 vertices (~125k trials).
func BenchmarkRandomSparse(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(int64(i))}, builder.RandomSparse(500, 0.01))
	}
}
