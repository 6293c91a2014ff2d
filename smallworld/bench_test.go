package smallworld_test

import (
	"testing"

	"github.com/katalvlaran/smallworld/smallworld"
)

// BenchmarkRewire measures New+Rewire(0.1) for n=1000, k=10.
func BenchmarkRewire(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g, err := smallworld.New(1000, 10, smallworld.WithSeed(int64(i)))
		if err != nil {
			b.Fatal(err)
		}
		if err = g.Rewire(0.1); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkShortestPathCoeff measures L on a rewired n=300, k=6 graph.
func BenchmarkShortestPathCoeff(b *testing.B) {
	g, err := smallworld.New(300, 6, smallworld.WithSeed(1), smallworld.WithStrictRewiring())
	if err != nil {
		b.Fatal(err)
	}
	if err = g.Rewire(0.1); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.ShortestPathCoeff()
	}
}
