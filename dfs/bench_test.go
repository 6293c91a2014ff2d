package dfs_test

import (
	"testing"

	"github.com/katalvlaran/smallworld/builder"
	"github.com/katalvlaran/smallworld/dfs"
)

// BenchmarkComponents measures component labelling on a sparse G(n,p) sample.
func BenchmarkComponents(b *testing.B) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(2000, 0.0008))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Components(g)
	}
}
