// Package smallworld is the root of a small library and CLI for random-graph
// and small-world experiments on undirected, unweighted graphs.
//
// Packages:
//
//	core/        Vertex, Edge and Graph (symmetric nested map), regular lattices, connectivity
//	builder/     BuildGraph with functional options; Complete, RingLattice, RandomSparse (G(n,p))
//	bfs/         breadth-first search with hooks, depth limits and cancellation
//	dfs/         depth-first search and connected components
//	analysis/    clustering coefficient and shortest-path coefficient
//	smallworld/  Watts–Strogatz graph: ring lattice + Rewire(p)
//	experiment/  connectivity-rate and C(p)/L(p) sweep experiments
//	cmd/smallworld command-line driver (connectivity, sweep)
//
// Determinism: every enumeration follows vertex insertion order and every
// stochastic step draws from an explicit *rand.Rand, so a seed reproduces a
// run exactly.
//
// Quick start:
//
//	import "github.com/katalvlaran/smallworld/smallworld"
//
//	g, _ := smallworld.New(1000, 10, smallworld.WithSeed(1))
//	_ = g.Rewire(0.1)
//	c, _ := g.ClusteringCoefficient()
//	l, _ := g.ShortestPathCoeff()
package smallworld
