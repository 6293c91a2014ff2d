// Package builder provides “functional-options”-style constructors that
// populate a core.Graph with synthetic topologies.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG and the vertex ID scheme.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:      decimal strings ("0","1",…).
//     – SymbolIDFn:       single letters ("A","B",…).
//     – ExcelColumnIDFn:  Excel-style columns ("A","Z","AA",…).
//     – PrefixedIDFn:     prefix + decimal ("v0","v1",…).
//   - Constructors (run through BuildGraph):
//     – Complete(n):      K_n.
//     – RingLattice(n,k): k-regular ring lattice (core.Graph.AddRegularEdges).
//     – RandomSparse(n,p): Erdős–Rényi G(n,p).
//   - Direct mutators on an existing graph:
//     – AddRandomEdges(g, p, rng): Erdős–Rényi edges over g's current vertices.
//
// Guarantees:
//
//   - Determinism: same options, same seed and same constructor order ⇒ identical graphs.
//     No constructor reads global randomness; stochastic paths use the *rand.Rand
//     supplied through WithSeed/WithRand.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime validation returns sentinel errors wrapped with the method name,
//     e.g. "RandomSparse: p=1.500000 not in [0.0,1.0]: builder: probability out of range".
package builder
