// Package core provides the undirected simple Graph used by every other
// package in smallworld, together with its Vertex and Edge value types.
//
// The Graph G = (V,E) is stored as a symmetric nested map:
//
//	adjacency[v][w] = Edge{v,w}   and   adjacency[w][v] = Edge{v,w}
//
// Every mutation keeps both directions in sync, so lookups by either
// orientation observe the same Edge.
//
// Why use core.Graph?
//
//   - Value semantics: Vertex and Edge are comparable values; Edge stores its
//     endpoints canonically, so Edge(a,b) == Edge(b,a) and both work as map keys.
//   - Deterministic iteration: Vertices() follows insertion order ("rank"),
//     Edges(), OutVertices() and OutEdges() are sorted by rank.
//   - Explicit failures: sentinel errors grouped in three kinds
//     (ErrNotFound, ErrInvalidOperation, ErrDegree) for errors.Is branching.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v Vertex) error              // O(1), idempotent
//	HasVertex(v Vertex) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(e Edge) error                  // O(1), replaces an existing pair
//	RemoveEdge(e Edge) error               // O(1)
//	EdgeBetween(v, w Vertex) (Edge, bool)  // O(1)
//
//	// Query
//	Vertices() []Vertex                    // O(V)
//	Edges() []Edge                         // O(E·log E)
//	OutVertices(v) / OutEdges(v)           // O(d·log d)
//
//	// Construction helpers
//	AddAllEdges() error                    // K_n, O(V²)
//	CheckRegularPossibility(k int) error   // O(1)
//	AddRegularEdges(k int) error           // ring lattice, O(V·k)
//
//	// Connectivity
//	IsConnected() bool                     // O(V+E), explicit stack
//	IsConnectedFrom(start Vertex)          // O(V+E)
//
// Errors:
//
//	ErrEmptyLabel        – vertex label is empty
//	ErrVertexNotFound    – missing vertex (kind ErrNotFound)
//	ErrEdgeNotFound      – missing edge (kind ErrNotFound)
//	ErrMissingEndpoint   – edge references an absent vertex (kind ErrInvalidOperation)
//	ErrSelfLoop          – edge with identical endpoints (kind ErrInvalidOperation)
//	ErrNotEdgeless       – lattice requested on a graph that already has edges
//	ErrDisconnected      – operation defined for connected graphs only
//	*DegreeError         – regular-graph precondition violated (kind ErrDegree)
//
// Concurrency: a Graph is NOT safe for concurrent use. A caller that rewires
// a graph must not run queries (IsConnected, shortest paths) on the same
// instance from another goroutine.
package core
