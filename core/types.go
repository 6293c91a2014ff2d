// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge and Graph declarations, sentinel errors, NewGraph.
// Policy:
//   - Vertex and Edge are immutable values; Graph references them, never owns them.
//   - Edge endpoints are stored in canonical order, so == is orientation-independent.
//   - Sentinels are grouped by kind (ErrNotFound, ErrInvalidOperation, ErrDegree).

package core

import (
	"errors"
	"fmt"
)

// Error kinds. Every sentinel below matches exactly one of them under errors.Is.
var (
	// ErrNotFound is the kind of every "absent vertex/edge" failure.
	ErrNotFound = errors.New("core: not found")

	// ErrInvalidOperation is the kind of every request the graph cannot honor
	// in its current shape (missing endpoint, self-loop, disconnected graph...).
	ErrInvalidOperation = errors.New("core: invalid operation")

	// ErrDegree is the kind of every regular-graph precondition failure.
	// Concrete failures are reported as *DegreeError.
	ErrDegree = errors.New("core: degree error")
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyLabel indicates a Vertex with an empty label.
	ErrEmptyLabel = fmt.Errorf("%w: empty vertex label", ErrInvalidOperation)

	// ErrVertexNotFound indicates an operation referenced a vertex absent from the graph.
	ErrVertexNotFound = fmt.Errorf("%w: vertex", ErrNotFound)

	// ErrEdgeNotFound indicates the two vertices are not connected.
	ErrEdgeNotFound = fmt.Errorf("%w: edge", ErrNotFound)

	// ErrMissingEndpoint indicates AddEdge referenced a vertex not yet in the graph.
	ErrMissingEndpoint = fmt.Errorf("%w: edge endpoint not in graph", ErrInvalidOperation)

	// ErrSelfLoop indicates an edge whose endpoints are the same vertex.
	ErrSelfLoop = fmt.Errorf("%w: self-loop", ErrInvalidOperation)

	// ErrNotEdgeless indicates a lattice construction on a graph that already has edges.
	ErrNotEdgeless = fmt.Errorf("%w: graph already has edges", ErrInvalidOperation)

	// ErrDisconnected indicates an operation that is only defined for connected graphs.
	ErrDisconnected = fmt.Errorf("%w: graph is not connected", ErrInvalidOperation)
)

// Vertex is a node identity. Two vertices are equal iff their labels are equal,
// so a Vertex can be used directly as a map key.
type Vertex struct {
	// Label is the display label and the identity of the vertex.
	Label string
}

// NewVertex returns the Vertex labelled label.
func NewVertex(label string) Vertex {
	return Vertex{Label: label}
}

// String renders the vertex as Vertex(label).
func (v Vertex) String() string {
	return "Vertex(" + v.Label + ")"
}

// Edge is an unordered pair of two distinct vertices.
//
// The zero Edge is invalid. Build edges with NewEdge, which stores the
// endpoints in label order: NewEdge(a,b) == NewEdge(b,a).
type Edge struct {
	u, v Vertex // u.Label < v.Label
}

// NewEdge returns the edge {a,b}. It fails with ErrSelfLoop when a == b.
// Complexity: O(len(label)).
func NewEdge(a, b Vertex) (Edge, error) {
	if a == b {
		return Edge{}, fmt.Errorf("NewEdge(%s,%s): %w", a, b, ErrSelfLoop)
	}
	if b.Label < a.Label {
		a, b = b, a
	}

	return Edge{u: a, v: b}, nil
}

// MustEdge is like NewEdge but panics on a self-loop. Intended for fixtures
// and examples with literal vertices.
func MustEdge(a, b Vertex) Edge {
	e, err := NewEdge(a, b)
	if err != nil {
		panic(err)
	}

	return e
}

// Endpoints returns both endpoints in canonical (label) order.
func (e Edge) Endpoints() (Vertex, Vertex) {
	return e.u, e.v
}

// Has reports whether x is an endpoint of e.
func (e Edge) Has(x Vertex) bool {
	return e.u == x || e.v == x
}

// Other returns the endpoint opposite to x, and false if x is not an endpoint.
func (e Edge) Other(x Vertex) (Vertex, bool) {
	switch x {
	case e.u:
		return e.v, true
	case e.v:
		return e.u, true
	default:
		return Vertex{}, false
	}
}

// IsZero reports whether e is the zero Edge (never produced by NewEdge).
func (e Edge) IsZero() bool {
	return e == Edge{}
}

// String renders the edge as Edge(Vertex(a), Vertex(b)).
func (e Edge) String() string {
	return "Edge(" + e.u.String() + ", " + e.v.String() + ")"
}

// Graph is an undirected simple graph stored as a symmetric nested map.
//
// Invariants:
//   - adjacency[v][w] exists iff adjacency[w][v] exists, and both hold the same Edge.
//   - every vertex has an inner map, empty when the vertex is isolated.
//   - order lists vertices in insertion order; rank[v] is v's index in order.
//
// A Graph is not safe for concurrent use.
type Graph struct {
	adjacency map[Vertex]map[Vertex]Edge
	order     []Vertex
	rank      map[Vertex]int
	edgeCount int
}

// NewGraph creates a graph holding vs (in the given order) and no edges.
// Duplicate vertices are ignored; an empty label fails with ErrEmptyLabel.
// Complexity: O(len(vs)).
func NewGraph(vs ...Vertex) (*Graph, error) {
	g := &Graph{
		adjacency: make(map[Vertex]map[Vertex]Edge, len(vs)),
		order:     make([]Vertex, 0, len(vs)),
		rank:      make(map[Vertex]int, len(vs)),
	}
	for _, v := range vs {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("NewGraph: %w", err)
		}
	}

	return g, nil
}
