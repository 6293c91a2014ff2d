package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/smallworld/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v core.Vertex) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex have
	// been explored (post-order), before appending to result.Order.
	OnExit func(v core.Vertex) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor before recursing.
	// Return false to skip it.
	FilterNeighbor func(v core.Vertex) bool

	// FullTraversal runs DFS from every unvisited vertex in rank order,
	// covering disconnected components (forest traversal).
	FullTraversal bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filtering and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v core.Vertex) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v core.Vertex) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth to limit; 0 visits only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor(fn func(v core.Vertex) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal makes DFS restart from each unvisited vertex.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []core.Vertex

	// Depth maps each vertex to its depth in its DFS tree.
	Depth map[core.Vertex]int

	// Parent maps each vertex to the vertex from which it was discovered.
	// Tree roots do not appear.
	Parent map[core.Vertex]core.Vertex

	// Visited flags which vertices were reached.
	Visited map[core.Vertex]bool

	// Roots lists the tree roots in the order they were started.
	Roots []core.Vertex

	// SkippedNeighbors mirrors DFSOptions.SkippedNeighbors after the run.
	SkippedNeighbors int
}
