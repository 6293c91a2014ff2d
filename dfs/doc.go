// Package dfs implements depth-first search (single-source and forest) on
// core.Graph, and connected-component labelling built on it.
//
// Key features:
//   - DFS(g, start, opts...): traverse from a root, or the whole forest via WithFullTraversal
//   - Hooks: OnVisit (pre-order) and OnExit (post-order) with error aborts
//   - Limits: MaxDepth, FilterNeighbor, SkippedNeighbors diagnostic count
//   - Cancellation via context.Context
//   - Components(g): vertex sets of the connected components, largest first
//
// Determinism:
//
//	Roots are taken in vertex rank order and neighbors are explored in rank
//	order, so Order, Parent and Components are reproducible.
//
// Complexity:
//
//   - Time:   O(V + E·log d) (neighbor lists are rank-sorted).
//   - Memory: O(V) for the recursion stack and metadata maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is missing (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs
