package dfs

import (
	"fmt"

	"github.com/katalvlaran/smallworld/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs depth-first search on g. With WithFullTraversal it covers all
// components and start is ignored; otherwise it starts only from start.
// On abort the partial result is returned with the error.
func DFS(g *core.Graph, start core.Vertex, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	if !dopts.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	res := &DFSResult{
		Order:   make([]core.Vertex, 0, n),
		Depth:   make(map[core.Vertex]int, n),
		Parent:  make(map[core.Vertex]core.Vertex, n),
		Visited: make(map[core.Vertex]bool, n),
	}
	w := &dfsWalker{graph: g, opts: dopts, res: res}

	roots := []core.Vertex{start}
	if dopts.FullTraversal {
		roots = g.Vertices()
	}
	for _, r := range roots {
		if res.Visited[r] {
			continue
		}
		res.Roots = append(res.Roots, r)
		if err := w.traverse(r, 0); err != nil {
			res.SkippedNeighbors = w.opts.SkippedNeighbors
			return res, err
		}
	}
	res.SkippedNeighbors = w.opts.SkippedNeighbors

	return res, nil
}

// traverse visits v at the given depth, recursing to neighbors in rank order.
func (w *dfsWalker) traverse(v core.Vertex, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %s: %w", v, err)
		}
	}

	nbs, err := w.graph.OutVertices(v)
	if err != nil {
		return fmt.Errorf("dfs: OutVertices(%s): %w", v, err)
	}
	for _, nb := range nbs {
		if w.res.Visited[nb] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.opts.SkippedNeighbors++
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nb] = v
		if err = w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %s: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}
