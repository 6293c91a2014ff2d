package dfs

import (
	"sort"

	"github.com/katalvlaran/smallworld/core"
)

// Components returns the vertex sets of g's connected components.
// Components are sorted by size, largest first, ties broken by the rank of
// their first vertex; each set lists its vertices in rank order.
// An empty graph has no components.
func Components(g *core.Graph) ([][]core.Vertex, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	res, err := DFS(g, core.Vertex{}, WithFullTraversal())
	if err != nil {
		return nil, err
	}

	// post-order finishes each tree with its root before the next tree starts
	out := make([][]core.Vertex, 0, len(res.Roots))
	var cur []core.Vertex
	next := 0
	for _, v := range res.Order {
		cur = append(cur, v)
		if next < len(res.Roots) && v == res.Roots[next] {
			sort.Slice(cur, func(i, j int) bool {
				ri, _ := g.Rank(cur[i])
				rj, _ := g.Rank(cur[j])
				return ri < rj
			})
			out = append(out, cur)
			cur = nil
			next++
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })

	return out, nil
}

// LargestComponentFraction returns |largest component| / |V|, or 0 for an
// empty graph.
func LargestComponentFraction(g *core.Graph) (float64, error) {
	comps, err := Components(g)
	if err != nil {
		return 0, err
	}
	if len(comps) == 0 {
		return 0, nil
	}

	return float64(len(comps[0])) / float64(g.VertexCount()), nil
}
