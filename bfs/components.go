package bfs

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/mincut/core"
)

// Components returns the connected components of g. Each component is
// sorted ascending and components are ordered by their smallest label.
// Complexity: O(V·log V + E·log d).
func Components[K cmp.Ordered](g *core.WeightedGraph[K]) ([][]K, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	seen := make(map[K]bool, g.NodeCount())
	var out [][]K
	// Nodes() is ascending, so each new component starts at its smallest label.
	for _, v := range g.Nodes() {
		if seen[v] {
			continue
		}
		res, err := BFS(g, v)
		if err != nil {
			return nil, err
		}
		comp := make([]K, len(res.Order))
		copy(comp, res.Order)
		for _, u := range comp {
			seen[u] = true
		}
		slices.Sort(comp)
		out = append(out, comp)
	}

	return out, nil
}
