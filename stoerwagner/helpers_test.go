package stoerwagner_test

import (
	"cmp"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mincut/core"
)

// puzzleEdges is the reference puzzle graph: 15 nodes, 33 unit edges,
// minimum cut 3 splitting the nodes 9/6.
const puzzleEdges = `jqt–rhn, jqt–xhk, jqt–nvd, rhn–xhk, rhn–bvb, rhn–hfx, xhk–bvb, xhk–hfx,
cmg–qnr, cmg–nvd, cmg–lhk, cmg–bvb, bvb–hfx, pzl–lsr, pzl–hfx, pzl–nvd, qnr–nvd,
ntq–jqt, ntq–hfx, ntq–bvb, ntq–xhk, nvd–lhk, lsr–lhk, rzs–qnr, rzs–cmg, rzs–lsr,
rzs–rsh, frs–qnr, frs–lhk, frs–lsr, rsh–frs, rsh–pzl, rsh–lsr`

// puzzleGraph builds puzzleEdges with unit weights.
func puzzleGraph(t testing.TB) *core.WeightedGraph[string] {
	t.Helper()
	g := core.New[string]()
	for _, pair := range strings.Split(puzzleEdges, ",") {
		u, v, ok := strings.Cut(strings.TrimSpace(pair), "–")
		require.True(t, ok, "malformed pair %q", pair)
		require.NoError(t, g.AddEdge(u, v, 1))
	}

	return g
}

// twoTriangles builds {a,b,c} and {d,e,f}, each fully connected with weight 5,
// joined by c–d with weight 1.
func twoTriangles(t testing.TB) *core.WeightedGraph[string] {
	t.Helper()
	g := core.New[string]()
	for _, e := range []core.Edge[string]{
		{U: "a", V: "b", Weight: 5}, {U: "b", V: "c", Weight: 5}, {U: "a", V: "c", Weight: 5},
		{U: "d", V: "e", Weight: 5}, {U: "e", V: "f", Weight: 5}, {U: "d", V: "f", Weight: 5},
		{U: "c", V: "d", Weight: 1},
	} {
		require.NoError(t, g.AddEdge(e.U, e.V, e.Weight))
	}

	return g
}

// bruteForceMinCut tries every bipartition with the last node fixed on the
// far side: 2^(n-1)-1 candidates.
func bruteForceMinCut[K cmp.Ordered](g *core.WeightedGraph[K]) int64 {
	nodes := g.Nodes()
	n := len(nodes)
	best := int64(math.MaxInt64)
	for mask := 1; mask < 1<<(n-1); mask++ {
		side := make(map[K]bool, n)
		for i := 0; i < n-1; i++ {
			if mask&(1<<i) != 0 {
				side[nodes[i]] = true
			}
		}
		if w := g.CrossingWeight(side); w < best {
			best = w
		}
	}

	return best
}

func toSet[K comparable](xs []K) map[K]bool {
	m := make(map[K]bool, len(xs))
	for _, x := range xs {
		m[x] = true
	}

	return m
}
