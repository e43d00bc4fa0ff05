// SPDX-License-Identifier: MIT
//
// File: phase.go
// Role: One maximum-adjacency phase.

package stoerwagner

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/mincut/core"
)

// Phase runs one maximum-adjacency phase on g from start node a and returns
// the cut-of-phase together with the last two nodes added.
//
// Implementation:
//   - Stage 1: Validate |V| ≥ 2 (ErrGraphTooSmall) and presence of a (core.ErrUnknownNode).
//   - Stage 2: Seed tentative weights with weight(a, v) for all v ≠ a.
//   - Stage 3: Repeatedly move the most tightly connected node into A
//     (ties → smallest label) and raise its neighbours' tentative weights.
//   - Stage 4: The single remaining node is Last; its tentative weight is the cut.
//
// g is not modified. Tentative weights never exceed g.TotalWeight(), which
// core keeps within int64, so the sums below cannot wrap.
//
// Complexity: Time O(V² + E), Space O(V).
func Phase[K cmp.Ordered](g *core.WeightedGraph[K], a K) (PhaseResult[K], error) {
	if n := g.NodeCount(); n < 2 {
		return PhaseResult[K]{}, fmt.Errorf("Phase: %d node(s): %w", n, ErrGraphTooSmall)
	}
	if !g.HasNode(a) {
		return PhaseResult[K]{}, fmt.Errorf("Phase: start %v: %w", a, core.ErrUnknownNode)
	}

	return runPhase(g, a), nil
}

// runPhase assumes g has at least two nodes and contains a.
func runPhase[K cmp.Ordered](g *core.WeightedGraph[K], a K) PhaseResult[K] {
	// pending holds the nodes outside A in ascending label order.
	pending := slices.DeleteFunc(g.Nodes(), func(v K) bool { return v == a })
	tentative := make(map[K]int64, len(pending))
	for v, w := range g.NeighbourWeights(a) {
		tentative[v] = w
	}
	inA := map[K]bool{a: true}

	prev := a
	for len(pending) > 1 {
		i := heaviest(pending, tentative)
		v := pending[i]
		pending = slices.Delete(pending, i, i+1)
		inA[v] = true
		for u, w := range g.NeighbourWeights(v) {
			if !inA[u] {
				tentative[u] += w
			}
		}
		prev = v
	}
	last := pending[0]

	return PhaseResult[K]{
		CutWeight:  tentative[last],
		SecondLast: prev,
		Last:       last,
	}
}

// heaviest returns the index of the node with the largest tentative weight.
// pending is sorted ascending, so keeping the first strict maximum picks the
// smallest label among ties.
func heaviest[K cmp.Ordered](pending []K, tentative map[K]int64) int {
	best := 0
	for i := 1; i < len(pending); i++ {
		if tentative[pending[i]] > tentative[pending[best]] {
			best = i
		}
	}

	return best
}
