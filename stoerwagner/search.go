// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: Outer Stoer–Wagner loop: phases, contraction, best-cut bookkeeping.

package stoerwagner

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/mincut/core"
)

// MinimumCut returns the global minimum cut of g and the two sides it implies.
// g is contracted in place down to a single node.
//
// Implementation:
//   - Stage 1: Validate |V| ≥ 2 and resolve the start node (smallest label unless WithStart).
//   - Stage 2: Run a phase; if its cut is strictly smaller than the best so far,
//     record it together with the members of Last's cluster.
//   - Stage 3: Contract Last into SecondLast and fold the cluster table.
//   - Stage 4: Repeat until one node remains.
//
// The first phase reaching the minimum wins, so the reported sides are
// deterministic for a given graph and start node.
//
// Errors:
//   - ErrGraphTooSmall: fewer than two nodes.
//   - core.ErrUnknownNode: WithStart names an absent node.
//
// Complexity: Time O(V³), Space O(V).
func MinimumCut[K cmp.Ordered](g *core.WeightedGraph[K], opts ...Option[K]) (Result[K], error) {
	var o options[K]
	for _, opt := range opts {
		opt(&o)
	}

	total := g.NodeCount()
	if total < 2 {
		return Result[K]{}, fmt.Errorf("MinimumCut: %d node(s): %w", total, ErrGraphTooSmall)
	}
	original := g.Nodes()
	start := original[0]
	if o.hasStart {
		if !g.HasNode(o.start) {
			return Result[K]{}, fmt.Errorf("MinimumCut: start %v: %w", o.start, core.ErrUnknownNode)
		}
		start = o.start
	}

	clusters := newClusterTable(original)
	var bestCut int64
	var bestSide []K

	phase := 0
	for g.NodeCount() > 1 {
		phase++
		nodes := g.NodeCount()
		pr := runPhase(g, start)
		if phase == 1 || pr.CutWeight < bestCut {
			bestCut = pr.CutWeight
			bestSide = slices.Clone(clusters[pr.Last])
		}
		if o.onPhase != nil {
			o.onPhase(PhaseStats[K]{
				Phase:      phase,
				NodeCount:  nodes,
				CutWeight:  pr.CutWeight,
				BestWeight: bestCut,
				SecondLast: pr.SecondLast,
				Last:       pr.Last,
			})
		}
		if err := g.MergeInto(pr.Last, pr.SecondLast); err != nil {
			return Result[K]{}, fmt.Errorf("MinimumCut: phase %d: %w", phase, err)
		}
		clusters.absorb(pr.SecondLast, pr.Last)
	}

	return buildResult(original, bestCut, bestSide, phase), nil
}

// buildResult splits original into the recorded side and its complement.
func buildResult[K cmp.Ordered](original []K, cut int64, side []K, phases int) Result[K] {
	slices.Sort(side)
	inSide := make(map[K]bool, len(side))
	for _, v := range side {
		inSide[v] = true
	}
	other := make([]K, 0, len(original)-len(side))
	for _, v := range original {
		if !inSide[v] {
			other = append(other, v)
		}
	}

	return Result[K]{
		CutWeight:      cut,
		PartitionSizeA: len(side),
		PartitionSizeB: len(other),
		SideA:          side,
		SideB:          other,
		Phases:         phases,
	}
}
