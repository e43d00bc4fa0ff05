// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and weight queries.
//
// Determinism:
//   - Neighbours() and Edges() return sorted results.
//   - NeighbourWeights() follows map order; callers needing a stable order
//     must sort or use Neighbours().

package core

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// AddEdge adds w to the weight between u and v, creating either node and
// both directions of the edge if absent.
//
// Implementation:
//   - Stage 1: Reject u == v, w < 1 and total-weight overflow with
//     ErrInvalidEdge (no side-effects).
//   - Stage 2: Resolve or allocate handles for u and v.
//   - Stage 3: Accumulate w on both directions.
//
// Repeated insertion of the same pair accumulates, so an input listing a
// connection once per direction yields weight 2 for unit edges.
//
// The sum of all edge weights never exceeds math.MaxInt64. Every stored
// weight, merged weight and cut is bounded by that sum, so no later
// accumulation can wrap.
//
// Complexity: Time O(1) amortized, Space O(1) amortized.
func (g *WeightedGraph[K]) AddEdge(u, v K, w int64) error {
	if u == v {
		return fmt.Errorf("AddEdge(%v,%v): self-loop: %w", u, v, ErrInvalidEdge)
	}
	if w < 1 {
		return fmt.Errorf("AddEdge(%v,%v): weight %d < 1: %w", u, v, w, ErrInvalidEdge)
	}
	if w > math.MaxInt64-g.total {
		return fmt.Errorf("AddEdge(%v,%v): weight %d overflows total %d: %w", u, v, w, g.total, ErrInvalidEdge)
	}
	g.link(g.ensure(u), g.ensure(v), w)
	g.total += w

	return nil
}

// EdgeWeight returns the total weight between u and v, or 0 when they are
// not adjacent. Absent nodes also yield 0; use HasNode to tell them apart.
// Complexity: O(1).
func (g *WeightedGraph[K]) EdgeWeight(u, v K) int64 {
	hu, ok := g.handle(u)
	if !ok {
		return 0
	}
	hv, ok := g.handle(v)
	if !ok {
		return 0
	}

	return g.adj[hu][hv]
}

// Neighbours returns the neighbours of v in ascending order.
// Complexity: O(d·log d).
func (g *WeightedGraph[K]) Neighbours(v K) ([]K, error) {
	h, ok := g.handle(v)
	if !ok {
		return nil, fmt.Errorf("Neighbours(%v): %w", v, ErrUnknownNode)
	}
	out := make([]K, 0, len(g.adj[h]))
	for n := range g.adj[h] {
		out = append(out, g.labels[n])
	}
	slices.Sort(out)

	return out, nil
}

// NeighbourWeights yields every neighbour of v with its edge weight.
// An absent v yields nothing. The graph must not be mutated during iteration.
func (g *WeightedGraph[K]) NeighbourWeights(v K) iter.Seq2[K, int64] {
	return func(yield func(K, int64) bool) {
		h, ok := g.handle(v)
		if !ok {
			return
		}
		for n, w := range g.adj[h] {
			if !yield(g.labels[n], w) {
				return
			}
		}
	}
}

// EdgeCount returns the number of distinct adjacent pairs.
// Complexity: O(V).
func (g *WeightedGraph[K]) EdgeCount() int {
	var twice int
	for h, nbrs := range g.adj {
		if g.alive[h] {
			twice += len(nbrs)
		}
	}

	return twice / 2
}

// TotalWeight returns the sum of all edge weights, each edge counted once.
// Complexity: O(1).
func (g *WeightedGraph[K]) TotalWeight() int64 {
	return g.total
}

// Edges returns every edge once, with U < V, sorted by (U, V).
// Complexity: O(E·log E).
func (g *WeightedGraph[K]) Edges() []Edge[K] {
	out := make([]Edge[K], 0, g.EdgeCount())
	for h, nbrs := range g.adj {
		if !g.alive[h] {
			continue
		}
		for n, w := range nbrs {
			if h < n {
				out = append(out, ordered(g.labels[h], g.labels[n], w))
			}
		}
	}
	slices.SortFunc(out, compareEdges[K])

	return out
}
