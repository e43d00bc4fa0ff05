// SPDX-License-Identifier: MIT
//
// File: methods_merge.go
// Role: Node contraction, cut evaluation and cloning.
// Policy:
//   - MergeInto is exact: integer accumulation only, the contracted pair's
//     own edge is dropped and never counted twice.

package core

import (
	"fmt"
	"math"
	"slices"
)

// MergeInto contracts u into v: afterwards the two behave as a single node
// labelled v.
//
// Implementation:
//   - Stage 1: Validate u != v (ErrInvalidEdge) and presence of both (ErrUnknownNode).
//   - Stage 2: Check that no redirected weight overflows (ErrInvalidEdge).
//   - Stage 3: For each neighbour n of u other than v, add weight(u,n) onto (v,n).
//   - Stage 4: Remove u, which also drops the u–v edge.
//
// Any bipartition that keeps u and v together sees the same crossing weight
// before and after the call.
//
// Complexity: Time O(deg(u)), Space O(1).
func (g *WeightedGraph[K]) MergeInto(u, v K) error {
	if u == v {
		return fmt.Errorf("MergeInto(%v,%v): %w", u, v, ErrInvalidEdge)
	}
	hu, ok := g.handle(u)
	if !ok {
		return fmt.Errorf("MergeInto(%v,%v): %v: %w", u, v, u, ErrUnknownNode)
	}
	hv, ok := g.handle(v)
	if !ok {
		return fmt.Errorf("MergeInto(%v,%v): %v: %w", u, v, v, ErrUnknownNode)
	}
	// Validate everything before the first link so a failure leaves g untouched.
	var moved int64
	for n, w := range g.adj[hu] {
		if n == hv {
			continue
		}
		if w > math.MaxInt64-g.adj[hv][n] {
			return fmt.Errorf("MergeInto(%v,%v): weight to %v overflows: %w", u, v, g.labels[n], ErrInvalidEdge)
		}
		moved += w
	}
	for n, w := range g.adj[hu] {
		if n != hv {
			g.link(hv, n, w)
		}
	}
	g.total += moved

	return g.RemoveNode(u)
}

// CrossingWeight returns the total weight of edges with exactly one endpoint
// in side. Labels in side that are not present are ignored.
// Complexity: O(V+E).
func (g *WeightedGraph[K]) CrossingWeight(side map[K]bool) int64 {
	var total int64
	for v, h := range g.index {
		if !side[v] {
			continue
		}
		for n, w := range g.adj[h] {
			if !side[g.labels[n]] {
				total += w
			}
		}
	}

	return total
}

// CrossingEdges returns the edges with exactly one endpoint in side, each
// once with U < V, sorted by (U, V).
// Complexity: O(E·log E).
func (g *WeightedGraph[K]) CrossingEdges(side map[K]bool) []Edge[K] {
	var out []Edge[K]
	for v, h := range g.index {
		if !side[v] {
			continue
		}
		for n, w := range g.adj[h] {
			if other := g.labels[n]; !side[other] {
				out = append(out, ordered(v, other, w))
			}
		}
	}
	slices.SortFunc(out, compareEdges[K])

	return out
}

// Clone returns a deep copy holding only the live nodes and their edges.
// Handles are compacted; labels and weights are preserved.
// Complexity: O(V+E).
func (g *WeightedGraph[K]) Clone() *WeightedGraph[K] {
	c := &WeightedGraph[K]{
		total:  g.total,
		index:  make(map[K]int, g.live),
		labels: make([]K, 0, g.live),
		adj:    make([]map[int]int64, 0, g.live),
		alive:  make([]bool, 0, g.live),
	}
	// Allocate in label order so clones of equal graphs are laid out identically.
	for _, v := range g.Nodes() {
		c.ensure(v)
	}
	for v, h := range g.index {
		ch := c.index[v]
		for n, w := range g.adj[h] {
			c.adj[ch][c.index[g.labels[n]]] = w
		}
	}

	return c
}
