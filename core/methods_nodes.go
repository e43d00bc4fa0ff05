// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns labels sorted ascending.

package core

import (
	"fmt"
	"slices"
)

// AddNode inserts v as an isolated node if it is missing (idempotent).
// Complexity: O(1) amortized.
func (g *WeightedGraph[K]) AddNode(v K) {
	g.ensure(v)
}

// HasNode reports whether v is present.
func (g *WeightedGraph[K]) HasNode(v K) bool {
	_, ok := g.index[v]

	return ok
}

// RemoveNode deletes v and every edge incident to v.
//
// Implementation:
//   - Stage 1: Resolve v to its handle; absent nodes fail with ErrUnknownNode.
//   - Stage 2: Delete v from each neighbour's adjacency map.
//   - Stage 3: Tombstone the slot and drop v from the index.
//
// A neighbour whose only edge went to v is left isolated, which is valid.
//
// Complexity: Time O(deg(v)), Space O(1).
func (g *WeightedGraph[K]) RemoveNode(v K) error {
	h, ok := g.handle(v)
	if !ok {
		return fmt.Errorf("RemoveNode(%v): %w", v, ErrUnknownNode)
	}
	for n, w := range g.adj[h] {
		delete(g.adj[n], h)
		g.total -= w
	}
	g.adj[h] = nil
	g.alive[h] = false
	delete(g.index, v)
	g.live--

	return nil
}

// Nodes returns all live labels in ascending order.
// Complexity: O(V·log V).
func (g *WeightedGraph[K]) Nodes() []K {
	out := make([]K, 0, g.live)
	for v := range g.index {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// NodeCount returns the number of live nodes.
func (g *WeightedGraph[K]) NodeCount() int { return g.live }

// Degree returns the number of distinct neighbours of v.
func (g *WeightedGraph[K]) Degree(v K) (int, error) {
	h, ok := g.handle(v)
	if !ok {
		return 0, fmt.Errorf("Degree(%v): %w", v, ErrUnknownNode)
	}

	return len(g.adj[h]), nil
}
