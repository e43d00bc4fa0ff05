// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: WeightedGraph arena, Edge value type, sentinel errors and constructor.
// Policy:
//   - Sentinels are defined once here; methods wrap them with %w.
//   - Handles are never reused; a tombstoned slot stays dead.

package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for WeightedGraph operations.
var (
	// ErrInvalidEdge indicates a self-loop, a weight below 1, or a weight that
	// would push the graph's total weight past math.MaxInt64.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrUnknownNode indicates an operation referenced a node that is not present.
	ErrUnknownNode = errors.New("core: unknown node")
)

// Edge is an undirected weighted edge as reported by Edges and CrossingEdges.
// U and V are ordered so that U < V.
type Edge[K cmp.Ordered] struct {
	U, V   K
	Weight int64
}

// WeightedGraph is an undirected graph with accumulated positive integer
// weights per node pair. The zero value is not usable; call New.
type WeightedGraph[K cmp.Ordered] struct {
	index  map[K]int       // label → handle (live nodes only)
	labels []K             // handle → label
	adj    []map[int]int64 // handle → neighbour handle → weight
	alive  []bool          // handle → false once removed
	live   int             // number of live handles
	total  int64           // sum of live edge weights, each edge once
}

// New creates an empty WeightedGraph.
// Complexity: O(1).
func New[K cmp.Ordered]() *WeightedGraph[K] {
	return &WeightedGraph[K]{
		index: make(map[K]int),
	}
}

// FromEdges builds a graph by calling AddEdge for every edge in order.
// The first failing edge aborts construction and its error is returned.
func FromEdges[K cmp.Ordered](edges []Edge[K]) (*WeightedGraph[K], error) {
	g := New[K]()
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// handle returns the live handle of v.
func (g *WeightedGraph[K]) handle(v K) (int, bool) {
	h, ok := g.index[v]

	return h, ok
}

// ensure returns the handle of v, allocating a fresh arena slot if v is new.
func (g *WeightedGraph[K]) ensure(v K) int {
	if h, ok := g.index[v]; ok {
		return h
	}
	h := len(g.labels)
	g.labels = append(g.labels, v)
	g.adj = append(g.adj, make(map[int]int64))
	g.alive = append(g.alive, true)
	g.index[v] = h
	g.live++

	return h
}

// link adds w to the symmetric pair (hu, hv). Callers guarantee hu != hv and w > 0.
func (g *WeightedGraph[K]) link(hu, hv int, w int64) {
	g.adj[hu][hv] += w
	g.adj[hv][hu] += w
}

// ordered returns the edge with endpoints swapped so that U < V.
func ordered[K cmp.Ordered](a, b K, w int64) Edge[K] {
	if b < a {
		a, b = b, a
	}

	return Edge[K]{U: a, V: b, Weight: w}
}

// compareEdges orders edges by (U, V).
func compareEdges[K cmp.Ordered](a, b Edge[K]) int {
	if c := cmp.Compare(a.U, b.U); c != 0 {
		return c
	}

	return cmp.Compare(a.V, b.V)
}
