// Package stoerwagner computes the global minimum cut of an undirected
// weighted graph (*core.WeightedGraph) with the Stoer–Wagner algorithm.
//
// # Algorithm
//
// A global minimum cut splits the node set into two non-empty parts so that
// the total weight of edges crossing between them is as small as possible.
// No source or sink is fixed.
//
// The search runs |V|-1 maximum-adjacency phases from a fixed start node a:
//
//	A ← {a}
//	w(v) ← weight(a, v)            for every v ∉ A
//	while more than one node is outside A:
//	    v ← argmax w(v)            ties: smallest label
//	    A ← A ∪ {v}
//	    w(u) += weight(u, v)       for every u ∉ A adjacent to v
//	t ← the remaining node, s ← the node added just before it
//	cut-of-phase ← w(t)
//
// The cut-of-phase is the weight of a minimum cut separating s from t in
// the current graph. After each phase t is contracted into s (MergeInto),
// and the smallest cut-of-phase ever observed is the global minimum.
// Because t is never the start node, a survives every contraction and can
// be reused for all phases.
//
// A cluster table follows which original nodes each surviving node stands
// for, so the result reports both the cut weight and the two sides:
//
//	res, err := stoerwagner.MinimumCut(g)
//	// res.CutWeight, res.PartitionSizeA, res.PartitionSizeB, res.SideA, res.SideB
//
// MinimumCut mutates g in place; pass g.Clone() to keep the original.
//
// # Determinism
//
// Node selection within a phase breaks ties by the smallest label, and the
// default start node is the smallest label, so equal inputs always produce
// the same phase sequence and the same reported sides, even when several
// minimum cuts of equal weight exist.
//
// # Complexity
//
//	Phase:       O(V²) time, O(V) memory.
//	MinimumCut:  O(V³) time, O(V) memory beyond the graph.
//
// # Errors
//
//	ErrGraphTooSmall    – fewer than two nodes.
//	core.ErrUnknownNode – the start node is absent.
package stoerwagner
