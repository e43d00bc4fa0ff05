// Package core provides WeightedGraph, an undirected weighted multigraph
// whose parallel edges collapse into one accumulated integer weight, with
// the destructive node contraction needed by global minimum-cut search.
//
// The graph G = (V, E) is stored as an arena of node records addressed by
// stable integer handles:
//
//	index  map[K]int          label  → handle
//	labels []K                handle → label
//	adj    []map[int]int64    handle → (neighbour handle → weight)
//	alive  []bool             tombstone flag per handle
//
// A removed or contracted node keeps its slot but is tombstoned and dropped
// from the index, so no adjacency map can ever reach it again.
//
// Invariants (maintained by every mutating method):
//
//   - Symmetry: weight(u→v) == weight(v→u) for every stored edge.
//   - No self-loops: a node is never its own neighbour.
//   - Weights are positive; AddEdge accumulates instead of replacing.
//   - The total weight fits in int64, so no weight, merge or cut overflows.
//   - Neighbour maps only reference live handles.
//
// Core Methods:
//
//	// Nodes
//	AddNode(v K)                      // O(1), idempotent
//	HasNode(v K) bool                 // O(1)
//	RemoveNode(v K) error             // O(deg(v))
//	Nodes() []K                       // O(V·log V), ascending
//	NodeCount() int                   // O(1)
//
//	// Edges
//	AddEdge(u, v K, w int64) error    // O(1), accumulates
//	EdgeWeight(u, v K) int64          // O(1), 0 when there is no edge
//	Neighbours(v K) ([]K, error)      // O(d·log d), ascending
//	NeighbourWeights(v K) iter.Seq2   // O(d), unordered
//	Degree(v K) (int, error)          // O(1)
//	EdgeCount() int                   // O(V)
//	TotalWeight() int64               // O(1)
//	Edges() []Edge[K]                 // O(E·log E), each edge once with U < V
//
//	// Contraction & cuts
//	MergeInto(u, v K) error           // O(deg(u))
//	CrossingWeight(side) int64        // O(V+E)
//	CrossingEdges(side) []Edge[K]     // O(E·log E)
//	Clone() *WeightedGraph[K]         // O(V+E)
//
// MergeInto(u, v) redirects every edge u–n (n ≠ v) onto v–n by
// accumulation, drops the u–v edge and removes u. The weight crossing any
// bipartition that keeps u and v on the same side is unchanged, which is the
// property Stoer–Wagner relies on.
//
// Errors:
//
//	ErrInvalidEdge  – self-loop, non-positive weight, total-weight overflow,
//	                  or MergeInto(v, v)
//	ErrUnknownNode  – operation references a node that is not present
//
// WeightedGraph is not safe for concurrent mutation; a single owner is
// expected for the lifetime of a computation.
package core
