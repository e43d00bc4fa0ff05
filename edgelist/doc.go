// Package edgelist reads and writes the textual graph formats consumed by
// the mincut command and turns them into *core.WeightedGraph[string].
//
// Two formats are supported:
//
//	adjacency   one node per line followed by a colon and its neighbours,
//	            every listed connection has weight 1:
//
//	                jqt: rhn xhk nvd
//	                rsh: frs pzl lsr
//
//	triples     one edge per line, "u v [w]", weight defaulting to 1:
//
//	                a b 5
//	                b c
//
// In both formats blank lines and lines starting with '#' are ignored.
// A connection listed twice (once from each side, or repeated) accumulates,
// matching core.WeightedGraph.AddEdge.
package edgelist
