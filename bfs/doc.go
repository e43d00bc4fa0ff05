// Package bfs provides breadth-first traversal and connected components
// over a *core.WeightedGraph. Edge weights are ignored: depth counts edges.
//
// BFS explores nodes in increasing hop distance from a start node. Within
// one depth level, neighbours are enqueued in ascending label order, so
// Order is deterministic.
//
//	res, err := bfs.BFS(g, "a", bfs.WithMaxDepth[string](2))
//	path, err := res.PathTo("d")
//
// Components partitions the node set into connected components, each sorted,
// ordered by their smallest label. A graph with more than one component has
// a global minimum cut of weight 0.
//
// Errors:
//
//	ErrGraphNil             – nil graph
//	ErrStartVertexNotFound  – start node absent
//	ErrOptionViolation      – invalid option (e.g. negative depth)
//	context errors          – WithContext cancelled
//	hook errors             – returned by OnVisit, wrapped
package bfs
