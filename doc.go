// Package mincut computes global minimum cuts of undirected weighted graphs
// with the Stoer-Wagner algorithm.
//
// The module is organised in small packages:
//
//	core/        WeightedGraph: arena-backed adjacency with node contraction
//	stoerwagner/ maximum-adjacency phases and the minimum-cut search
//	bfs/         breadth-first traversal and connected components
//	builder/     deterministic graph constructors (paths, cliques, clusters)
//	edgelist/    text readers and writers for adjacency lists and triples
//	cmd/mincut/  command line front end (solve, generate)
//
// Quick start:
//
//	g := core.New[string]()
//	_ = g.AddEdge("a", "b", 3)
//	_ = g.AddEdge("b", "c", 1)
//	res, err := stoerwagner.MinimumCut(g)
//	// res.CutWeight == 1, res.Product() == 2
//
// MinimumCut contracts the graph it is given; pass g.Clone() to keep the
// original.
package mincut
