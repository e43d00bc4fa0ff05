// Package builder provides deterministic constructors for weighted
// undirected graphs (*core.WeightedGraph[string]) used as fixtures,
// benchmarks and generator output for the minimum-cut tools.
//
// Constructors are closures applied in order by BuildGraph:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeights(1, 9)},
//	    builder.Clusters([]int{6, 4}, 2),
//	)
//
// Topologies:
//
//	Path(n)               n ≥ 2   P_n, min cut = lightest edge
//	Cycle(n)              n ≥ 3   C_n, min cut = two lightest edges
//	Star(n)               n ≥ 2   centre + n-1 leaves, min cut = lightest edge
//	Complete(n)           n ≥ 2   K_n, unit weights ⇒ min cut n-1
//	RandomSparse(n, p)    n ≥ 1   each pair independently with probability p
//	Clusters(sizes, k)    ≥ 2 clusters of size ≥ 2, each complete, consecutive
//	                      clusters joined by k random bridges
//
// Options:
//
//	WithSeed / WithRand            RNG for stochastic constructors and weights
//	WithIDScheme / WithPrefix      node labels (default "0","1",…)
//	WithWeightFn                   custom weight generator (must return ≥ 1)
//	WithUniformWeights(lo, hi)     uniform integer weights in [lo, hi]
//
// Determinism: for fixed options, constructors emit nodes in ascending index
// order and edges in a fixed (i asc, j asc) order, so equal seeds produce
// identical graphs.
//
// Errors:
//
//	ErrTooFewVertices      - size parameter below the constructor minimum
//	ErrInvalidProbability  - p outside [0,1]
//	ErrNeedRandSource      - stochastic constructor without an RNG
//	ErrBadWeight           - weight generator returned a value < 1
//	ErrConstructFailed     - nil constructor passed to BuildGraph
package builder
