package main

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mincut/builder"
	"github.com/katalvlaran/mincut/edgelist"
)

// generateCmd flags override the generate section of the config when set.
type generateCmd struct {
	Clusters    *int     `help:"Number of dense clusters; below 2 selects random-sparse mode"`
	ClusterSize *int     `help:"Nodes per cluster"`
	Bridges     *int     `help:"Unit-weight edges between consecutive clusters"`
	Vertices    *int     `help:"Node count in random-sparse mode"`
	Probability *float64 `help:"Edge probability in random-sparse mode"`
	MaxWeight   *int64   `help:"Edge weights are drawn from [1, max-weight]"`
	Seed        *int64   `help:"RNG seed"`
	Prefix      string   `help:"Node label prefix" default:"n"`
}

func (c *generateCmd) Run(a *app) error {
	p := a.cfg.Generate
	override(&p.Clusters, c.Clusters)
	override(&p.ClusterSize, c.ClusterSize)
	override(&p.Bridges, c.Bridges)
	override(&p.Vertices, c.Vertices)
	override(&p.Probability, c.Probability)
	override(&p.MaxWeight, c.MaxWeight)
	override(&p.Seed, c.Seed)
	if err := p.Validate(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(p.Seed),
		builder.WithPrefix(c.Prefix),
		builder.WithUniformWeights(1, p.MaxWeight),
	}

	var cons builder.Constructor
	if p.Clusters >= 2 {
		sizes := slices.Repeat([]int{p.ClusterSize}, p.Clusters)
		cons = builder.Clusters(sizes, p.Bridges)
		a.log.Info("generating clustered graph", "clusters", p.Clusters, "size", p.ClusterSize, "bridges", p.Bridges, "seed", p.Seed)
	} else {
		cons = builder.RandomSparse(p.Vertices, p.Probability)
		a.log.Info("generating random graph", "vertices", p.Vertices, "p", p.Probability, "seed", p.Seed)
	}

	g, err := builder.BuildGraph(opts, cons)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	a.log.Debug("graph built", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return edgelist.Write(a.stdout, g.Edges())
}

func override[T any](dst *T, flag *T) {
	if flag != nil {
		*dst = *flag
	}
}
