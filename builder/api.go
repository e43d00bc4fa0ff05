// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// api.go - Constructor type and the BuildGraph entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mincut/core"
)

// Graph is the graph type produced by every constructor.
type Graph = core.WeightedGraph[string]

// Constructor applies a deterministic mutation to g using the resolved config.
// Constructors validate their parameters before touching g and return
// wrapped sentinel errors instead of panicking.
type Constructor func(g *Graph, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves the options and applies all
// constructors in order. The first failure is wrapped with "BuildGraph: "
// and returned; no cleanup of the partial graph is attempted.
//
// Complexity: sum of constructor costs plus O(len(opts)).
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*Graph, error) {
	g := core.New[string]()
	cfg := newBuilderConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addNodes inserts labels for indices [from, from+n).
func addNodes(g *Graph, cfg builderConfig, from, n int) {
	for i := from; i < from+n; i++ {
		g.AddNode(cfg.idFn(i))
	}
}

// connect adds one weighted edge between indices i and j.
func connect(g *Graph, cfg builderConfig, method string, i, j int) error {
	w, err := cfg.weight(method)
	if err != nil {
		return err
	}
	u, v := cfg.idFn(i), cfg.idFn(j)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s,%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
