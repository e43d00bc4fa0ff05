// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Node 0 is the centre; leaves 1..n-1 are attached in ascending order.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that attaches n-1 leaves to a centre node.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, 0, n)
		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
