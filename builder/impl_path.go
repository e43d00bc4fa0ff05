// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Nodes 0..n-1; edges i–(i+1) for i = 0..n-2 in ascending order.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the path P_n.
func Path(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, 0, n)
		for i := 0; i+1 < n; i++ {
			if err := connect(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
