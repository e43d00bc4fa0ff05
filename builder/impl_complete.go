// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges {i,j} for i < j, emitted i asc then j asc.
//
// Complexity:
//   • Time: O(n²) edges. Space: O(1) extra.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		addNodes(g, cfg, 0, n)

		return completeBlock(g, cfg, methodComplete, 0, n)
	}
}

// completeBlock connects every pair inside indices [from, from+n).
func completeBlock(g *Graph, cfg builderConfig, method string, from, n int) error {
	for i := from; i < from+n; i++ {
		for j := i + 1; j < from+n; j++ {
			if err := connect(g, cfg, method, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}
