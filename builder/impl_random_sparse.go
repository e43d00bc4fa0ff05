// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model:
//   • Erdős–Rényi-like: each unordered pair {i,j}, i<j, is included
//     independently with probability p.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • RNG required when 0 < p < 1 (else ErrNeedRandSource).
//   • All n nodes are added first, so unlucky draws leave isolated nodes.
//
// Determinism:
//   • Trial order is i asc, j asc; equal seeds give equal graphs.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples edges with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		addNodes(g, cfg, 0, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p ∈ {0,1} is decided without consuming the RNG.
				include := p == 1 || (p > 0 && cfg.rng.Float64() < p)
				if !include {
					continue
				}
				if err := connect(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
