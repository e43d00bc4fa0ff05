// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// impl_clusters.go - Clusters(sizes, bridges) constructor.
//
// Model:
//   • Cluster c occupies the consecutive index range after clusters 0..c-1
//     and is a complete graph weighted by cfg.weightFn.
//   • Each pair of consecutive clusters (c, c+1) is joined by `bridges`
//     unit-weight edges between uniformly drawn members. Draws may repeat,
//     in which case the weights accumulate.
//
// With two clusters, unit weights and bridges < min(sizes)-1 the global
// minimum cut runs along the cluster boundary and weighs exactly `bridges`.
//
// Contract:
//   • len(sizes) ≥ 2 and every size ≥ 2 (else ErrTooFewVertices).
//   • bridges ≥ 1 (else ErrTooFewVertices).
//   • RNG required (else ErrNeedRandSource).

package builder

import "fmt"

const (
	methodClusters  = "Clusters"
	minClusters     = 2
	minClusterNodes = 2
	minBridges      = 1
	bridgeWeight    = int64(1)
)

// Clusters returns a Constructor that builds dense clusters joined by sparse bridges.
func Clusters(sizes []int, bridges int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if len(sizes) < minClusters {
			return fmt.Errorf("%s: %d cluster(s) < min=%d: %w", methodClusters, len(sizes), minClusters, ErrTooFewVertices)
		}
		for c, n := range sizes {
			if n < minClusterNodes {
				return fmt.Errorf("%s: cluster %d size=%d < min=%d: %w",
					methodClusters, c, n, minClusterNodes, ErrTooFewVertices)
			}
		}
		if bridges < minBridges {
			return fmt.Errorf("%s: bridges=%d < min=%d: %w", methodClusters, bridges, minBridges, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodClusters, ErrNeedRandSource)
		}

		offsets := make([]int, len(sizes)+1)
		for c, n := range sizes {
			offsets[c+1] = offsets[c] + n
		}
		addNodes(g, cfg, 0, offsets[len(sizes)])
		for c, n := range sizes {
			if err := completeBlock(g, cfg, methodClusters, offsets[c], n); err != nil {
				return err
			}
		}
		for c := 0; c+1 < len(sizes); c++ {
			for b := 0; b < bridges; b++ {
				i := offsets[c] + cfg.rng.Intn(sizes[c])
				j := offsets[c+1] + cfg.rng.Intn(sizes[c+1])
				u, v := cfg.idFn(i), cfg.idFn(j)
				if err := g.AddEdge(u, v, bridgeWeight); err != nil {
					return fmt.Errorf("%s: bridge %s–%s: %w", methodClusters, u, v, err)
				}
			}
		}

		return nil
	}
}
