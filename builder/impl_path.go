// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// impl_path.go: implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Adds nodes id(0..n-1) in ascending index order.
//   • Emits edges id(i) → id(i+1) for i=0..n-2 with weight w(i, rng).
//
// Complexity:
//   • Time: O(n·log n) node inserts + O(n·log n) edge inserts.
//   • Space: O(n) for the label slice.

package builder

import "github.com/katalvlaran/ordgraph/core"

// Path returns a Constructor that builds the directed path P_n.
func Path[N, E any](n int, id IDFn[N], w WeightFn[E]) Constructor[N, E] {
	return func(g *core.Graph[N, E], cfg builderConfig) error {
		if err := validateMin(methodPath, n, MinPathNodes); err != nil {
			return err
		}
		if err := validateFns(methodPath, id, w); err != nil {
			return err
		}

		labels := addNodes(g, n, id)
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, labels[i], labels[i+1], w(i, cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
