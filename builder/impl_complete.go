// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every ordered pair (u, v), u ≠ v, in row-major index order;
//     n(n-1) edges, no self-loops.
//
// Complexity:
//   • Time: O(n²·log n); Space: O(n).

package builder

import "github.com/katalvlaran/ordgraph/core"

// Complete returns a Constructor that builds the complete digraph K_n.
func Complete[N, E any](n int, id IDFn[N], w WeightFn[E]) Constructor[N, E] {
	return func(g *core.Graph[N, E], cfg builderConfig) error {
		if err := validateMin(methodComplete, n, MinCompleteNodes); err != nil {
			return err
		}
		if err := validateFns(methodComplete, id, w); err != nil {
			return err
		}

		labels := addNodes(g, n, id)
		k := 0
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if err := addEdge(methodComplete, g, labels[u], labels[v], w(k, cfg.rng)); err != nil {
					return err
				}
				k++
			}
		}

		return nil
	}
}
