// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// impl_cycle.go: implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds nodes id(0..n-1) in ascending index order.
//   • Emits edges in stable order id(i) → id((i+1)%n) for i=0..n-1, weight w(i, rng).
//
// Determinism:
//   • Deterministic labels via id; deterministic weights given a fixed seed.

package builder

import "github.com/katalvlaran/ordgraph/core"

// Cycle returns a Constructor that builds the directed cycle C_n.
func Cycle[N, E any](n int, id IDFn[N], w WeightFn[E]) Constructor[N, E] {
	return func(g *core.Graph[N, E], cfg builderConfig) error {
		if err := validateMin(methodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		if err := validateFns(methodCycle, id, w); err != nil {
			return err
		}

		labels := addNodes(g, n, id)
		for i := 0; i < n; i++ {
			// i == n-1 closes the ring back to 0
			if err := addEdge(methodCycle, g, labels[i], labels[(i+1)%n], w(i, cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
