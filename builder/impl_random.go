// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// impl_random.go: implementation of Random(n, p) constructor.
//
// Contract:
//   • n ≥ 1 (ErrTooFewVertices), 0 ≤ p ≤ 1 (ErrInvalidProbability),
//     cfg.rng != nil (ErrNeedRandSource).
//   • Visits every ordered pair (u, v), self-loops included, in row-major
//     order and keeps it with probability p.
//   • The RNG is consumed once per pair, then by w for kept edges; a fixed
//     seed therefore yields a fixed graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ordgraph/core"
)

// Random returns a Constructor that builds a G(n, p) digraph with loops.
func Random[N, E any](n int, p float64, id IDFn[N], w WeightFn[E]) Constructor[N, E] {
	return func(g *core.Graph[N, E], cfg builderConfig) error {
		if err := validateMin(methodRandom, n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandom, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}
		if err := validateFns(methodRandom, id, w); err != nil {
			return err
		}

		labels := addNodes(g, n, id)
		k := 0
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandom, g, labels[u], labels[v], w(k, cfg.rng)); err != nil {
					return err
				}
				k++
			}
		}

		return nil
	}
}
