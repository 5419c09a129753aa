// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub is id(0); leaves are id(1..n-1).
//   • For each leaf i (ascending) emits hub → leaf then leaf → hub, so the
//     k-th emitted edge has weight w(k, rng) with k = 2(i-1) and 2(i-1)+1.
//
// Complexity:
//   • Time: O(n·log n); Space: O(n).

package builder

import "github.com/katalvlaran/ordgraph/core"

// Star returns a Constructor that builds a bidirectional star on n nodes.
func Star[N, E any](n int, id IDFn[N], w WeightFn[E]) Constructor[N, E] {
	return func(g *core.Graph[N, E], cfg builderConfig) error {
		if err := validateMin(methodStar, n, MinStarNodes); err != nil {
			return err
		}
		if err := validateFns(methodStar, id, w); err != nil {
			return err
		}

		labels := addNodes(g, n, id)
		hub := labels[0]
		k := 0
		for _, leaf := range labels[1:] {
			if err := addEdge(methodStar, g, hub, leaf, w(k, cfg.rng)); err != nil {
				return err
			}
			if err := addEdge(methodStar, g, leaf, hub, w(k+1, cfg.rng)); err != nil {
				return err
			}
			k += 2
		}

		return nil
	}
}
