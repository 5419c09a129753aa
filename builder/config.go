// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// config.go - resolved builder configuration and shared insertion helpers.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/ordgraph/core"
)

// builderConfig holds everything constructors read after option resolution.
// Label and weight schemes are constructor arguments, not configuration,
// because their types follow the graph's N and E.
type builderConfig struct {
	rng *rand.Rand // nil unless WithSeed/WithRand was given
}

// newBuilderConfig applies opts left-to-right over the zero configuration.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addNodes inserts id(0..n-1) and returns the labels in index order.
func addNodes[N, E any](g *core.Graph[N, E], n int, id IDFn[N]) []N {
	labels := make([]N, n)
	for i := 0; i < n; i++ {
		labels[i] = id(i)
		g.InsertNode(labels[i])
	}

	return labels
}

// addEdge inserts u→v; a repeated triple is accepted silently so constructors
// compose over a populated graph.
func addEdge[N, E any](method string, g *core.Graph[N, E], u, v N, w E) error {
	if _, err := g.InsertEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: InsertEdge(%v→%v, w=%v): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
