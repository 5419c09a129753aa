// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Into(g, bopts, cons...) runs the same pipeline against a caller-owned graph
//     (for example one built with core.NewFunc and custom comparators).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at build time; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose multiple constructors in BuildGraph to assemble fixtures deterministically.
//   - Use WithSeed(...) to freeze the stochastic path (Random, UniformIntWeight).
//   - Labels come from an IDFn[N]; weights from a WeightFn[E]. Both are plain funcs.

package builder

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/ordgraph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Insert every node before the edges that reference it.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor[N, E any] func(g *core.Graph[N, E], cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph[N, E cmp.Ordered](gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor[N, E]) (*core.Graph[N, E], error) {
	g := core.New[N, E](gopts...)
	if err := apply(methodBuildGraph, g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, err
	}

	return g, nil
}

// Into runs cons against an existing graph. On error g keeps whatever the
// constructors before the failing one inserted.
func Into[N, E any](g *core.Graph[N, E], bopts []BuilderOption, cons ...Constructor[N, E]) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", methodInto, ErrConstructFailed)
	}

	return apply(methodInto, g, newBuilderConfig(bopts...), cons)
}

func apply[N, E any](method string, g *core.Graph[N, E], cfg builderConfig, cons []Constructor[N, E]) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("%s: nil constructor at index %d: %w", method, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}
	}

	return nil
}
