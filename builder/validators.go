// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// validators.go - parameter checks shared by constructors. Each returns a
// "<Method>: ..." error wrapping the matching sentinel.

package builder

import "fmt"

// validateMin ensures that got ≥ min.
//
// Complexity: O(1) time and space.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability].
func validateProbability(method string, p float64) error {
	if p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%g not in [%.1f,%.1f]: %w", method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateFns rejects nil label or weight generators.
func validateFns[N, E any](method string, id IDFn[N], w WeightFn[E]) error {
	if id == nil || w == nil {
		return fmt.Errorf("%s: nil IDFn or WeightFn: %w", method, ErrConstructFailed)
	}

	return nil
}
