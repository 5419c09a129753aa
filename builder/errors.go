// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// errors.go - sentinel errors returned (wrapped) by constructors.
// Callers branch with errors.Is; messages carry "<Method>: ..." context.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the topology minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [MinProbability, MaxProbability].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor, nil graph or a failed core insertion.
var ErrConstructFailed = errors.New("builder: construction failed")
