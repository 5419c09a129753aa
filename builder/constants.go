// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// constants.go - method tags for error context and parameter bounds.

package builder

// Method tags used as the first segment of every error message.
const (
	methodBuildGraph = "BuildGraph"
	methodInto       = "Into"
	methodPath       = "Path"
	methodCycle      = "Cycle"
	methodStar       = "Star"
	methodComplete   = "Complete"
	methodRandom     = "Random"
	methodEdges      = "Edges"
)

// Minimum node counts per topology.
const (
	MinPathNodes     = 2
	MinCycleNodes    = 3
	MinStarNodes     = 2
	MinCompleteNodes = 1
	MinRandomNodes   = 1
)

// Probability bounds for Random.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
