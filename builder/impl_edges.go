// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// impl_edges.go: Edges(records...) constructor: literal edge lists.
//
// Contract:
//   • Endpoints are inserted on first sight, then the edge.
//   • Records are applied in the given order; repeated triples collapse.

package builder

import "github.com/katalvlaran/ordgraph/core"

// Edges returns a Constructor that inserts the given records verbatim.
func Edges[N, E any](records ...core.Edge[N, E]) Constructor[N, E] {
	return func(g *core.Graph[N, E], _ builderConfig) error {
		for _, e := range records {
			g.InsertNode(e.From)
			g.InsertNode(e.To)
			if err := addEdge(methodEdges, g, e.From, e.To, e.Weight); err != nil {
				return err
			}
		}

		return nil
	}
}
