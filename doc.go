// SPDX-License-Identifier: MIT

// Package ordgraph is an in-memory directed multigraph whose nodes and
// weighted edges are kept in sorted order.
//
// The module is organized in three packages and one command:
//
//	core/        Graph, Edge and Iterator: ordered storage, mutation, queries
//	builder/     deterministic and seeded topologies (path, cycle, star, ...)
//	converters/  YAML and MessagePack documents
//	cmd/ordgraph load, build, rewrite and print graphs from the shell
//
// Quick example:
//
//	g := core.New[string, int]()
//	_, err := g.InsertEdge("A", "B", 1) // ErrEndpointNotFound: endpoints must exist
//	g.InsertEdges(core.Edge[string, int]{From: "A", To: "B", Weight: 1})
//	fmt.Print(g)
//	// A (
//	//   B | 1
//	// )
//	// B (
//	// )
package ordgraph
