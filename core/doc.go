// SPDX-License-Identifier: MIT

// Package core provides Graph, a generic in-memory directed weighted graph
// whose node labels and edge weights are kept in a total order.
//
// A Graph[N, E] holds:
//
//   - a node registry: unique labels of type N, ascending;
//   - an edge registry: (from, to, weight) triples, ascending lexicographically.
//     The same ordered pair may carry several edges as long as the weights
//     differ; such parallel edges are adjacent in edge order. Self-loops are allowed.
//
// Both registries are red-black trees (github.com/emirpasic/gods). Node
// identities live in an arena of slots addressed by index; edges store slot
// indices and a reference count per slot tracks how many edge endpoints point
// at it. A label is therefore stored exactly once, and renaming a node touches
// a single slot.
//
// Ordering:
//
//	New[N, E cmp.Ordered]()            // cmp.Compare for both
//	NewFunc(cmpNode, cmpWeight)        // caller-supplied total orders
//
// Labels or weights "equal" means "compare as 0" under the comparator.
//
// Core Methods:
//
//	// Node lifecycle
//	InsertNode(label) bool                      // O(log n)
//	ReplaceNode(old, new) (bool, error)         // rename, edges follow
//	MergeReplaceNode(old, new) error            // rebind edges of old onto new, dedup
//	EraseNode(label) bool                       // node + incident edges
//
//	// Edge lifecycle
//	InsertEdge(from, to, w) (bool, error)       // O(log n + log e)
//	EraseEdge(from, to, w) (bool, error)
//	EraseEdgeAt(pos) Iterator                   // returns successor
//	EraseEdgeRange(start, stop) Iterator        // [start, stop)
//
//	// Queries
//	IsConnected(src, dst) (bool, error)
//	Weights(from, to) ([]E, error)              // ascending
//	Connections(src) ([]N, error)               // distinct, ascending
//	Find(from, to, w) Iterator                  // End if absent
//
// Errors:
//
// Precondition failures are the only errors: ErrNodeNotFound (ReplaceNode,
// MergeReplaceNode) and ErrEndpointNotFound (edge operations and queries).
// Outcomes such as "already present" or "already absent" are a plain false.
// Validation precedes mutation, so a call that fails leaves the graph as it was.
//
//	if _, err := g.InsertEdge("a", "z", 1); errors.Is(err, core.ErrEndpointNotFound) {
//		// "z" was never inserted
//	}
//
// Iteration:
//
// Begin/End/Find return Iterator positions over the edge registry. Iterator
// values are cheap copies; Value() recomputes the edge from current labels.
// All() offers the same order as an iter.Seq. Any mutation invalidates every
// outstanding position; this is not checked.
//
// Concurrency:
//
// A Graph is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
//
// Rendering:
//
// String and WriteTo produce the canonical text form used by golden tests:
//
//	A (
//	  B | 1
//	)
//	B (
//	)
package core
