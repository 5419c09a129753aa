// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph, Edge and the internal identity/registry types; NewFunc/New constructors.
// Determinism:
//   - Node labels and edges are kept in their natural order at all times;
//     every enumeration (Nodes, All, Begin..End, String) is sorted.
// Concurrency:
//   - None. A Graph is a single-threaded container; mutating calls invalidate
//     all outstanding positions (Iterator values).

package core

import (
	"cmp"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Edge is the value view of one directed, weighted edge.
//
// Edges handed out by the Graph are computed on demand from the current node
// labels; they are copies and never alias registry state.
type Edge[N, E any] struct {
	// From is the source node label.
	From N

	// To is the destination node label.
	To N

	// Weight is the value attached to the edge. It is not assumed numeric.
	Weight E
}

// Graph is a directed, weighted graph whose node labels N and edge weights E
// are totally ordered by caller-supplied comparators.
//
// The same ordered pair (from, to) may carry several edges as long as their
// weights differ; such parallel edges form a contiguous run in edge order.
// Self-loops are permitted.
//
// Layout:
//   - ids:   arena of node identities; edges hold arena indices, never labels.
//   - nodes: ordered registry label -> arena index.
//   - edges: ordered registry of edgeKey, sorted by (from label, to label, weight).
//
// The zero value is not usable; construct with New, NewFunc, FromNodes or FromEdges.
type Graph[N, E any] struct {
	cfg graphConfig

	cmpNode   func(a, b N) int
	cmpWeight func(a, b E) int

	ids   *arena[N]
	nodes *redblacktree.Tree // N -> int (arena index)
	edges *redblacktree.Tree // edgeKey[E] -> struct{}
}

// NewFunc creates an empty Graph ordered by the given comparators. Each
// comparator must define a strict total order: negative when a < b, zero when
// a == b, positive when a > b. Label and weight equality is "compares as 0".
//
// Panics if either comparator is nil.
//
// Complexity: O(1) plus the WithNodeCapacity hint.
func NewFunc[N, E any](cmpNode func(a, b N) int, cmpWeight func(a, b E) int, opts ...GraphOption) *Graph[N, E] {
	if cmpNode == nil || cmpWeight == nil {
		panic("core: NewFunc: nil comparator")
	}
	g := &Graph[N, E]{
		cfg:       newGraphConfig(opts...),
		cmpNode:   cmpNode,
		cmpWeight: cmpWeight,
	}
	g.reset()

	return g
}

// New creates an empty Graph over cmp.Ordered labels and weights, ordered by
// cmp.Compare.
func New[N, E cmp.Ordered](opts ...GraphOption) *Graph[N, E] {
	return NewFunc[N, E](cmp.Compare[N], cmp.Compare[E], opts...)
}

// reset installs a fresh arena and fresh registries bound to it.
// Configuration and comparators are kept.
func (g *Graph[N, E]) reset() {
	g.ids = newArena[N](g.cfg.nodeCapacity)
	g.nodes = redblacktree.NewWith(nodeComparator(g.cmpNode))
	g.edges = redblacktree.NewWith(edgeComparator(g.ids, g.cmpNode, g.cmpWeight))
}

// GraphStats is a read-only snapshot of registry sizes.
type GraphStats struct {
	NodeCount     int // live node identities
	EdgeCount     int // edges in the registry
	SelfLoopCount int // edges with From == To
	IsolatedCount int // nodes with no incident edge
	FreeSlots     int // recycled identity slots awaiting reuse
}
