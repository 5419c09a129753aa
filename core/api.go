// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade: bulk constructors, the read-only Reader view and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents its complexity.
// AI-HINT (file):
//   - Hand View() to code that must not mutate the graph; its positions
//     compare equal to the graph's own.
//   - Stats() is an O(n+e) snapshot; rely on it for quick assertions/diagnostics.

package core

import (
	"cmp"
	"io"
	"iter"
)

// FromNodes builds a graph holding the given labels and no edges.
// Duplicate labels are collapsed.
//
// Complexity:
//   - Time O(k·log k) for k labels.
func FromNodes[N, E cmp.Ordered](labels []N, opts ...GraphOption) *Graph[N, E] {
	g := New[N, E](opts...)
	g.InsertNodes(labels...)

	return g
}

// FromEdges builds a graph from edge records, creating every endpoint on first
// sight. Duplicate (from, to, weight) records are collapsed.
//
// Complexity:
//   - Time O(k·(log n + log e)) for k records.
func FromEdges[N, E cmp.Ordered](edges []Edge[N, E], opts ...GraphOption) *Graph[N, E] {
	g := New[N, E](opts...)
	g.InsertEdges(edges...)

	return g
}

// Reader is the read-only surface of a Graph.
type Reader[N, E any] interface {
	IsNode(label N) bool
	Empty() bool
	NodeCount() int
	EdgeCount() int
	Nodes() []N
	Refs(label N) (int, bool)
	IsConnected(src, dst N) (bool, error)
	Weights(from, to N) ([]E, error)
	Connections(src N) ([]N, error)
	Find(from, to N, weight E) Iterator[N, E]
	Begin() Iterator[N, E]
	End() Iterator[N, E]
	All() iter.Seq[Edge[N, E]]
	Equal(other *Graph[N, E]) bool
	Stats() *GraphStats
	String() string
	WriteTo(w io.Writer) (int64, error)
}

var _ Reader[string, int] = (*Graph[string, int])(nil)

// View returns g behind the read-only Reader interface.
func (g *Graph[N, E]) View() Reader[N, E] { return g }

// Stats returns a snapshot of registry sizes.
//
// Returns:
//   - *GraphStats: immutable-by-convention snapshot.
//
// Complexity:
//   - Time O(n+e), Space O(1) plus the returned struct.
func (g *Graph[N, E]) Stats() *GraphStats {
	stats := GraphStats{
		NodeCount: g.nodes.Size(),
		EdgeCount: g.edges.Size(),
		FreeSlots: len(g.ids.free),
	}

	it := g.edges.Iterator()
	for it.Next() {
		if k := it.Key().(edgeKey[E]); k.from == k.to {
			stats.SelfLoopCount++
		}
	}
	nit := g.nodes.Iterator()
	for nit.Next() {
		if g.ids.slots[nit.Value().(int)].refs == 0 {
			stats.IsolatedCount++
		}
	}

	return &stats
}
