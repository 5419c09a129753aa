// SPDX-License-Identifier: MIT
// File: iterator.go
// Role: Iterator, the bidirectional position over the edge registry.
// Contract:
//   - A position is valid until the next mutation of its graph. Stale positions
//     are not detected.
//   - The zero Iterator is not usable; obtain positions from Begin, End, Find
//     or the EraseEdge* methods.

package core

import "github.com/emirpasic/gods/trees/redblacktree"

// Iterator denotes one edge of a Graph, or the End position one past the last edge.
//
// Iterator is a small value type; Next and Prev return a new position and
// leave the receiver untouched, so both it = it.Next() and old := it work.
type Iterator[N, E any] struct {
	g    *Graph[N, E]
	node *redblacktree.Node // nil at End
}

// Begin returns the position of the first edge, or End if there are none.
func (g *Graph[N, E]) Begin() Iterator[N, E] {
	return Iterator[N, E]{g: g, node: g.edges.Left()}
}

// End returns the one-past-the-last position.
func (g *Graph[N, E]) End() Iterator[N, E] {
	return Iterator[N, E]{g: g}
}

// IsEnd reports whether it is the End position.
func (it Iterator[N, E]) IsEnd() bool { return it.node == nil }

// Equal reports whether it and other denote the same registry position.
// Positions taken through View compare equal to those taken from the graph.
func (it Iterator[N, E]) Equal(other Iterator[N, E]) bool {
	return it.node == other.node && (it.node != nil || it.g == other.g)
}

// Value returns the edge at it, recomputed from the current node labels.
// Panics at End.
func (it Iterator[N, E]) Value() Edge[N, E] {
	if it.node == nil {
		panic("core: Iterator.Value: dereferencing End")
	}

	return it.g.edgeView(keyOf[E](it.node))
}

// Next returns the following position. Next of the last edge is End, and
// Next of End is End.
func (it Iterator[N, E]) Next() Iterator[N, E] {
	return Iterator[N, E]{g: it.g, node: next(it.node)}
}

// Prev returns the preceding position. Prev of End is the last edge, and Prev
// of the first edge is End.
func (it Iterator[N, E]) Prev() Iterator[N, E] {
	if it.node == nil {
		return Iterator[N, E]{g: it.g, node: it.g.edges.Right()}
	}

	return Iterator[N, E]{g: it.g, node: prev(it.node)}
}
