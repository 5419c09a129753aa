// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Copying, moving and clearing graph instances.
// Determinism:
//   - Clone copies the arena slot-for-slot, so the clone's edge keys and free
//     list are identical to the source's and later inserts reuse slots in the
//     same order.
// AI-HINT (file):
//   - Move hands the storage to a new Graph and leaves the receiver empty but usable.
//   - Clear() preserves options and comparators but resets both registries and the arena.

package core

import "github.com/emirpasic/gods/trees/redblacktree"

// Clone returns a deep copy of g. The copy shares no storage with g, so a
// mutation on either side is never observed by the other.
//
// Complexity: O((n+e)·log(n+e)) to rebuild both registries.
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	c := &Graph[N, E]{
		cfg:       g.cfg,
		cmpNode:   g.cmpNode,
		cmpWeight: g.cmpWeight,
		ids:       g.ids.clone(),
	}
	c.nodes = redblacktree.NewWith(g.nodes.Comparator)
	c.edges = redblacktree.NewWith(edgeComparator(c.ids, c.cmpNode, c.cmpWeight))

	nit := g.nodes.Iterator()
	for nit.Next() {
		c.nodes.Put(nit.Key(), nit.Value())
	}
	eit := g.edges.Iterator()
	for eit.Next() {
		c.edges.Put(eit.Key(), struct{}{})
	}

	return c
}

// Move transfers the contents of g into a new Graph and leaves g empty.
// Positions taken from g before the call are invalid afterwards.
//
// Complexity: O(1) plus the WithNodeCapacity hint for g's new arena.
func (g *Graph[N, E]) Move() *Graph[N, E] {
	// The edge comparator closes over the arena, not over g, so both trees
	// stay consistent once they belong to m.
	m := &Graph[N, E]{
		cfg:       g.cfg,
		cmpNode:   g.cmpNode,
		cmpWeight: g.cmpWeight,
		ids:       g.ids,
		nodes:     g.nodes,
		edges:     g.edges,
	}
	g.reset()

	return m
}

// Clear removes every node and edge. Options and comparators are kept.
func (g *Graph[N, E]) Clear() {
	g.reset()
}
