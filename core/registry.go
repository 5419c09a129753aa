// SPDX-License-Identifier: MIT
// File: registry.go
// Role: Ordered registries on top of gods red-black trees: comparators,
//       lower-bound probes and in-order stepping.
// Determinism:
//   - Edge order is (from label, to label, weight) ascending, resolved through
//     the arena at comparison time.
// AI-HINT (file):
//   - Every key in the edge tree must compare consistently with the current
//     labels. Code that changes a label or rebinds an endpoint removes the
//     affected keys first and re-inserts them afterwards.

package core

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// probe marks a search key that stands for "smallest possible" in a field.
type probe uint8

const (
	probeNone      probe = iota // exact key
	probeWeightMin              // (from, to, -inf)
	probeToMin                  // (from, -inf, -inf)
)

// edgeKey is the stored form of an edge: two arena indices and a weight.
type edgeKey[E any] struct {
	from, to int
	weight   E
	probe    probe
}

func nodeComparator[N any](cmpNode func(a, b N) int) utils.Comparator {
	return func(a, b interface{}) int {
		return cmpNode(a.(N), b.(N))
	}
}

// edgeComparator orders edge keys lexicographically by labels then weight.
// A probe sorts before every real key sharing its prefix, so Ceiling(probe)
// is the lower bound of that prefix run.
func edgeComparator[N, E any](ids *arena[N], cmpNode func(a, b N) int, cmpWeight func(a, b E) int) utils.Comparator {
	return func(a, b interface{}) int {
		x, y := a.(edgeKey[E]), b.(edgeKey[E])
		if x.from != y.from {
			if c := cmpNode(ids.label(x.from), ids.label(y.from)); c != 0 {
				return c
			}
		}
		if c, done := probeOrder(x.probe, y.probe, probeToMin); done {
			return c
		}
		if x.to != y.to {
			if c := cmpNode(ids.label(x.to), ids.label(y.to)); c != 0 {
				return c
			}
		}
		if c, done := probeOrder(x.probe, y.probe, probeWeightMin); done {
			return c
		}

		return cmpWeight(x.weight, y.weight)
	}
}

// probeOrder settles a comparison when either side is a probe at level p.
func probeOrder(x, y, p probe) (int, bool) {
	xp, yp := x >= p, y >= p
	switch {
	case xp && yp:
		return 0, true
	case xp:
		return -1, true
	case yp:
		return 1, true
	}

	return 0, false
}

// next returns the in-order successor of n, or nil past the last node.
func next(n *redblacktree.Node) *redblacktree.Node {
	if n == nil {
		return nil
	}
	if n.Right != nil {
		n = n.Right
		for n.Left != nil {
			n = n.Left
		}
		return n
	}
	p := n.Parent
	for p != nil && n == p.Right {
		n, p = p, p.Parent
	}

	return p
}

// prev returns the in-order predecessor of n, or nil before the first node.
func prev(n *redblacktree.Node) *redblacktree.Node {
	if n == nil {
		return nil
	}
	if n.Left != nil {
		n = n.Left
		for n.Right != nil {
			n = n.Right
		}
		return n
	}
	p := n.Parent
	for p != nil && n == p.Left {
		n, p = p, p.Parent
	}

	return p
}

// slotOf resolves a label to its arena index.
func (g *Graph[N, E]) slotOf(label N) (int, bool) {
	v, ok := g.nodes.Get(label)
	if !ok {
		return 0, false
	}

	return v.(int), true
}

// lowerBound returns the first edge node not less than k, or nil.
func (g *Graph[N, E]) lowerBound(k edgeKey[E]) *redblacktree.Node {
	n, _ := g.edges.Ceiling(k)
	return n
}

func keyOf[E any](n *redblacktree.Node) edgeKey[E] {
	return n.Key.(edgeKey[E])
}

// putEdge inserts k and takes its endpoint references. It reports false if an
// equal key is already present.
func (g *Graph[N, E]) putEdge(k edgeKey[E]) bool {
	k.probe = probeNone
	if _, found := g.edges.Get(k); found {
		return false
	}
	g.edges.Put(k, struct{}{})
	g.ids.ref(k.from)
	g.ids.ref(k.to)

	return true
}

// dropEdge removes k and releases its endpoint references.
func (g *Graph[N, E]) dropEdge(k edgeKey[E]) {
	g.edges.Remove(k)
	g.ids.unref(k.from)
	g.ids.unref(k.to)
}

// incident collects, in edge order, every key with an endpoint at idx.
func (g *Graph[N, E]) incident(idx int) []edgeKey[E] {
	var keys []edgeKey[E]
	it := g.edges.Iterator()
	for it.Next() {
		k := it.Key().(edgeKey[E])
		if k.from == idx || k.to == idx {
			keys = append(keys, k)
		}
	}

	return keys
}

// edgeView materializes the value view of k from current labels.
func (g *Graph[N, E]) edgeView(k edgeKey[E]) Edge[N, E] {
	return Edge[N, E]{From: g.ids.label(k.from), To: g.ids.label(k.to), Weight: k.weight}
}
