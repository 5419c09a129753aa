// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge insertion, erasure (by value, by position, by range) and edge queries.
//
// Determinism:
//   - Weights and Connections are read from a contiguous run of the edge
//     registry and come out in ascending order.
//
// AI-HINT (file):
//   - Range queries take one Ceiling probe and walk forward; they never scan
//     the whole registry.
//   - Erasing by position re-locates the successor by key after the removal,
//     because the tree may move keys between its nodes when it rebalances.

package core

import (
	"iter"

	"github.com/pkg/errors"
)

// endpoints resolves both labels or reports which call failed.
func (g *Graph[N, E]) endpoints(from, to N, msg string) (int, int, error) {
	fi, okFrom := g.slotOf(from)
	ti, okTo := g.slotOf(to)
	if !okFrom || !okTo {
		return 0, 0, errors.WithMessage(ErrEndpointNotFound, msg)
	}

	return fi, ti, nil
}

// InsertEdge adds the edge from→to carrying weight.
//
// Implementation:
//   - Stage 1: Resolve both endpoints (ErrEndpointNotFound).
//   - Stage 2: Insert the key unless an equal (from, to, weight) triple exists.
//
// Behavior highlights:
//   - Parallel edges with distinct weights are allowed.
//   - Self-loops are allowed.
//
// Returns:
//   - bool: true iff a new edge was stored.
//
// Complexity:
//   - Time O(log n + log e), Space O(1).
func (g *Graph[N, E]) InsertEdge(from, to N, weight E) (bool, error) {
	fi, ti, err := g.endpoints(from, to, msgInsertEdge)
	if err != nil {
		return false, err
	}

	return g.putEdge(edgeKey[E]{from: fi, to: ti, weight: weight}), nil
}

// InsertEdges inserts every record, creating missing endpoints on the way,
// and returns how many edges were new.
func (g *Graph[N, E]) InsertEdges(edges ...Edge[N, E]) int {
	var added int
	for _, e := range edges {
		g.InsertNode(e.From)
		g.InsertNode(e.To)
		if ok, _ := g.InsertEdge(e.From, e.To, e.Weight); ok {
			added++
		}
	}

	return added
}

// EraseEdge removes the edge from→to carrying weight.
//
// Returns:
//   - bool: true iff an edge was removed.
//   - error: ErrEndpointNotFound if either endpoint is not a node.
func (g *Graph[N, E]) EraseEdge(from, to N, weight E) (bool, error) {
	fi, ti, err := g.endpoints(from, to, msgEraseEdge)
	if err != nil {
		return false, err
	}
	k := edgeKey[E]{from: fi, to: ti, weight: weight}
	if _, found := g.edges.Get(k); !found {
		return false, nil
	}
	g.dropEdge(k)

	return true, nil
}

// EraseEdgeAt removes the edge at pos and returns the position of the edge
// that followed it, or End. An End position is a no-op returning End.
//
// Complexity:
//   - Time O(log e), Space O(1).
func (g *Graph[N, E]) EraseEdgeAt(pos Iterator[N, E]) Iterator[N, E] {
	if pos.node == nil {
		return g.End()
	}
	k := keyOf[E](pos.node)
	succ := next(pos.node)
	g.dropEdge(k)
	if succ == nil {
		return g.End()
	}

	return g.position(keyOf[E](succ))
}

// EraseEdgeRange removes every edge in [start, stop) and returns the position
// of the edge stop denoted, or End if stop was End.
//
// If start is End or start equals stop nothing is erased and start is returned.
//
// Complexity:
//   - Time O(k·log e) for k erased edges, Space O(k).
func (g *Graph[N, E]) EraseEdgeRange(start, stop Iterator[N, E]) Iterator[N, E] {
	if start.node == nil || start.Equal(stop) {
		return start
	}

	var doomed []edgeKey[E]
	for n := start.node; n != nil && n != stop.node; n = next(n) {
		doomed = append(doomed, keyOf[E](n))
	}
	var stopKey edgeKey[E]
	if stop.node != nil {
		stopKey = keyOf[E](stop.node)
	}

	for _, k := range doomed {
		g.dropEdge(k)
	}
	if stop.node == nil {
		return g.End()
	}

	return g.position(stopKey)
}

// position re-locates a key that is known to be in the registry.
func (g *Graph[N, E]) position(k edgeKey[E]) Iterator[N, E] {
	return Iterator[N, E]{g: g, node: g.lowerBound(k)}
}

// IsConnected reports whether at least one edge src→dst exists, of any weight.
//
// Complexity:
//   - Time O(log n + log e), Space O(1).
func (g *Graph[N, E]) IsConnected(src, dst N) (bool, error) {
	si, di, err := g.endpoints(src, dst, msgIsConnected)
	if err != nil {
		return false, err
	}
	n := g.lowerBound(edgeKey[E]{from: si, to: di, probe: probeWeightMin})
	if n == nil {
		return false, nil
	}
	k := keyOf[E](n)

	return k.from == si && k.to == di, nil
}

// Weights returns the ascending weights of every edge from→to. The result is
// empty (not nil-error) when the nodes exist but are not connected.
//
// Complexity:
//   - Time O(log e + k), Space O(k).
func (g *Graph[N, E]) Weights(from, to N) ([]E, error) {
	fi, ti, err := g.endpoints(from, to, msgWeights)
	if err != nil {
		return nil, err
	}
	var out []E
	for n := g.lowerBound(edgeKey[E]{from: fi, to: ti, probe: probeWeightMin}); n != nil; n = next(n) {
		k := keyOf[E](n)
		if k.from != fi || k.to != ti {
			break
		}
		out = append(out, k.weight)
	}

	return out, nil
}

// Connections returns the distinct destinations of the edges leaving src, in
// ascending order. Parallel edges contribute their destination once.
//
// Complexity:
//   - Time O(log e + k), Space O(k).
func (g *Graph[N, E]) Connections(src N) ([]N, error) {
	si, ok := g.slotOf(src)
	if !ok {
		return nil, errors.WithMessage(ErrEndpointNotFound, msgConnections)
	}
	var out []N
	last := -1
	for n := g.lowerBound(edgeKey[E]{from: si, probe: probeToMin}); n != nil; n = next(n) {
		k := keyOf[E](n)
		if k.from != si {
			break
		}
		if k.to == last {
			continue
		}
		last = k.to
		out = append(out, g.ids.label(k.to))
	}

	return out, nil
}

// Find returns the position of the exact edge from→to carrying weight, or End.
// Unknown labels yield End rather than an error.
//
// Complexity:
//   - Time O(log n + log e), Space O(1).
func (g *Graph[N, E]) Find(from, to N, weight E) Iterator[N, E] {
	fi, okFrom := g.slotOf(from)
	ti, okTo := g.slotOf(to)
	if !okFrom || !okTo {
		return g.End()
	}
	k := edgeKey[E]{from: fi, to: ti, weight: weight}
	n := g.lowerBound(k)
	if n == nil || g.edges.Comparator(k, n.Key) != 0 {
		return g.End()
	}

	return Iterator[N, E]{g: g, node: n}
}

// EdgeCount returns the number of edges.
func (g *Graph[N, E]) EdgeCount() int { return g.edges.Size() }

// All yields every edge in (from, to, weight) order.
//
// The sequence reads the registry lazily; the graph must not be mutated while
// it is being ranged over.
func (g *Graph[N, E]) All() iter.Seq[Edge[N, E]] {
	return func(yield func(Edge[N, E]) bool) {
		for n := g.edges.Left(); n != nil; n = next(n) {
			if !yield(g.edgeView(keyOf[E](n))) {
				return
			}
		}
	}
}
