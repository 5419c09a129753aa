// SPDX-License-Identifier: MIT
// File: methods_nodes.go
// Role: Node lifecycle: insertion, relabeling, merging, erasure and node queries.
//
// Determinism:
//   - Nodes() returns labels in ascending comparator order.
//
// AI-HINT (file):
//   - ReplaceNode keeps the arena slot and its edge records; only the registry
//     keys are re-inserted under the new label.
//   - MergeReplaceNode rebinds slots and then deduplicates; any Iterator held
//     across the call is stale.

package core

import (
	"slices"

	"github.com/pkg/errors"
)

// InsertNode adds label to the node registry if it is not already present.
//
// Returns:
//   - bool: true iff a new node was created.
//
// Complexity:
//   - Time O(log n), Space O(1) amortized.
func (g *Graph[N, E]) InsertNode(label N) bool {
	if _, ok := g.slotOf(label); ok {
		return false
	}
	g.nodes.Put(label, g.ids.acquire(label))

	return true
}

// InsertNodes inserts every label and returns how many were new.
func (g *Graph[N, E]) InsertNodes(labels ...N) int {
	var added int
	for _, label := range labels {
		if g.InsertNode(label) {
			added++
		}
	}

	return added
}

// IsNode reports whether label names a node.
func (g *Graph[N, E]) IsNode(label N) bool {
	_, ok := g.slotOf(label)
	return ok
}

// Empty reports whether the graph has no nodes (and therefore no edges).
func (g *Graph[N, E]) Empty() bool { return g.nodes.Empty() }

// NodeCount returns the number of nodes.
func (g *Graph[N, E]) NodeCount() int { return g.nodes.Size() }

// Nodes returns every node label in ascending order.
//
// Complexity:
//   - Time O(n), Space O(n).
func (g *Graph[N, E]) Nodes() []N {
	out := make([]N, 0, g.nodes.Size())
	it := g.nodes.Iterator()
	for it.Next() {
		out = append(out, it.Key().(N))
	}

	return out
}

// Refs returns how many edge endpoints reference the node identity of label.
// A self-loop contributes two. The second result is false if label is unknown.
func (g *Graph[N, E]) Refs(label N) (int, bool) {
	idx, ok := g.slotOf(label)
	if !ok {
		return 0, false
	}

	return g.ids.slots[idx].refs, true
}

// ReplaceNode renames oldLabel to newLabel, keeping every incident edge.
//
// Implementation:
//   - Stage 1: If newLabel already names a node, report false with no mutation.
//   - Stage 2: Resolve oldLabel (ErrNodeNotFound).
//   - Stage 3: Detach the incident edge keys while they still sort under the old label.
//   - Stage 4: Write newLabel into the arena slot and re-key the node registry.
//   - Stage 5: Re-insert the detached keys; they now sort under newLabel.
//
// Behavior highlights:
//   - The node identity (arena index) is unchanged, so reference counts and
//     edge records are untouched.
//
// Returns:
//   - bool: true iff the node was renamed.
//   - error: ErrNodeNotFound if oldLabel is not a node.
//
// Complexity:
//   - Time O(e + k·log e) where k is the degree of the node, Space O(k).
func (g *Graph[N, E]) ReplaceNode(oldLabel, newLabel N) (bool, error) {
	if g.IsNode(newLabel) {
		return false, nil
	}
	idx, ok := g.slotOf(oldLabel)
	if !ok {
		return false, errors.WithMessage(ErrNodeNotFound, msgReplaceNode)
	}

	keys := g.incident(idx)
	for _, k := range keys {
		g.edges.Remove(k)
	}

	g.nodes.Remove(oldLabel)
	g.ids.relabel(idx, newLabel)
	g.nodes.Put(newLabel, idx)

	for _, k := range keys {
		g.edges.Put(k, struct{}{})
	}

	return true, nil
}

// MergeReplaceNode folds oldLabel into newLabel: every edge touching oldLabel
// is rebound to newLabel, then oldLabel is erased.
//
// Implementation:
//   - Stage 1: Resolve both labels (ErrNodeNotFound); merging a node into itself is a no-op.
//   - Stage 2: Detach the incident edge keys of oldLabel.
//   - Stage 3: Rebind the from and to endpoints individually, moving references.
//   - Stage 4: Sort the rebound keys and stream them back in, skipping
//     consecutive duplicates and keys already present in the registry.
//   - Stage 5: Remove oldLabel and retire its slot.
//
// Behavior highlights:
//   - (A,B,1) merged A→B becomes the self-loop (B,B,1).
//   - Colliding triples collapse to a single edge.
//
// Errors:
//   - ErrNodeNotFound: if either label is not a node.
//
// Complexity:
//   - Time O(e + k·log k + k·log e), Space O(k).
func (g *Graph[N, E]) MergeReplaceNode(oldLabel, newLabel N) error {
	oi, okOld := g.slotOf(oldLabel)
	ni, okNew := g.slotOf(newLabel)
	if !okOld || !okNew {
		return errors.WithMessage(ErrNodeNotFound, msgMergeReplace)
	}
	if oi == ni {
		return nil
	}

	keys := g.incident(oi)
	for i := range keys {
		g.edges.Remove(keys[i])
		if keys[i].from == oi {
			keys[i].from = ni
			g.ids.unref(oi)
			g.ids.ref(ni)
		}
		if keys[i].to == oi {
			keys[i].to = ni
			g.ids.unref(oi)
			g.ids.ref(ni)
		}
	}

	cmpKey := g.edges.Comparator
	slices.SortFunc(keys, func(a, b edgeKey[E]) int { return cmpKey(a, b) })
	for i, k := range keys {
		if i > 0 && cmpKey(keys[i-1], k) == 0 {
			g.ids.unref(k.from)
			g.ids.unref(k.to)
			continue
		}
		if _, found := g.edges.Get(k); found {
			g.ids.unref(k.from)
			g.ids.unref(k.to)
			continue
		}
		g.edges.Put(k, struct{}{})
	}

	g.nodes.Remove(oldLabel)
	g.ids.retire(oi)

	return nil
}

// EraseNode removes label and every edge that starts or ends at it.
//
// Returns:
//   - bool: false if label was not a node.
//
// Complexity:
//   - Time O(e + k·log e), Space O(k).
func (g *Graph[N, E]) EraseNode(label N) bool {
	idx, ok := g.slotOf(label)
	if !ok {
		return false
	}
	for _, k := range g.incident(idx) {
		g.dropEdge(k)
	}
	g.nodes.Remove(label)
	g.ids.retire(idx)

	return true
}
