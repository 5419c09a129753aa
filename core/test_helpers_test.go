// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for ordgraph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep invariant checks in one place so every test can call them after a mutation.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ordgraph/core"
)

// Common node labels used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeE = "E"
	NodeX = "X"
	NodeZ = "Z"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight1 = 1
	Weight2 = 2
	Weight3 = 3
	Weight4 = 4
	Weight7 = 7
)

// StringGraph is the label/weight pairing most tests use.
type StringGraph = core.Graph[string, int]

// newFanGraph RETURNS the fan A→B(1), A→C(2), A→D(3) over nodes A..D.
func newFanGraph(t *testing.T) *StringGraph {
	t.Helper()
	g := core.New[string, int]()
	g.InsertNodes(NodeA, NodeB, NodeC, NodeD)
	mustInsertEdge(t, g, NodeA, NodeB, Weight1)
	mustInsertEdge(t, g, NodeA, NodeC, Weight2)
	mustInsertEdge(t, g, NodeA, NodeD, Weight3)

	return g
}

// mustInsertEdge FAILS the test unless InsertEdge stored a new edge.
func mustInsertEdge[N, E any](t *testing.T, g *core.Graph[N, E], from, to N, w E) {
	t.Helper()
	ok, err := g.InsertEdge(from, to, w)
	require.NoError(t, err)
	require.True(t, ok, "edge %v→%v (%v) should be new", from, to, w)
}

// collect RETURNS every edge in iteration order.
func collect[N, E any](g *core.Graph[N, E]) []core.Edge[N, E] {
	var out []core.Edge[N, E]
	for e := range g.All() {
		out = append(out, e)
	}

	return out
}

// requireSortedInts VERIFIES the (from, to, weight) order of an int-labelled graph
// by walking Begin..End.
func requireSortedInts(t *testing.T, g *core.Graph[int, int]) {
	t.Helper()
	var prev *core.Edge[int, int]
	for it := g.Begin(); !it.IsEnd(); it = it.Next() {
		e := it.Value()
		if prev != nil {
			require.True(t, lessEq(*prev, e), "edges out of order: %v then %v", *prev, e)
		}
		prev = &e
	}
}

func lessEq(a, b core.Edge[int, int]) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	if a.To != b.To {
		return a.To < b.To
	}

	return a.Weight <= b.Weight
}

// requireRefsMatch VERIFIES that every node's reference count equals the
// number of edge endpoints naming it.
func requireRefsMatch[N comparable, E any](t *testing.T, g *core.Graph[N, E]) {
	t.Helper()
	want := make(map[N]int)
	for e := range g.All() {
		want[e.From]++
		want[e.To]++
	}
	for _, n := range g.Nodes() {
		got, ok := g.Refs(n)
		require.True(t, ok)
		require.Equal(t, want[n], got, "refs of %v", n)
	}
}
