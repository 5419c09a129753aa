// SPDX-License-Identifier: MIT
// File: render.go
// Role: Structural equality and the canonical text form.
// Format (per node, ascending):
//
//	<label> (
//	  <to> | <weight>
//	)
//
// Outgoing edges are listed in (to, weight) order; a node without outgoing
// edges renders an empty frame. An empty graph renders as "".

package core

import (
	"fmt"
	"io"
	"strings"
)

// Equal reports whether g and other hold the same node labels and the same
// (from, to, weight) edges. Labels and weights are compared with g's comparators.
//
// Complexity:
//   - Time O(n+e), Space O(1).
func (g *Graph[N, E]) Equal(other *Graph[N, E]) bool {
	if other == nil {
		return false
	}
	if g == other {
		return true
	}
	if g.nodes.Size() != other.nodes.Size() || g.edges.Size() != other.edges.Size() {
		return false
	}

	for a, b := g.nodes.Left(), other.nodes.Left(); a != nil; a, b = next(a), next(b) {
		if g.cmpNode(a.Key.(N), b.Key.(N)) != 0 {
			return false
		}
	}
	for a, b := g.edges.Left(), other.edges.Left(); a != nil; a, b = next(a), next(b) {
		x, y := g.edgeView(keyOf[E](a)), other.edgeView(keyOf[E](b))
		if g.cmpNode(x.From, y.From) != 0 || g.cmpNode(x.To, y.To) != 0 || g.cmpWeight(x.Weight, y.Weight) != 0 {
			return false
		}
	}

	return true
}

// String returns the canonical text form of g.
func (g *Graph[N, E]) String() string {
	var sb strings.Builder
	g.render(&sb)

	return sb.String()
}

// WriteTo writes the canonical text form of g to w.
func (g *Graph[N, E]) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	g.render(&sb)
	n, err := io.WriteString(w, sb.String())

	return int64(n), err
}

// render walks the node and edge registries in lockstep: both are sorted by
// the source label, so each node's outgoing run starts where the previous one ended.
func (g *Graph[N, E]) render(sb *strings.Builder) {
	nodeLine := g.cfg.nodeFormat + " (\n"
	edgeLine := "  " + g.cfg.nodeFormat + " | " + g.cfg.weightFormat + "\n"

	e := g.edges.Left()
	for n := g.nodes.Left(); n != nil; n = next(n) {
		idx := n.Value.(int)
		fmt.Fprintf(sb, nodeLine, n.Key)
		for ; e != nil; e = next(e) {
			k := keyOf[E](e)
			if k.from != idx {
				break
			}
			fmt.Fprintf(sb, edgeLine, g.ids.label(k.to), k.weight)
		}
		sb.WriteString(")\n")
	}
}
