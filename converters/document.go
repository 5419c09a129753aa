// SPDX-License-Identifier: MIT
// File: document.go
// Role: Document shape, options and the graph <-> document mapping shared by
//       every encoding.

package converters

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/katalvlaran/ordgraph/core"
)

// ErrBadDocument indicates a document that cannot be applied under the
// requested policy (an edge endpoint missing under WithStrictEndpoints).
var ErrBadDocument = errors.New("converters: bad document")

// defaultIndent is the YAML indentation width.
const defaultIndent = 2

// EdgeRecord is one serialized edge.
type EdgeRecord[N, E any] struct {
	From   N `yaml:"from" msgpack:"from"`
	To     N `yaml:"to" msgpack:"to"`
	Weight E `yaml:"weight" msgpack:"weight"`
}

// Document is the serialized form of a graph.
type Document[N, E any] struct {
	Nodes []N                `yaml:"nodes" msgpack:"nodes"`
	Edges []EdgeRecord[N, E] `yaml:"edges,omitempty" msgpack:"edges,omitempty"`
}

type config struct {
	strict bool
	indent int
}

// Option configures import/export.
type Option func(*config)

// WithStrictEndpoints rejects edges whose endpoints are neither listed in the
// document nor present in the target graph.
func WithStrictEndpoints() Option {
	return func(c *config) { c.strict = true }
}

// WithIndent sets the YAML indentation width. Panics if n < 1.
func WithIndent(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("converters: WithIndent(%d): width must be ≥ 1", n))
	}
	return func(c *config) { c.indent = n }
}

func newConfig(opts ...Option) config {
	cfg := config{indent: defaultIndent}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ToDocument captures g as a Document: nodes ascending, edges in (from, to,
// weight) order.
func ToDocument[N, E any](g *core.Graph[N, E]) Document[N, E] {
	doc := Document[N, E]{Nodes: g.Nodes()}
	for e := range g.All() {
		doc.Edges = append(doc.Edges, EdgeRecord[N, E]{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// Apply inserts the nodes and edges of doc into g. On error g is unchanged.
func Apply[N, E any](g *core.Graph[N, E], doc Document[N, E], opts ...Option) error {
	cfg := newConfig(opts...)

	work := g.Clone()
	work.InsertNodes(doc.Nodes...)
	for i, r := range doc.Edges {
		if cfg.strict && (!work.IsNode(r.From) || !work.IsNode(r.To)) {
			return errors.Wrapf(ErrBadDocument, "edge #%d %v→%v: endpoint not declared", i, r.From, r.To)
		}
		work.InsertEdges(core.Edge[N, E]{From: r.From, To: r.To, Weight: r.Weight})
	}
	*g = *work

	return nil
}
