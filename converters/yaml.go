// SPDX-License-Identifier: MIT
// File: yaml.go
// Role: YAML codec for graph documents (gopkg.in/yaml.v3).

package converters

import (
	"cmp"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ordgraph/core"
)

// EncodeYAML writes g to w as a YAML document.
func EncodeYAML[N, E any](w io.Writer, g *core.Graph[N, E], opts ...Option) error {
	cfg := newConfig(opts...)
	doc := ToDocument(g)

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(cfg.indent)
	if err := encoder.Encode(&doc); err != nil {
		return errors.Wrap(err, "converters: encode yaml")
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrap(err, "converters: flush yaml")
	}

	return nil
}

// DecodeYAML reads one YAML document from r into a new graph ordered by
// cmp.Compare. Empty input yields an empty graph.
func DecodeYAML[N, E cmp.Ordered](r io.Reader, opts ...Option) (*core.Graph[N, E], error) {
	g := core.New[N, E]()
	if err := DecodeYAMLInto(r, g, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

// DecodeYAMLInto reads one YAML document from r and applies it to g.
func DecodeYAMLInto[N, E any](r io.Reader, g *core.Graph[N, E], opts ...Option) error {
	var doc Document[N, E]
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "converters: decode yaml")
	}

	return Apply(g, doc, opts...)
}
