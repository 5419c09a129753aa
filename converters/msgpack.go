// SPDX-License-Identifier: MIT
// File: msgpack.go
// Role: MessagePack codec for graph documents (vmihailenco/msgpack/v5).

package converters

import (
	"cmp"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/ordgraph/core"
)

// MarshalMsgpack encodes g as a MessagePack document.
func MarshalMsgpack[N, E any](g *core.Graph[N, E]) ([]byte, error) {
	data, err := msgpack.Marshal(ToDocument(g))
	if err != nil {
		return nil, errors.Wrap(err, "converters: encode msgpack")
	}

	return data, nil
}

// UnmarshalMsgpack decodes data into a new graph ordered by cmp.Compare.
func UnmarshalMsgpack[N, E cmp.Ordered](data []byte, opts ...Option) (*core.Graph[N, E], error) {
	g := core.New[N, E]()
	if err := UnmarshalMsgpackInto(data, g, opts...); err != nil {
		return nil, err
	}

	return g, nil
}

// UnmarshalMsgpackInto decodes data and applies it to g.
func UnmarshalMsgpackInto[N, E any](data []byte, g *core.Graph[N, E], opts ...Option) error {
	var doc Document[N, E]
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "converters: decode msgpack")
	}

	return Apply(g, doc, opts...)
}
