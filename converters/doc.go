// SPDX-License-Identifier: MIT

// Package converters moves core.Graph values in and out of documents.
//
// A Document lists node labels and (from, to, weight) records. It is the
// exchange shape for two encodings:
//
//   - YAML (gopkg.in/yaml.v3): EncodeYAML / DecodeYAML / DecodeYAMLInto.
//   - MessagePack (github.com/vmihailenco/msgpack/v5): MarshalMsgpack /
//     UnmarshalMsgpack / UnmarshalMsgpackInto.
//
// Export is canonical: nodes ascending, edges in registry order, so equal
// graphs encode to identical bytes.
//
// Import inserts every listed node, then every edge. By default an edge whose
// endpoint is neither listed nor already in the graph creates that endpoint;
// WithStrictEndpoints turns this into ErrBadDocument. Import is all-or-nothing:
// on error the target graph is left as it was.
//
//	var buf bytes.Buffer
//	_ = converters.EncodeYAML(&buf, g)
//	back, err := converters.DecodeYAML[string, int](&buf)
package converters
