// SPDX-License-Identifier: MIT
// File: options.go
// Role: Construction-time configuration (functional options).
// Policy:
//   - Options are applied left-to-right; later options override earlier ones.
//   - Option constructors validate their input and panic on meaningless values.
//     Graph methods themselves never panic on user input.
//   - Configuration is immutable after construction and survives Clear/Clone/Move.

package core

import (
	"fmt"
	"strings"
)

// Rendering defaults: labels and weights are printed with %v.
const (
	defaultNodeFormat   = "%v"
	defaultWeightFormat = "%v"
)

// graphConfig aggregates every knob a Graph reads after construction.
type graphConfig struct {
	nodeCapacity int    // arena pre-allocation hint
	nodeFormat   string // fmt verb for node labels in String/WriteTo
	weightFormat string // fmt verb for edge weights in String/WriteTo
}

// GraphOption configures a Graph before creation.
type GraphOption func(cfg *graphConfig)

// newGraphConfig resolves options over deterministic defaults.
func newGraphConfig(opts ...GraphOption) graphConfig {
	cfg := graphConfig{
		nodeFormat:   defaultNodeFormat,
		weightFormat: defaultWeightFormat,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithNodeCapacity pre-allocates room for n node identities.
// Panics if n < 0.
func WithNodeCapacity(n int) GraphOption {
	if n < 0 {
		panic(fmt.Sprintf("core: WithNodeCapacity(%d): capacity must be >= 0", n))
	}
	return func(cfg *graphConfig) { cfg.nodeCapacity = n }
}

// WithNodeFormat sets the fmt verb used to render node labels, e.g. "%c" for
// rune labels or "%q" for quoted strings.
// Panics if verb does not contain a formatting directive.
func WithNodeFormat(verb string) GraphOption {
	mustVerb("WithNodeFormat", verb)
	return func(cfg *graphConfig) { cfg.nodeFormat = verb }
}

// WithWeightFormat sets the fmt verb used to render edge weights, e.g. "%.2f".
// Panics if verb does not contain a formatting directive.
func WithWeightFormat(verb string) GraphOption {
	mustVerb("WithWeightFormat", verb)
	return func(cfg *graphConfig) { cfg.weightFormat = verb }
}

func mustVerb(option, verb string) {
	if !strings.Contains(verb, "%") {
		panic(fmt.Sprintf("core: %s(%q): not a fmt verb", option, verb))
	}
}
