package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/ordgraph/builder"
	"github.com/katalvlaran/ordgraph/converters"
	"github.com/katalvlaran/ordgraph/core"
)

// Output formats.
const (
	outText    = "text"
	outYAML    = "yaml"
	outMsgpack = "msgpack"
)

type graph = core.Graph[string, int64]

type options struct {
	file    string
	build   string
	merge   string
	replace string
	erase   string
	out     string
	strict  bool
}

// run loads/builds, edits in the order erase, replace, merge, then writes.
func run(opts options, w io.Writer) error {
	g := core.New[string, int64]()

	if opts.file != "" {
		if err := load(g, opts.file, opts.strict); err != nil {
			return err
		}
		klog.Infof("loaded %s: %d nodes, %d edges", opts.file, g.NodeCount(), g.EdgeCount())
	}
	if opts.build != "" {
		cons, err := parseBuild(opts.build)
		if err != nil {
			return err
		}
		if err = builder.Into(g, nil, cons); err != nil {
			return err
		}
		klog.Infof("built %s", opts.build)
	}

	if opts.erase != "" {
		if !g.EraseNode(opts.erase) {
			klog.Warningf("erase: node %q not present", opts.erase)
		}
	}
	if opts.replace != "" {
		old, repl, err := splitPair("replace", opts.replace)
		if err != nil {
			return err
		}
		ok, err := g.ReplaceNode(old, repl)
		if err != nil {
			return err
		}
		if !ok {
			klog.Warningf("replace: %q already exists, %q kept", repl, old)
		}
	}
	if opts.merge != "" {
		old, into, err := splitPair("merge", opts.merge)
		if err != nil {
			return err
		}
		if err = g.MergeReplaceNode(old, into); err != nil {
			return err
		}
		klog.Infof("merged %s into %s", old, into)
	}

	st := g.Stats()
	klog.V(1).Infof("stats: nodes=%d edges=%d loops=%d isolated=%d", st.NodeCount, st.EdgeCount, st.SelfLoopCount, st.IsolatedCount)

	return write(g, opts.out, w)
}

func load(g *graph, path string, strict bool) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var copts []converters.Option
	if strict {
		copts = append(copts, converters.WithStrictEndpoints())
	}

	return converters.DecodeYAMLInto(f, g, copts...)
}

func write(g *graph, format string, w io.Writer) error {
	switch format {
	case outText:
		_, err := g.WriteTo(w)
		return err
	case outYAML:
		return converters.EncodeYAML(w, g)
	case outMsgpack:
		data, err := converters.MarshalMsgpack(g)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	return fmt.Errorf("unknown output format %q", format)
}

// parseBuild turns "kind:n" into a constructor with decimal labels and
// index weights.
func parseBuild(arg string) (builder.Constructor[string, int64], error) {
	kind, count, err := splitPair("build", arg)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(count)
	if err != nil {
		return nil, errors.Wrapf(err, "build %q: bad size", arg)
	}

	id, w := builder.DecimalID, builder.IndexWeight[int64]()
	switch kind {
	case "path":
		return builder.Path(n, id, w), nil
	case "cycle":
		return builder.Cycle(n, id, w), nil
	case "star":
		return builder.Star(n, id, w), nil
	case "complete":
		return builder.Complete(n, id, w), nil
	}

	return nil, fmt.Errorf("build %q: unknown kind %q", arg, kind)
}

func splitPair(flagName, v string) (string, string, error) {
	a, b, ok := strings.Cut(v, ":")
	if !ok || a == "" || b == "" {
		return "", "", fmt.Errorf("-%s %q: want a:b", flagName, v)
	}

	return a, b, nil
}
