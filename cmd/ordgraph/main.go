// Command ordgraph loads or builds a graph, applies node edits and prints the
// result as canonical text, YAML or MessagePack.
//
// Usage:
//
//	ordgraph -build cycle:5 -merge 0:1 -out yaml
//	ordgraph -f graph.yaml -erase B -replace A:Z
package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	klog.InitFlags(nil)
	flag.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var opts options
	flag.StringVar(&opts.file, "f", "", "YAML graph document to load")
	flag.StringVar(&opts.build, "build", "", "fixture to build, kind:n (path, cycle, star, complete)")
	flag.StringVar(&opts.merge, "merge", "", "fold node old into node new, old:new")
	flag.StringVar(&opts.replace, "replace", "", "rename node old to new, old:new")
	flag.StringVar(&opts.erase, "erase", "", "node to erase")
	flag.StringVar(&opts.out, "out", outText, "output format: text, yaml or msgpack")
	flag.BoolVar(&opts.strict, "strict", false, "reject document edges with undeclared endpoints")
	flag.Parse()

	err := run(opts, os.Stdout)
	klog.Flush()
	if err != nil {
		klog.Fatalf("ordgraph: %v", err)
	}
}
