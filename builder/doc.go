// Package builder provides deterministic fixture constructors for core.Graph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:  create a graph and run constructors in order.
//     – Into:        run constructors against an existing graph.
//   - Configuration primitives:
//     – BuilderOption: WithSeed, WithRand (RNG for stochastic paths).
//   - Topologies (Constructor implementations, directed):
//     – Path(n)      n ≥ 2, edges i→i+1.
//     – Cycle(n)     n ≥ 3, edges i→(i+1)%n.
//     – Star(n)      n ≥ 2, hub id(0), spokes in both directions.
//     – Complete(n)  n ≥ 1, every ordered pair u≠v.
//     – Random(n,p)  every ordered pair (loops included) with probability p; needs an RNG.
//     – Edges(...)   literal records.
//   - Label schemes (IDFn[N]):
//     – DecimalID ("0","1",…), SymbolID ("A".."Z"), ExcelColumnID ("A".."Z","AA",…),
//     PrefixID(p) (p+"0",…), IntID (0,1,…).
//   - Weight schemes (WeightFn[E]):
//     – ConstantWeight(v), IndexWeight (k+1 for the k-th edge), UniformIntWeight(min,max).
//
// Guarantees:
//
//   - Idempotent re-runs: repeating a constructor on the same graph inserts
//     nothing new, because core.Graph collapses equal nodes and edge triples.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Build-time failures are errors wrapping ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource or ErrConstructFailed.
//
// Example:
//
//	g, err := builder.BuildGraph[string, int](nil, nil,
//		builder.Cycle(5, builder.DecimalID, builder.IndexWeight[int]()),
//	)
package builder
