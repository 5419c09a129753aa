// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/ordgraph/core"
)

const benchNodes = 1024

// benchGraph returns a graph where every node i has edges to i+1..i+4 (mod benchNodes).
func benchGraph() *core.Graph[int, int] {
	g := core.New[int, int](core.WithNodeCapacity(benchNodes))
	for i := 0; i < benchNodes; i++ {
		g.InsertNode(i)
	}
	for i := 0; i < benchNodes; i++ {
		for d := 1; d <= 4; d++ {
			_, _ = g.InsertEdge(i, (i+d)%benchNodes, d)
		}
	}

	return g
}

// BenchmarkInsertEdge measures inserting parallel edges on one pair.
func BenchmarkInsertEdge(b *testing.B) {
	g := core.New[int, int]()
	g.InsertNodes(0, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.InsertEdge(0, 1, i)
	}
}

// BenchmarkIsConnected measures the single lower-bound probe.
func BenchmarkIsConnected(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.IsConnected(i%benchNodes, (i+2)%benchNodes)
	}
}

// BenchmarkConnections measures a run scan from one lower bound.
func BenchmarkConnections(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Connections(i % benchNodes)
	}
}

// BenchmarkString measures the lockstep rendering walk.
func BenchmarkString(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.String()
	}
}

// BenchmarkClone measures deep copying both registries.
func BenchmarkClone(b *testing.B) {
	g := benchGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
