// SPDX-License-Identifier: MIT
// Package: ordgraph/builder
//
// weight_fn.go - edge weight schemes. A WeightFn receives the 0-based
// emission index of the edge within its constructor and the configured RNG
// (nil unless WithSeed/WithRand was given).

package builder

import (
	"fmt"
	"math/rand"
)

// Number is the set of weight types the numeric schemes can produce.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// WeightFn produces the weight of the k-th emitted edge.
type WeightFn[E any] func(k int, rng *rand.Rand) E

// ConstantWeight gives every edge the same weight.
func ConstantWeight[E any](value E) WeightFn[E] {
	return func(int, *rand.Rand) E { return value }
}

// IndexWeight gives the k-th edge weight k+1, so every edge of one
// constructor call is distinct.
func IndexWeight[E Number]() WeightFn[E] {
	return func(k int, _ *rand.Rand) E { return E(k + 1) }
}

// UniformIntWeight draws integers uniformly from [min, max]. Without an RNG it
// returns min. Panics if max < min.
func UniformIntWeight[E Number](min, max int) WeightFn[E] {
	if max < min {
		panic(fmt.Sprintf("UniformIntWeight: require min ≤ max, got min=%d, max=%d", min, max))
	}
	return func(_ int, rng *rand.Rand) E {
		if rng == nil || max == min {
			return E(min)
		}
		return E(min + rng.Intn(max-min+1))
	}
}
