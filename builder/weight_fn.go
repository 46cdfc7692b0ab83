// Package builder: weight and observable generators for graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces a ×4 edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) uint32

// ObservableFn produces the observable mask carried by an edge.
type ObservableFn func(rng *rand.Rand) uint64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) uint32 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields w.
func ConstantWeightFn(w uint32) WeightFn {
	return func(_ *rand.Rand) uint32 {
		return w
	}
}

// UniformWeightFn returns a WeightFn sampling multiples of 4 uniformly in
// [min, max]. Panics if max < min or the range holds no multiple of 4.
// If rng is nil, yields DefaultEdgeWeight.
// Complexity: O(1).
func UniformWeightFn(min, max uint32) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	lo := (uint64(min) + 3) / 4
	hi := uint64(max) / 4
	if hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: no multiple of 4 in [%d,%d]", min, max))
	}
	span := int64(hi - lo + 1)

	return func(rng *rand.Rand) uint32 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		return uint32((lo + uint64(rng.Int63n(span))) * 4)
	}
}

// NoObservables marks no logical observable on any edge.
func NoObservables(_ *rand.Rand) uint64 { return 0 }

// RandomObservables returns an ObservableFn drawing a uniform mask over the
// low bits bits. Panics unless 1 ≤ bits ≤ 64. A nil rng yields 0.
func RandomObservables(bits int) ObservableFn {
	if bits < 1 || bits > 64 {
		panic(fmt.Sprintf("RandomObservables: bits must be in [1,64], got %d", bits))
	}
	mask := ^uint64(0) >> (64 - bits)

	return func(rng *rand.Rand) uint64 {
		if rng == nil {
			return 0
		}
		return rng.Uint64() & mask
	}
}
