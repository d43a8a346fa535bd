package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every arc when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an arc weight from an optional random source.
// For a given seed the sequence of weights must be deterministic.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is negative or NaN.
func ConstantWeightFn(value float64) WeightFn {
	if !(value >= 0) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [min, max). With a nil rng it yields
// min so builds without a seed stay deterministic.
// Panics unless 0 ≤ min ≤ max.
//
// Complexity: O(1).
func UniformWeightFn(min, max float64) WeightFn {
	if !(min >= 0) || !(max >= min) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn samples integers uniformly in [min, max] and returns them as
// float64. Sums of such weights are exact, which makes distance comparisons
// in tests independent of summation order.
// Panics unless 0 ≤ min ≤ max.
func IntWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}
