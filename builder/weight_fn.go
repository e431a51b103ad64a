package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no generator or RNG is available.
const DefaultEdgeWeight int64 = 1

// WeightFn produces one edge weight. rng may be nil for deterministic generators.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Negative values are allowed.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from the closed range [min, max].
// With a nil rng it returns min. Panics if max < min (option-time programmer error).
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
