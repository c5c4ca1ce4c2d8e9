// Package builder provides capacity distributions for generated arcs.
package builder

import (
	"fmt"
)

// CapacityFn produces an arc capacity from the sampler's Source. It must
// draw from rng only, so a seeded run stays reproducible.
type CapacityFn func(rng Source) int64

// DefaultCapacityFn draws uniformly from [DefaultMinCapacity, DefaultMaxCapacity].
// It consumes exactly one Intn draw per arc.
func DefaultCapacityFn(rng Source) int64 {
	return DefaultMinCapacity + int64(rng.Intn(int(DefaultMaxCapacity-DefaultMinCapacity+1)))
}

// ConstantCapacityFn returns a CapacityFn that always yields value and draws
// nothing. Panics if value < 0.
func ConstantCapacityFn(value int64) CapacityFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCapacityFn: value must be ≥ 0, got %d", value))
	}

	return func(Source) int64 {
		return value
	}
}

// UniformCapacityFn returns a CapacityFn sampling uniformly in [min,max].
// Panics if min < 0, max < min, or the span does not fit in an int.
func UniformCapacityFn(min, max int64) CapacityFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCapacityFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1
	if span <= 0 || int64(int(span)) != span {
		panic(fmt.Sprintf("UniformCapacityFn: span [%d,%d] too wide", min, max))
	}
	if span == 1 {
		return ConstantCapacityFn(min)
	}

	return func(rng Source) int64 {
		return min + int64(rng.Intn(int(span)))
	}
}
