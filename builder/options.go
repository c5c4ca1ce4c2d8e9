// SPDX-License-Identifier: MIT
// Package: flowgen/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generation itself never panics.
//   • Determinism is explicit: seeding is done via WithSeed, WithRand or WithSource.

package builder

import (
	"math/rand"
)

// Option customizes generation by mutating a config before sampling begins.
type Option func(*config)

// WithRand provides an explicit *rand.Rand. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSource provides any Source implementation. Panics on nil.
func WithSource(s Source) Option {
	if s == nil {
		panic("builder: WithSource(nil)")
	}
	return func(c *config) {
		c.rng = s
	}
}

// WithSeed creates a new *rand.Rand with the given seed. The same seed and
// arguments yield the same arcs in the same order.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacityFn overrides the per-arc capacity generator. Panics on nil.
func WithCapacityFn(fn CapacityFn) Option {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}
	return func(c *config) {
		c.capacityFn = fn
	}
}

// WithCapacityRange draws capacities uniformly from [min,max].
// Panics under the same conditions as UniformCapacityFn.
func WithCapacityRange(min, max int64) Option {
	return WithCapacityFn(UniformCapacityFn(min, max))
}

// WithMaxCells sets the presence matrix budget in cells. Requests over the
// budget use a pair set; 0 means no budget, so the matrix is always used.
// Panics if n < 0.
func WithMaxCells(n int) Option {
	if n < 0 {
		panic("builder: WithMaxCells(n<0)")
	}
	return func(c *config) {
		c.maxCells = n
	}
}
