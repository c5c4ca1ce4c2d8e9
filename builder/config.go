// SPDX-License-Identifier: MIT
// Package: flowgen/builder
//
// config.go - internal configuration and defaults.
//
// Design:
//   • config is the single source of truth for all builder knobs.
//   • newConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng        = nil (Generate/WriteInstance seed from wall-clock time;
//                  RandomFlowNetwork requires an explicit source)
//   • capacityFn = DefaultCapacityFn (uniform [1,100])
//   • maxCells   = DefaultMaxCells (pair set above it)

package builder

import (
	"math/rand"
	"time"
)

// Source is the random capability the sampler needs. *rand.Rand satisfies it.
// Intn must return a value in [0,n) for n > 0.
type Source interface {
	Intn(n int) int
}

// config aggregates all knobs. It is passed by VALUE to constructors.
type config struct {
	rng        Source
	capacityFn CapacityFn
	maxCells   int
}

// newConfig constructs a config with defaults and applies all options in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		rng:        nil,
		capacityFn: DefaultCapacityFn,
		maxCells:   DefaultMaxCells,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// sourceOrClock returns the configured source, or a fresh one seeded from
// wall-clock time.
func (c config) sourceOrClock() Source {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
