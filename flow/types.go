package flow

import (
	"context"
	"errors"
	"fmt"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")

// ErrNilGraph is returned when the input graph is nil.
var ErrNilGraph = errors.New("flow: graph is nil")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation and the zerolog logger used when Verbose is set.
//   - Epsilon: treat aggregated capacities ≤ Epsilon as zero (default 0).
//   - Verbose: log each augmentation at trace level via zerolog.Ctx(Ctx).
//   - LevelRebuildInterval: for Dinic, rebuild the level graph every N
//     augmentations (0 = only when the blocking flow is exhausted).
type FlowOptions struct {
	Ctx                  context.Context
	Epsilon              int64
	Verbose              bool
	LevelRebuildInterval int
}

// DefaultOptions returns production-safe defaults: background context,
// Epsilon 0, no verbose logging, no forced level rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:                  context.Background(),
		Epsilon:              0,
		Verbose:              false,
		LevelRebuildInterval: 0,
	}
}

// normalize fills in a nil Ctx and clamps negative knobs.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon < 0 {
		o.Epsilon = 0
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}
