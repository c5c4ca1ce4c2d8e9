// SPDX-License-Identifier: MIT
// Package: flowgen/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - Generate streams arcs to a callback; WriteInstance streams a complete
//     DIMACS fixture to an io.Writer; BuildGraph runs Constructors against a
//     fresh core.Graph.
//   - Functional options (Option) resolve into an immutable config.
//   - Every validation (sizes, arc bound, allocation) happens before the first
//     byte or arc is produced.
//   - Determinism: same options/seed and arguments ⇒ identical arcs.

package builder

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/flowgen/core"
	"github.com/katalvlaran/flowgen/dimacs"
)

// Generate samples `arcs` unique directed arcs over nodes 1..nodes and calls
// emit once per accepted arc, in acceptance order.
//
// Without WithSeed/WithRand/WithSource the source is seeded from wall-clock
// time. Errors from emit are wrapped and returned; the Stats reflect the
// work done so far. Debug statistics go to the zerolog logger in ctx.
//
// Errors: ErrTooFewVertices, ErrNegativeArcs, ErrTooManyArcs, ErrAllocation,
// ctx.Err(), or the wrapped emit error.
//
// Complexity: O(nodes²) space for the presence matrix, or O(arcs) for the
// pair set used above the cell budget; expected
// O(arcs · M/(M-arcs)) draws where M = nodes*(nodes-1).
func Generate(ctx context.Context, nodes, arcs int, emit func(dimacs.Arc) error, opts ...Option) (Stats, error) {
	cfg := newConfig(opts...)
	s, err := newSampler(MethodGenerate, nodes, arcs, cfg.sourceOrClock(), cfg)
	if err != nil {
		return Stats{}, err
	}
	if err = s.run(ctx, arcs, emit); err != nil {
		return s.stats, fmt.Errorf("%s: %w", MethodGenerate, err)
	}
	logStats(ctx, MethodGenerate, nodes, s.stats)

	return s.stats, nil
}

// WriteInstance writes a complete fixture to w:
//
//	p max <nodes> <arcs>
//	n 1 s
//	n <nodes> t
//	a <u> <v> <capacity>   (arcs times)
//
// Request validation and the presence matrix allocation happen before any
// output, so a failing call writes nothing.
func WriteInstance(ctx context.Context, w io.Writer, nodes, arcs int, opts ...Option) (Stats, error) {
	cfg := newConfig(opts...)
	s, err := newSampler(MethodWriteInstance, nodes, arcs, cfg.sourceOrClock(), cfg)
	if err != nil {
		return Stats{}, err
	}

	dw := dimacs.NewWriter(w)
	if err = dw.WriteProblem(nodes, arcs); err != nil {
		return Stats{}, fmt.Errorf("%s: header: %w", MethodWriteInstance, err)
	}
	if err = dw.WriteTerminals(nodes); err != nil {
		return Stats{}, fmt.Errorf("%s: terminals: %w", MethodWriteInstance, err)
	}
	if err = s.run(ctx, arcs, dw.WriteArc); err != nil {
		return s.stats, fmt.Errorf("%s: %w", MethodWriteInstance, err)
	}
	if err = dw.Flush(); err != nil {
		return s.stats, fmt.Errorf("%s: flush: %w", MethodWriteInstance, err)
	}
	logStats(ctx, MethodWriteInstance, nodes, s.stats)

	return s.stats, nil
}

// Constructor applies a graph mutation using the resolved config.
// Constructors validate early, return sentinel errors and never panic.
type Constructor func(g *core.Graph, cfg config) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
func BuildGraph(gopts []core.GraphOption, bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

func logStats(ctx context.Context, method string, nodes int, st Stats) {
	zerolog.Ctx(ctx).Debug().
		Str("method", method).
		Int("nodes", nodes).
		Int("arcs", st.Arcs).
		Int("attempts", st.Attempts).
		Int("self_loops", st.SelfLoops).
		Int("duplicates", st.Duplicates).
		Msg("arcs sampled")
}
