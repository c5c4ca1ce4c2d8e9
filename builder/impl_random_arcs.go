// SPDX-License-Identifier: MIT
// Package: flowgen/builder
//
// impl_random_arcs.go - rejection sampler shared by Generate, WriteInstance
// and RandomFlowNetwork.
//
// Model:
//   - Draw u then v uniformly from [1,nodes] (each Intn(nodes)+1).
//   - Reject u == v (self-loop) and already accepted (u,v) (duplicate).
//   - Otherwise mark (u,v), draw the capacity, accept.
//   - Stop after exactly `arcs` accepted arcs.
//
// Termination: validateRequest bounds arcs by nodes*(nodes-1), so the loop
// always ends; the expected number of draws grows like a coupon collector as
// arcs approaches that bound.
//
// Determinism: for a fixed Source state, the accepted arcs and their order
// are fixed. Draw order per attempt is u, v and, on acceptance, capacity.

package builder

import (
	"context"

	"github.com/katalvlaran/flowgen/dimacs"
)

// Stats summarizes one sampling run.
type Stats struct {
	// Arcs is the number of accepted arcs.
	Arcs int
	// Attempts counts every (u,v) draw, accepted or not.
	Attempts int
	// SelfLoops counts draws rejected because u == v.
	SelfLoops int
	// Duplicates counts draws rejected because (u,v) was already accepted.
	Duplicates int
}

// sampler holds the state of one run. It is not safe for concurrent use.
type sampler struct {
	nodes      int
	rng        Source
	capacityFn CapacityFn
	seen       presence
	stats      Stats
}

// newSampler validates the request and allocates the pair filter. No
// randomness is consumed and nothing is emitted.
func newSampler(method string, nodes, arcs int, rng Source, cfg config) (*sampler, error) {
	if err := validateRequest(method, nodes, arcs); err != nil {
		return nil, err
	}
	seen, err := newPresence(method, nodes, arcs, cfg.maxCells)
	if err != nil {
		return nil, err
	}

	return &sampler{
		nodes:      nodes,
		rng:        rng,
		capacityFn: cfg.capacityFn,
		seen:       seen,
	}, nil
}

// run accepts `arcs` arcs, handing each to emit in acceptance order. The
// context is polled every cancelCheckInterval draws.
func (s *sampler) run(ctx context.Context, arcs int, emit func(dimacs.Arc) error) error {
	for s.stats.Arcs < arcs {
		if s.stats.Attempts%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		s.stats.Attempts++

		u := s.rng.Intn(s.nodes) + 1
		v := s.rng.Intn(s.nodes) + 1
		if u == v {
			s.stats.SelfLoops++
			continue
		}
		if !s.seen.mark(u, v) {
			s.stats.Duplicates++
			continue
		}

		a := dimacs.Arc{From: u, To: v, Capacity: s.capacityFn(s.rng)}
		if err := emit(a); err != nil {
			return err
		}
		s.stats.Arcs++
	}

	return nil
}
