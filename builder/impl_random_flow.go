// SPDX-License-Identifier: MIT
// Package: flowgen/builder
//
// impl_random_flow.go - RandomFlowNetwork(nodes, arcs) constructor.
//
// Contract:
//   - Same validation and sampling as Generate.
//   - cfg.rng must be non-nil (else ErrNeedRandSource): graph fixtures are
//     deterministic by default, unlike the CLI stream.
//   - g must be directed and weighted (else ErrUnsupportedGraphMode).
//   - Adds vertices "1".."nodes" in ascending order, then arcs in acceptance
//     order with Weight = capacity.

package builder

import (
	"context"
	"fmt"

	"github.com/katalvlaran/flowgen/core"
	"github.com/katalvlaran/flowgen/dimacs"
)

// RandomFlowNetwork returns a Constructor that materializes a random flow
// network into the target graph. Source is vertex "1", sink is
// dimacs.NodeID(nodes).
func RandomFlowNetwork(nodes, arcs int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if err := validateRequest(MethodRandomFlowNetwork, nodes, arcs); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomFlowNetwork, ErrNeedRandSource)
		}
		if !g.Directed() || !g.Weighted() {
			return fmt.Errorf("%s: graph must be directed and weighted: %w",
				MethodRandomFlowNetwork, ErrUnsupportedGraphMode)
		}

		s, err := newSampler(MethodRandomFlowNetwork, nodes, arcs, cfg.rng, cfg)
		if err != nil {
			return err
		}
		for i := 1; i <= nodes; i++ {
			if err = g.AddVertex(dimacs.NodeID(i)); err != nil {
				return fmt.Errorf("%s: AddVertex(%d): %w", MethodRandomFlowNetwork, i, err)
			}
		}

		return s.run(context.Background(), arcs, func(a dimacs.Arc) error {
			if _, err := g.AddEdge(dimacs.NodeID(a.From), dimacs.NodeID(a.To), a.Capacity); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w",
					MethodRandomFlowNetwork, a.From, a.To, a.Capacity, err)
			}
			return nil
		})
	}
}
