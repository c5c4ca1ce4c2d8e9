// Package builder provides validation helpers enforcing request contracts.
package builder

import (
	"fmt"
	"math"
)

// MaxArcs returns the number of distinct ordered pairs (u,v), u != v, over
// ids 1..nodes: nodes*(nodes-1). It saturates at math.MaxInt.
// Complexity: O(1).
func MaxArcs(nodes int) int {
	if nodes < 2 {
		return 0
	}
	if nodes-1 > math.MaxInt/nodes {
		return math.MaxInt
	}

	return nodes * (nodes - 1)
}

// validateRequest checks (nodes, arcs) in priority order.
func validateRequest(method string, nodes, arcs int) error {
	if nodes < MinNodes {
		return fmt.Errorf("%s: nodes=%d < min=%d: %w", method, nodes, MinNodes, ErrTooFewVertices)
	}
	if arcs < 0 {
		return fmt.Errorf("%s: arcs=%d: %w", method, arcs, ErrNegativeArcs)
	}
	if limit := MaxArcs(nodes); arcs > limit {
		return fmt.Errorf("%s: arcs=%d > %d for nodes=%d: %w", method, arcs, limit, nodes, ErrTooManyArcs)
	}

	return nil
}
