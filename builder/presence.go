// SPDX-License-Identifier: MIT
// Package: flowgen/builder
//
// presence.go - records accepted ordered pairs so repeats are rejected.
//
// Two layouts:
//   - presenceMatrix: one flat []bool of (nodes+1)² cells, cell u*(nodes+1)+v
//     records whether arc u→v was accepted. Row and column 0 are unused so
//     that DIMACS ids index directly.
//   - pairSet: a map keyed by (u,v), used when the matrix would exceed the
//     cell budget. Memory follows the arc count instead of nodes².
//
// Either one is owned by a single sampler and released when it goes out of
// scope.

package builder

import (
	"fmt"
	"math"
)

// pairSetHint caps the initial size of a pairSet.
const pairSetHint = 1 << 16

// presence is the duplicate filter used by the sampler.
type presence interface {
	// mark records u→v and reports whether it was new.
	mark(u, v int) bool
}

type presenceMatrix struct {
	stride int
	cells  []bool
}

type pairSet map[[2]int]struct{}

// matrixCells returns (nodes+1)², or false if it overflows int.
func matrixCells(nodes int) (int, bool) {
	stride := nodes + 1
	if stride <= 0 || stride > math.MaxInt/stride {
		return 0, false
	}

	return stride * stride, true
}

// newPresence picks the layout for ids 1..nodes. With a budget (maxCells > 0)
// a matrix that overflows int or exceeds the budget is replaced by a pairSet
// sized for arcs. With no budget the matrix is always used, and an int
// overflow or a length the runtime rejects (makeslice panic) is reported as
// ErrAllocation. Running out of memory below that length is fatal and is not
// recovered.
func newPresence(method string, nodes, arcs, maxCells int) (presence, error) {
	cells, ok := matrixCells(nodes)
	if maxCells > 0 && (!ok || cells > maxCells) {
		return make(pairSet, min(arcs, pairSetHint)), nil
	}
	if !ok {
		return nil, fmt.Errorf("%s: (%d+1)² cells overflow int: %w", method, nodes, ErrAllocation)
	}

	return newPresenceMatrix(method, nodes, cells)
}

func newPresenceMatrix(method string, nodes, cells int) (m *presenceMatrix, err error) {
	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = fmt.Errorf("%s: %d cells: %v: %w", method, cells, r, ErrAllocation)
		}
	}()

	return &presenceMatrix{stride: nodes + 1, cells: make([]bool, cells)}, nil
}

func (m *presenceMatrix) mark(u, v int) bool {
	i := u*m.stride + v
	if m.cells[i] {
		return false
	}
	m.cells[i] = true

	return true
}

func (s pairSet) mark(u, v int) bool {
	k := [2]int{u, v}
	if _, dup := s[k]; dup {
		return false
	}
	s[k] = struct{}{}

	return true
}
