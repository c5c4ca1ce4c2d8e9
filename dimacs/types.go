// SPDX-License-Identifier: MIT
// Package: flowgen/dimacs
//
// types.go - Arc, Problem, node roles and sentinel errors.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Parse failures carry the line number in *ParseError and unwrap to a sentinel.

package dimacs

import (
	"errors"
	"fmt"
)

// Line designators of the max-flow format.
const (
	lineComment = 'c'
	lineProblem = 'p'
	lineNode    = 'n'
	lineArc     = 'a'

	problemMax = "max"
)

// Node roles carried by "n" lines.
const (
	RoleSource = 's'
	RoleSink   = 't'
)

// DefaultMaxCapacity is the upper capacity bound of generated fixtures.
const DefaultMaxCapacity int64 = 100

var (
	// ErrSyntax indicates a malformed line.
	ErrSyntax = errors.New("dimacs: syntax error")

	// ErrNoProblemLine indicates a missing "p max" line, or node/arc lines before it.
	ErrNoProblemLine = errors.New("dimacs: missing problem line")

	// ErrNodeOutOfRange indicates a node id outside [1, nodes].
	ErrNodeOutOfRange = errors.New("dimacs: node id out of range")

	// ErrArcCount indicates the number of arc lines differs from the declared count.
	ErrArcCount = errors.New("dimacs: arc count mismatch")

	// ErrSelfLoop indicates an arc with From == To.
	ErrSelfLoop = errors.New("dimacs: self-loop")

	// ErrDuplicateArc indicates a repeated ordered pair (u,v).
	ErrDuplicateArc = errors.New("dimacs: duplicate arc")

	// ErrCapacityRange indicates a capacity outside [1, max].
	ErrCapacityRange = errors.New("dimacs: capacity out of range")

	// ErrTerminals indicates the source is not node 1 or the sink is not node N.
	ErrTerminals = errors.New("dimacs: unexpected source or sink")
)

// Arc is one directed, capacitated connection u→v.
type Arc struct {
	From     int
	To       int
	Capacity int64
}

// String renders the arc as its "a" line without the trailing newline.
func (a Arc) String() string {
	return fmt.Sprintf("%c %d %d %d", lineArc, a.From, a.To, a.Capacity)
}

// Problem is a parsed max-flow instance.
type Problem struct {
	// Nodes is the declared node count; valid ids are 1..Nodes.
	Nodes int
	// Arcs is the declared arc count from the "p" line.
	Arcs int
	// Source and Sink are the ids from the "n" lines, 0 when absent.
	Source int
	Sink   int
	// Edges holds the arcs in file order.
	Edges []Arc
}

// ParseError reports the line on which Read failed.
type ParseError struct {
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dimacs: line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }
