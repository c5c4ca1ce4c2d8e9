// SPDX-License-Identifier: MIT
// Package: flowgen/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with "%s: ...: %w" using the method tag.
//   • Generation never panics at runtime; validation panics are confined to
//     option constructors (WithX...).
//
// Priority when several validations fail:
//   ErrTooFewVertices → ErrNegativeArcs → ErrTooManyArcs →
//   ErrNeedRandSource → ErrUnsupportedGraphMode → ErrAllocation.

package builder

import "errors"

// ErrTooFewVertices indicates nodes < MinNodes.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNegativeArcs indicates a negative arc count.
var ErrNegativeArcs = errors.New("builder: negative arc count")

// ErrTooManyArcs indicates more arcs were requested than there are distinct
// ordered pairs, nodes*(nodes-1). Sampling would never terminate.
var ErrTooManyArcs = errors.New("builder: arc count exceeds distinct node pairs")

// ErrNeedRandSource indicates a constructor that requires an explicit random
// source (WithSeed/WithRand/WithSource) was run without one.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the target core.Graph is not directed
// and weighted.
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrAllocation indicates the presence matrix could not be allocated with no
// cell budget set (WithMaxCells(0)): its cell count overflows int or the
// runtime rejected the slice length.
var ErrAllocation = errors.New("builder: presence matrix allocation failed")

// ErrConstructFailed indicates a nil constructor or a graph mutation failure.
var ErrConstructFailed = errors.New("builder: construction failed")
