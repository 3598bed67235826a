// SPDX-License-Identifier: MIT
// Package: pids/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("Cycle: n=2 < min=3: ...").
//   • Constructors never panic; option constructors may (see options.go).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, side)
// is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the accumulated topology could not be
// turned into a graph (nil constructor, invalid edge).
var ErrConstructFailed = errors.New("builder: construction failed")
