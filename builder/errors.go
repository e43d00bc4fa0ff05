// SPDX-License-Identifier: MIT
// Package: mincut/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Constructors attach context with %w ("Cycle: n=2 < min=3: …").
//   • Option constructors panic on meaningless input; constructors never panic.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadWeight indicates the weight generator produced a weight below 1.
var ErrBadWeight = errors.New("builder: weight must be >= 1")

// ErrConstructFailed indicates BuildGraph could not run a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
