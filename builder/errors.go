// SPDX-License-Identifier: MIT
// Package: treach/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidTime indicates a timestamp parameter below 1.
var ErrInvalidTime = errors.New("builder: timestamp must be ≥ 1")

// ErrConstructFailed indicates a nil constructor or a failed graph assembly.
var ErrConstructFailed = errors.New("builder: construction failed")
