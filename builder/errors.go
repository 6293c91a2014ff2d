// SPDX-License-Identifier: MIT
// Package: smallworld/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`: "<Method>: <detail>: <sentinel>".
//   • Errors coming from core (e.g. *core.DegreeError) are wrapped, never replaced,
//     so errors.Is(err, core.ErrDegree) keeps working through BuildGraph.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n) is below the minimum
// accepted by the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval
// [0,1], or NaN.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic operation that requires a non-nil
// *rand.Rand (supply WithSeed/WithRand, or pass one explicitly).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not run at all
// (nil graph, nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
