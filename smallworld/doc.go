// SPDX-License-Identifier: MIT

// Package smallworld builds Watts–Strogatz small-world graphs.
//
// A Graph starts as the k-regular ring lattice on n vertices and is turned
// into a small world by Rewire(p): every lattice edge is considered exactly
// once, in order of "closeness" (nearest neighbors first), and with
// probability p its far endpoint is replaced by a uniformly random vertex.
// The resulting drop of the shortest-path coefficient L, while the clustering
// coefficient C stays high, is the small-world effect.
//
// # Lifecycle
//
//	Uninitialized ──New──▶ Lattice ──Rewire/Replace──▶ Rewired
//
// Rewire is only valid on an untouched lattice (ErrAlreadyRewired otherwise).
// Replace is the underlying primitive and may be applied to any subset of
// the current edges, any number of times.
//
// # Duplicate targets
//
// By default a replacement that lands on an existing neighbor collapses into
// that edge, so a rewired graph may have fewer than n·k/2 edges. With
// WithStrictRewiring the target is drawn only among non-neighbors, and the
// edge is kept in place when no such vertex exists.
//
// # Randomness
//
// Nothing reads global randomness. Pass WithSeed or WithRand; Rewire with
// p > 0 and Replace on a non-empty subset fail with builder.ErrNeedRandSource
// when no source was configured.
//
// A Graph is not safe for concurrent use.
package smallworld
