// SPDX-License-Identifier: MIT

package smallworld

import "errors"

var (
	// ErrAlreadyRewired indicates Rewire on a graph that is no longer the
	// untouched ring lattice.
	ErrAlreadyRewired = errors.New("smallworld: graph already rewired")

	// ErrUninitialized indicates a method call on a Graph not created by New.
	ErrUninitialized = errors.New("smallworld: graph not initialized")

	// ErrDuplicateEdge indicates the same edge listed twice in one Replace call.
	ErrDuplicateEdge = errors.New("smallworld: duplicate edge in replace set")
)
