// SPDX-License-Identifier: MIT

package analysis

import "errors"

// Unreachable is the ShortestPaths distance of a vertex outside the start's component.
const Unreachable = -1

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("analysis: graph is nil")

	// ErrUndefinedClustering indicates a vertex (or a whole graph) with no
	// vertex of degree >= 2, so no clustering ratio exists.
	ErrUndefinedClustering = errors.New("analysis: clustering undefined for degree < 2")

	// ErrTooFewVertices indicates a path average over fewer than two vertices.
	ErrTooFewVertices = errors.New("analysis: need at least two vertices")
)
