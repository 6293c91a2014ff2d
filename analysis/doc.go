// SPDX-License-Identifier: MIT

// Package analysis computes the two Watts–Strogatz metrics over a core.Graph:
//
//   - the clustering coefficient C: mean over vertices of the fraction of
//     neighbor pairs that are themselves connected;
//   - the shortest-path coefficient L: mean hop distance over all ordered
//     pairs of distinct vertices.
//
// Definitions
//
//	LocalClustering(v) = T(v) / (d(v)·(d(v)-1)/2), where T(v) counts unordered
//	neighbor pairs {w,x} of v with w~x. Vertices with d(v) < 2 have no defined
//	ratio and are left out of ClusteringCoefficient; a graph where no vertex
//	qualifies reports ErrUndefinedClustering instead of a NaN.
//
//	ShortestPaths(v) maps every other vertex to its BFS hop distance, or to
//	Unreachable (-1) when it lies in another component.
//
//	ShortestPathCoefficient needs at least two vertices and a connected graph;
//	otherwise it fails with ErrTooFewVertices or core.ErrDisconnected.
//
// Complexity
//
//   - ClusteringCoefficient: O(V·d²)
//   - ShortestPaths: O(V + E·log d)
//   - ShortestPathCoefficient: O(V·(V + E·log d))
//
// Averages are computed with github.com/montanaflynn/stats.
package analysis
