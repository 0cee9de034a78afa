// Package graph provides the dense, directed, weighted adjacency-list graph
// consumed by the shortest-path packages of this module.
//
// Vertices are the dense integer ids 0..n-1; there is no vertex object, a
// vertex exists iff its id is in range. Each vertex owns an ordered
// (insertion-order) list of outgoing edges.
//
// Overview:
//
//   - New(n) allocates n empty adjacency lists.
//   - AddEdge(from, to, w) appends a directed edge; parallel edges and
//     self-loops are allowed and stored as given.
//   - Validate reports the first edge whose weight is negative or not finite.
//     Shortest-path algorithms call it before running, so that a bad weight
//     surfaces as a sentinel error instead of a silently wrong distance.
//   - RandomSparse and Chain build deterministic fixtures for tests and
//     benchmarks.
//
// Lifecycle:
//
//	A Graph is built once and then treated as read-only input. It is not safe
//	for concurrent mutation; concurrent readers of a fully built Graph are fine.
//
// Errors (sentinel):
//
//   - ErrNegativeOrder      n < 0 passed to New.
//   - ErrVertexOutOfRange   an edge endpoint outside [0, n).
//   - ErrNegativeWeight     a weight below zero.
//   - ErrNonFiniteWeight    a NaN or ±Inf weight.
//   - ErrInvalidProbability density outside [0, 1].
//   - ErrNeedRandSource     nil rng for a stochastic RandomSparse call.
package graph
