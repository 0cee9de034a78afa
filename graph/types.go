package graph

import "errors"

// Sentinel errors returned by graph construction and validation.
var (
	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("graph: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrNonFiniteWeight indicates a NaN or infinite edge weight.
	ErrNonFiniteWeight = errors.New("graph: edge weight is not finite")

	// ErrInvalidProbability indicates an edge density outside [0, 1].
	ErrInvalidProbability = errors.New("graph: density must lie in [0, 1]")

	// ErrNeedRandSource indicates that a stochastic generator was called without an rng.
	ErrNeedRandSource = errors.New("graph: random source is required")
)

// Edge is a directed, weighted arc owned by its source vertex's adjacency list.
type Edge struct {
	To     int     // target vertex id
	Weight float64 // non-negative, finite for a valid graph
}

// Graph is a directed weighted graph over the dense vertex ids 0..n-1.
type Graph struct {
	n   int
	m   int
	adj [][]Edge
}
