package graph

import (
	"fmt"
	"math"
)

// New returns a graph with n vertices and no edges.
// n == 0 is allowed; algorithms reject the empty graph themselves.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeOrder, n)
	}

	return &Graph{n: n, adj: make([][]Edge, n)}, nil
}

// AddEdge appends the directed edge from→to with weight w to from's adjacency list.
// The weight is stored as given; call Validate to check it.
func (g *Graph) AddEdge(from, to int, w float64) error {
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: from=%d n=%d", ErrVertexOutOfRange, from, g.n)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: to=%d n=%d", ErrVertexOutOfRange, to, g.n)
	}
	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: w})
	g.m++

	return nil
}

// VertexCount returns n.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the total number of stored edges m.
func (g *Graph) EdgeCount() int { return g.m }

// HasVertex reports whether v is a valid vertex id.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Edges returns the outgoing edges of u in insertion order, or nil if u is out of range.
// The returned slice is owned by the graph and must not be modified.
func (g *Graph) Edges(u int) []Edge {
	if !g.HasVertex(u) {
		return nil
	}

	return g.adj[u]
}

// Validate scans every edge once and reports the first weight that is not
// finite or is negative.
//
// Complexity: O(n + m).
func (g *Graph) Validate() error {
	var (
		u int
		e Edge
	)
	for u = 0; u < g.n; u++ {
		for _, e = range g.adj[u] {
			if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
				return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNonFiniteWeight, u, e.To, e.Weight)
			}
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	return nil
}

// Chain returns the path graph 0→1→…→n-1 with every edge weighing w.
func Chain(n int, w float64) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = g.AddEdge(i, i+1, w); err != nil {
			return nil, err
		}
	}

	return g, nil
}
