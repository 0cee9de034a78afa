package verify

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/bmssp/graph"
)

// Sentinel errors of the gonum oracle.
var (
	ErrNilGraph      = errors.New("verify: graph is nil")
	ErrInvalidSource = errors.New("verify: invalid source vertex")
)

// ToGonum converts g into a gonum weighted digraph with node ids 0..n-1.
// gonum's simple graphs hold one edge per ordered pair and no self-loops,
// so parallel edges collapse to their minimum weight and self-loops are
// dropped; neither changes a shortest distance when weights are non-negative.
func ToGonum(g *graph.Graph) *simple.WeightedDirectedGraph {
	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		out.AddNode(simple.Node(int64(v)))
	}
	for u := 0; u < n; u++ {
		for _, e := range g.Edges(u) {
			if e.To == u {
				continue
			}
			if cur := out.WeightedEdge(int64(u), int64(e.To)); cur != nil && cur.Weight() <= e.Weight {
				continue
			}
			out.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(int64(u)),
				T: simple.Node(int64(e.To)),
				W: e.Weight,
			})
		}
	}

	return out
}

// GonumDistances returns single-source distances computed by gonum's
// Dijkstra; unreachable vertices are +Inf. The graph must be valid
// (gonum panics on negative weights), so it is validated first.
func GonumDistances(g *graph.Graph, source int) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source=%d n=%d", ErrInvalidSource, source, g.VertexCount())
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	gg := ToGonum(g)
	shortest := path.DijkstraFrom(simple.Node(int64(source)), gg)
	dist := make([]float64, g.VertexCount())
	for v := range dist {
		dist[v] = shortest.WeightTo(int64(v))
	}

	return dist, nil
}

// Check compares got with the gonum oracle; tol <= 0 selects DefaultTolerance.
func Check(g *graph.Graph, source int, got []float64, tol float64) (Report, error) {
	want, err := GonumDistances(g, source)
	if err != nil {
		return Report{}, err
	}

	if tol <= 0 {
		tol = DefaultTolerance
	}

	return Compare(got, want, tol)
}
