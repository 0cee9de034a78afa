package analysis

import (
	"github.com/katalvlaran/bmssp/bmssp"
	"github.com/katalvlaran/bmssp/dijkstra"
	"github.com/katalvlaran/bmssp/graph"
)

// Solver names.
const (
	SolverDijkstra = "dijkstra"
	SolverBMSSP    = "bmssp"
)

// Solver computes single-source distances, +Inf for unreachable vertices.
type Solver func(g *graph.Graph, source int) ([]float64, error)

// NamedSolver pairs a Solver with its table name.
type NamedSolver struct {
	Name  string
	Solve Solver
}

// Solvers returns the compared solvers in table order: the reference first.
func Solvers() []NamedSolver {
	return []NamedSolver{
		{Name: SolverDijkstra, Solve: Dijkstra},
		{Name: SolverBMSSP, Solve: BMSSP},
	}
}

// Dijkstra adapts dijkstra.Dijkstra to Solver.
func Dijkstra(g *graph.Graph, source int) ([]float64, error) {
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(source))

	return dist, err
}

// BMSSP runs a fresh bmssp.Algorithm; instances are single-use.
func BMSSP(g *graph.Graph, source int) ([]float64, error) {
	alg, err := bmssp.New(g)
	if err != nil {
		return nil, err
	}

	return alg.SSSP(source)
}
