package analysis

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Model names for FitComplexity.
const (
	ModelMLogN      = "m·ln n"
	ModelMLogTwoThd = "m·ln^(2/3) n"
)

// Sentinel errors of FitComplexity.
var (
	ErrTooFewPoints  = errors.New("analysis: need at least 2 rows to fit")
	ErrUnknownSolver = errors.New("analysis: unknown solver")
)

// Fit is the least-squares line time ≈ Alpha + Beta·x for one model term x.
type Fit struct {
	Solver string
	Model  string
	Points int
	Alpha  float64
	Beta   float64
	R2     float64
}

var models = []struct {
	name string
	p    float64
}{
	{ModelMLogN, 1},
	{ModelMLogTwoThd, 2.0 / 3.0},
}

// FitComplexity regresses the mean time of solver over rows against both
// model terms. A higher R2 means the term explains the measurements better.
func FitComplexity(rows []Row, solver string) ([]Fit, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(rows))
	}

	y := make([]float64, len(rows))
	for i, r := range rows {
		switch solver {
		case SolverDijkstra:
			y[i] = r.Dijkstra.MeanMS
		case SolverBMSSP:
			y[i] = r.BMSSP.MeanMS
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, solver)
		}
	}

	fits := make([]Fit, 0, len(models))
	x := make([]float64, len(rows))
	for _, md := range models {
		for i, r := range rows {
			x[i] = modelTerm(r.N, r.M, md.p)
		}
		alpha, beta := stat.LinearRegression(x, y, nil, false)
		fits = append(fits, Fit{
			Solver: solver,
			Model:  md.name,
			Points: len(rows),
			Alpha:  alpha,
			Beta:   beta,
			R2:     stat.RSquared(x, y, nil, alpha, beta),
		})
	}

	return fits, nil
}
