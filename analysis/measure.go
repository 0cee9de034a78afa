package analysis

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/bmssp/graph"
)

// ErrInvalidRuns is returned by Measure when runs < 1.
var ErrInvalidRuns = errors.New("analysis: runs must be >= 1")

// Timing is the wall time of repeated solver runs, in milliseconds.
type Timing struct {
	Runs   int
	MeanMS float64
	MinMS  float64
	MaxMS  float64
}

// Measure runs solver runs times on (g, source) and returns the timing and
// the distances of the last run. ctx is checked before every run.
func Measure(ctx context.Context, g *graph.Graph, source, runs int, solver Solver) (Timing, []float64, error) {
	if runs < 1 {
		return Timing{}, nil, fmt.Errorf("%w: runs=%d", ErrInvalidRuns, runs)
	}

	var (
		tm    = Timing{MinMS: math.Inf(1)}
		dist  []float64
		start time.Time
		ms    float64
		total float64
		err   error
	)
	for i := 0; i < runs; i++ {
		if err = ctx.Err(); err != nil {
			return Timing{}, nil, err
		}
		start = time.Now()
		dist, err = solver(g, source)
		ms = float64(time.Since(start)) / float64(time.Millisecond)
		if err != nil {
			return Timing{}, nil, err
		}
		total += ms
		tm.MinMS = math.Min(tm.MinMS, ms)
		tm.MaxMS = math.Max(tm.MaxMS, ms)
		tm.Runs++
	}
	tm.MeanMS = total / float64(tm.Runs)

	return tm, dist, nil
}
