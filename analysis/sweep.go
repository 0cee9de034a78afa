package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/bmssp/graph"
	"github.com/katalvlaran/bmssp/verify"
)

// Row is one (density, size) measurement.
type Row struct {
	Density float64
	N, M    int

	Dijkstra Timing
	BMSSP    Timing

	// Speedup is Dijkstra.MeanMS / BMSSP.MeanMS; values below 1 mean bmssp is slower.
	Speedup float64

	// DijkstraNorm is t/(m·ln n); BMSSPNorm is t/(m·ln^(2/3) n). Both are 0 when m == 0.
	DijkstraNorm float64
	BMSSPNorm    float64

	// Verify compares bmssp against dijkstra.
	Verify verify.Report
	// Oracle compares dijkstra against gonum; zero unless verify.oracle is set.
	Oracle verify.Report
	// Reach is the BFS reachability check of the bmssp result.
	Reach error
}

// OK reports whether every check on the row passed.
func (r Row) OK() bool { return r.Verify.OK() && r.Oracle.OK() && r.Reach == nil }

// Sweep measures every configured (density, size) pair in order. Each graph
// is generated from its own rng seeded with seed+n, so rows are reproducible
// independently of the sweep shape. Mismatches are logged and recorded in the
// rows; only generation, solver and cancellation failures return an error.
func Sweep(ctx context.Context, cfg *Config, logger zerolog.Logger) ([]Row, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		sizes     = cfg.Sizes()
		densities = cfg.Densities()
		source    = cfg.Source()
		runs      = cfg.Runs()
		rows      = make([]Row, 0, len(sizes)*len(densities))
	)
	for _, p := range densities {
		for _, n := range sizes {
			row, err := measureRow(ctx, cfg, p, n, source, runs)
			if err != nil {
				return rows, fmt.Errorf("analysis: n=%d density=%g: %w", n, p, err)
			}
			ev := logger.Info()
			if !row.OK() {
				ev = logger.Warn().
					Int("mismatches", len(row.Verify.Mismatches)).
					Int("oracle_mismatches", len(row.Oracle.Mismatches)).
					Float64("max_abs_diff", row.Verify.MaxAbsDiff).
					AnErr("reach", row.Reach)
			}
			ev.Int("n", row.N).
				Int("m", row.M).
				Float64("density", p).
				Float64("dijkstra_ms", row.Dijkstra.MeanMS).
				Float64("bmssp_ms", row.BMSSP.MeanMS).
				Float64("speedup", row.Speedup).
				Msg("row")
			rows = append(rows, row)
		}
	}

	return rows, nil
}

func measureRow(ctx context.Context, cfg *Config, density float64, n, source, runs int) (Row, error) {
	g, err := graph.RandomSparse(n, density, cfg.MaxWeight(), graph.NewRand(cfg.Seed()+int64(n)))
	if err != nil {
		return Row{}, err
	}
	row := Row{Density: density, N: n, M: g.EdgeCount()}

	var (
		ref, got []float64
		tol      = cfg.Tolerance()
	)
	if row.Dijkstra, ref, err = Measure(ctx, g, source, runs, Dijkstra); err != nil {
		return Row{}, err
	}
	if row.BMSSP, got, err = Measure(ctx, g, source, runs, BMSSP); err != nil {
		return Row{}, err
	}
	if row.Verify, err = verify.Compare(got, ref, tol); err != nil {
		return Row{}, err
	}
	row.Reach = verify.Reachability(g, source, got)
	if cfg.Oracle() {
		if row.Oracle, err = verify.Check(g, source, ref, tol); err != nil {
			return Row{}, err
		}
	}

	if row.BMSSP.MeanMS > 0 {
		row.Speedup = row.Dijkstra.MeanMS / row.BMSSP.MeanMS
	}
	row.DijkstraNorm, row.BMSSPNorm = normalise(row.Dijkstra.MeanMS, n, row.M, 1), normalise(row.BMSSP.MeanMS, n, row.M, 2.0/3.0)

	return row, nil
}

// modelTerm is m·ln^p n, with ln n floored at 1 so tiny graphs stay finite.
func modelTerm(n, m int, p float64) float64 {
	return float64(m) * math.Pow(math.Max(math.Log(float64(n)), 1), p)
}

func normalise(ms float64, n, m int, p float64) float64 {
	x := modelTerm(n, m, p)
	if x == 0 {
		return 0
	}

	return ms / x
}

// Mismatched counts rows with at least one failed check.
func Mismatched(rows []Row) int {
	var bad int
	for _, r := range rows {
		if !r.OK() {
			bad++
		}
	}

	return bad
}
