package analysis

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable prints one line per row with timings, speedup, normalised
// times and the verification verdict.
func WriteTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "density\tnodes\tedges\tdijkstra ms\tbmssp ms\tspeedup\tdijkstra/m·ln n\tbmssp/m·ln^⅔ n\tmax diff\tok\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%.3f\t%d\t%d\t%.3f\t%.3f\t%.2fx\t%.3e\t%.3e\t%.1e\t%s\t\n",
			r.Density, r.N, r.M,
			r.Dijkstra.MeanMS, r.BMSSP.MeanMS, r.Speedup,
			r.DijkstraNorm, r.BMSSPNorm,
			r.Verify.MaxAbsDiff, verdict(r.OK()))
	}

	return tw.Flush()
}

// WriteFits prints one line per fit.
func WriteFits(w io.Writer, fits []Fit) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "solver\tmodel\tpoints\talpha\tbeta\tR²")
	for _, f := range fits {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%.4g\t%.4g\t%.4f\n", f.Solver, f.Model, f.Points, f.Alpha, f.Beta, f.R2)
	}

	return tw.Flush()
}

func verdict(ok bool) string {
	if ok {
		return "yes"
	}

	return "NO"
}
