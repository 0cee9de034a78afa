// Package analysis is the validation and benchmark harness behind ssspbench.
//
// A Sweep generates seeded random graphs for every configured (density, size)
// pair, times each solver with Measure, checks bmssp against dijkstra and
// reports per-row speedups together with the complexity-normalised times
//
//	dijkstra: t / (m · ln n)
//	bmssp:    t / (m · ln^(2/3) n)
//
// FitComplexity regresses measured time on both model terms with gonum/stat,
// and WriteTable/WriteFits render the results as aligned console tables.
//
// Configuration is loaded with viper (defaults, optional file, SSSP_* env)
// and logging goes through zerolog.
package analysis
