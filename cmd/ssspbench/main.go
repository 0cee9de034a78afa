// Command ssspbench validates bmssp against dijkstra on seeded random graphs
// and prints timing, normalised complexity and regression tables.
//
// Usage:
//
//	ssspbench [-config bench.yaml] [-sizes 100,500,1000] [-density 0.01,0.05]
//	          [-runs 3] [-seed 1] [-oracle] [-log-level info] [-cpuprofile cpu.out]
//
// Explicitly set flags override SSSP_* environment variables, which
// override the config file and the built-in defaults. The exit status is 1
// when any row disagrees with the reference, 2 on usage or runtime errors and
// 130 when the sweep was interrupted before finishing.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/bmssp/analysis"
)

// Exit codes.
const (
	exitOK          = 0
	exitMismatch    = 1
	exitError       = 2
	exitInterrupted = 130
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath = flag.String("config", "", "optional config file (yaml, json, toml)")
		logLevel   = flag.String("log-level", "", "zerolog level: trace, debug, info, warn, error")
		sizes      = flag.String("sizes", "", "comma-separated vertex counts")
		densities  = flag.String("density", "", "comma-separated edge probabilities")
		runs       = flag.Int("runs", 0, "timed runs per solver and graph")
		seed       = flag.Int64("seed", 0, "base rng seed")
		oracle     = flag.Bool("oracle", false, "also check dijkstra against the gonum oracle")
		cpuprofile = flag.String("cpuprofile", "", "optional output file for a cpu profile")
	)
	flag.Parse()

	cfg := analysis.NewConfig()
	if *configPath != "" {
		if err := cfg.LoadFromFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitError
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.Set(analysis.KeyLogLevel, *logLevel)
		case "sizes":
			cfg.Set(analysis.KeySizes, *sizes)
		case "density":
			cfg.Set(analysis.KeyDensities, *densities)
		case "runs":
			cfg.Set(analysis.KeyRuns, *runs)
		case "seed":
			cfg.Set(analysis.KeySeed, *seed)
		case "oracle":
			cfg.Set(analysis.KeyOracle, *oracle)
		}
	})

	logger := cfg.Logger(os.Stderr)
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Msg("config")
		return exitError
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			logger.Error().Err(err).Msg("could not create CPU profile")
			return exitError
		}
		defer f.Close()
		if err = pprof.StartCPUProfile(f); err != nil {
			logger.Error().Err(err).Msg("could not start CPU profile")
			return exitError
		}
		defer pprof.StopCPUProfile()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Ints("sizes", cfg.Sizes()).
		Floats64("densities", cfg.Densities()).
		Int("runs", cfg.Runs()).
		Int64("seed", cfg.Seed()).
		Msg("sweep start")

	rows, sweepErr := analysis.Sweep(ctx, cfg, logger)
	switch {
	case errors.Is(sweepErr, context.Canceled):
		logger.Warn().Int("rows", len(rows)).Msg("interrupted, partial results only")
	case sweepErr != nil:
		logger.Error().Err(sweepErr).Msg("sweep")
	}

	if err := report(rows, logger); err != nil {
		logger.Error().Err(err).Msg("report")
		return exitError
	}
	if bad := analysis.Mismatched(rows); bad > 0 {
		logger.Error().Int("rows", bad).Msg("bmssp disagrees with dijkstra")
	}

	return status(rows, sweepErr)
}

// status maps a sweep outcome to the exit code. A mismatch outranks an
// interrupt; a truncated sweep never reports success.
func status(rows []analysis.Row, sweepErr error) int {
	switch {
	case sweepErr != nil && !errors.Is(sweepErr, context.Canceled):
		return exitError
	case analysis.Mismatched(rows) > 0:
		return exitMismatch
	case sweepErr != nil:
		return exitInterrupted
	}

	return exitOK
}

func report(rows []analysis.Row, logger zerolog.Logger) error {
	if len(rows) == 0 {
		return nil
	}
	if err := analysis.WriteTable(os.Stdout, rows); err != nil {
		return err
	}

	var fits []analysis.Fit
	for _, s := range analysis.Solvers() {
		f, err := analysis.FitComplexity(rows, s.Name)
		if errors.Is(err, analysis.ErrTooFewPoints) {
			logger.Debug().Str("solver", s.Name).Msg("skipping fit")
			return nil
		}
		if err != nil {
			return err
		}
		fits = append(fits, f...)
	}
	fmt.Fprintln(os.Stdout)

	return analysis.WriteFits(os.Stdout, fits)
}
