// Package bmssp provides tunable options, run statistics and error
// definitions for the bounded multi-source shortest-path algorithm.
package bmssp

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for algorithm construction and execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bmssp: graph is nil")

	// ErrEmptyGraph is returned for a graph with no vertices; no source can exist.
	ErrEmptyGraph = errors.New("bmssp: graph has no vertices")

	// ErrInvalidGraph wraps a graph.Validate failure (negative or non-finite weight).
	ErrInvalidGraph = errors.New("bmssp: invalid graph")

	// ErrInvalidSource is returned for a vertex id outside [0, n).
	ErrInvalidSource = errors.New("bmssp: invalid source vertex")

	// ErrInvalidBound is returned for a NaN distance bound.
	ErrInvalidBound = errors.New("bmssp: bound must not be NaN")

	// ErrInvalidLevel is returned for a negative recursion level.
	ErrInvalidLevel = errors.New("bmssp: level must be non-negative")

	// ErrInvalidDistance is returned by SetDist for a NaN or negative estimate.
	ErrInvalidDistance = errors.New("bmssp: distance must be non-negative and not NaN")

	// ErrConsumed is returned by any mutating call after SSSP handed the
	// distance array to its caller.
	ErrConsumed = errors.New("bmssp: algorithm instance already consumed by SSSP")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bmssp: invalid option supplied")
)

// Option configures the algorithm via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the logger, hooks and overrides of one algorithm instance.
type Options struct {
	// Logger receives the recursion trace. Debug: BMSSP calls and pivot
	// selection; Trace: base cases. Default is zerolog.Nop().
	Logger zerolog.Logger

	// OnRelax is called after every successful relaxation with the vertex,
	// its previous estimate and the new, strictly smaller one.
	OnRelax func(v int, old, new float64)

	// OnEnter is called on entry to every BMSSP call with a non-empty frontier.
	OnEnter func(level int, bound float64, frontier int)

	// Levels, if > 0, replaces the derived top-level budget l.
	Levels int

	err error
}

// DefaultOptions returns Options with a no-op logger, no-op hooks and the
// derived level budget.
func DefaultOptions() Options {
	return Options{
		Logger:  zerolog.Nop(),
		OnRelax: func(int, float64, float64) {},
		OnEnter: func(int, float64, int) {},
	}
}

// WithLogger routes the recursion trace to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnRelax registers a callback run on every distance decrease.
func WithOnRelax(fn func(v int, old, new float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// WithOnEnter registers a callback run on entry to every BMSSP call.
func WithOnEnter(fn func(level int, bound float64, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnter = fn
		}
	}
}

// WithLevels overrides the top-level recursion budget used by SSSP.
//
//	l > 0: use l
//	l == 0: keep the derived budget
//	l < 0: invalid option → ErrOptionViolation
func WithLevels(l int) Option {
	return func(o *Options) {
		if l < 0 {
			o.err = fmt.Errorf("%w: Levels cannot be negative (%d)", ErrOptionViolation, l)
			return
		}
		o.Levels = l
	}
}

// Stats counts the work done by one algorithm instance.
type Stats struct {
	Relaxations     int // successful distance decreases
	BMSSPCalls      int // BMSSP invocations with a non-empty frontier
	FindPivotsCalls int
	BaseCaseCalls   int
	// MaxDepth is the largest number of level decrements taken below the
	// entry level; it never exceeds that level.
	MaxDepth int
}

// Item is one (key, value) pair of a PartialSortDS.
type Item struct {
	Key   int
	Value float64
}
