// Package astar defines configuration options and sentinel errors for
// the A* search implementation.
package astar

import (
	"errors"
	"math"

	"github.com/pathlab/pathlab/core"
)

// Sentinel errors for option validation. Search-time failures reuse the
// shared sentinels in core (ErrNoPath, ErrNotInTopology, ...).
var (
	// ErrBadHeuristic indicates a nil heuristic was supplied to
	// WithHeuristic.
	ErrBadHeuristic = errors.New("astar: heuristic must be non-nil")

	// ErrBadMaxCost indicates a negative bound was supplied to
	// WithMaxCost.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// Options configures one A* run.
//
// Heuristic — remaining-cost estimator; must be admissible for the
// optimality guarantee to hold. Defaults to core.Euclidean, which is
// admissible both on unit-cost grids and on Euclidean-weighted graphs.
//
// MaxCost — g-cost bound; nodes whose accumulated cost exceeds it are
// not expanded. Defaults to +Inf (no bound).
type Options struct {
	Heuristic core.Heuristic
	MaxCost   float64
}

// Option is a functional option for configuring an A* run.
type Option func(*Options)

// WithHeuristic overrides the remaining-cost estimator. Passing
// core.Zero degrades A* to uniform-cost order, which is occasionally
// useful as a Dijkstra cross-check.
// Panics with ErrBadHeuristic if h is nil.
func WithHeuristic(h core.Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrBadHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// WithMaxCost caps exploration: nodes with accumulated cost above max
// are never expanded, so unreachable-within-budget targets fail fast
// with core.ErrNoPath.
// Panics with ErrBadMaxCost if max is negative.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns the baseline configuration: Euclidean
// heuristic, no cost bound.
func DefaultOptions() Options {
	return Options{
		Heuristic: core.Euclidean,
		MaxCost:   math.Inf(1),
	}
}
