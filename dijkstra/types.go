// Package dijkstra defines configuration options and sentinel errors
// for the uniform-cost (Dijkstra) search implementation.
package dijkstra

import (
	"errors"
	"math"
)

// ErrBadMaxCost indicates a negative bound was supplied to WithMaxCost.
// Search-time failures reuse the shared sentinels in core (ErrNoPath,
// ErrNotInTopology, ErrNegativeCost, ...).
var ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

// Options configures one Dijkstra run.
//
// MaxCost — distance bound; nodes whose finalized distance would exceed
// it are not explored. Defaults to +Inf (no bound).
type Options struct {
	MaxCost float64
}

// Option is a functional option for configuring a Dijkstra run.
type Option func(*Options)

// WithMaxCost caps exploration at the given distance from the start.
// Panics with ErrBadMaxCost if max is negative.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// DefaultOptions returns the baseline configuration: no distance bound.
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}
