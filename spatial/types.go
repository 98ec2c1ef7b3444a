// Package spatial defines construction options and sentinel errors for
// the spatial-graph subpackage of github.com/pathlab/pathlab.
package spatial

import (
	"errors"
)

// Sentinel errors for spatial graph construction and generation.
var (
	// ErrNodeIndex indicates a node index outside [0, Order).
	ErrNodeIndex = errors.New("spatial: node index out of range")

	// ErrSelfEdge indicates an attempt to connect a node to itself.
	ErrSelfEdge = errors.New("spatial: self edges are not allowed")

	// ErrTooFewNodes indicates Generate was asked for fewer than two
	// nodes, which cannot form a routable graph.
	ErrTooFewNodes = errors.New("spatial: at least two nodes are required")

	// ErrBadBounds indicates a non-positive sampling width or height.
	ErrBadBounds = errors.New("spatial: bounds must be positive")

	// ErrBadRadius indicates a non-positive connection radius was
	// supplied to WithRadius.
	ErrBadRadius = errors.New("spatial: connection radius must be positive")

	// ErrBadSeparation indicates a negative minimum separation was
	// supplied to WithMinSeparation.
	ErrBadSeparation = errors.New("spatial: minimum separation must be non-negative")

	// ErrConstructFailed indicates the sampler exhausted its attempt
	// budget without placing the requested number of nodes (the bounds
	// are too tight for the separation constraint).
	ErrConstructFailed = errors.New("spatial: construction failed")
)

// Options contains tunable parameters for spatial graph generation.
type Options struct {
	// Seed drives the deterministic sampling RNG. A value of 0 selects
	// the fixed default seed.
	Seed int64

	// Radius is the connection radius: sampled nodes within this
	// distance of each other are linked. A value of 0 lets Generate
	// derive a radius from the sampling density.
	Radius float64

	// MinSeparation rejects samples closer than this to an already
	// placed node, spreading nodes across the plane. 0 disables the
	// constraint.
	MinSeparation float64
}

// Option is a functional option for configuring Generate.
type Option func(*Options)

// WithSeed fixes the sampling RNG seed. Identical (n, bounds, options)
// inputs always produce identical graphs.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithRadius overrides the derived connection radius.
// Panics with ErrBadRadius if r is not positive.
func WithRadius(r float64) Option {
	return func(o *Options) {
		if r <= 0 {
			panic(ErrBadRadius.Error())
		}
		o.Radius = r
	}
}

// WithMinSeparation enforces a minimum pairwise distance between
// sampled nodes. Panics with ErrBadSeparation if s is negative.
func WithMinSeparation(s float64) Option {
	return func(o *Options) {
		if s < 0 {
			panic(ErrBadSeparation.Error())
		}
		o.MinSeparation = s
	}
}

// DefaultOptions returns the baseline generation settings: default
// seed, density-derived radius, no separation constraint.
func DefaultOptions() Options {
	return Options{Seed: 0, Radius: 0, MinSeparation: 0}
}
