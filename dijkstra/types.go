// Package dijkstra defines configuration options and sentinel errors for
// grid-based shortest-path search.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Run.
var (
	// ErrNilAdjacency indicates that a nil adjacency provider was passed.
	ErrNilAdjacency = errors.New("dijkstra: adjacency provider is nil")

	// ErrBadMaxCost indicates that WithMaxCost was given a negative cap,
	// which is not meaningful for a cost threshold.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")
)

// Options configures the behavior of the search.
//
// MaxCost – cap on accumulated cost to explore; frontier entries beyond
// it are not expanded. Default is math.MaxInt64 (no cap).
type Options struct {
	MaxCost int64

	// internal error recorded during option parsing, surfaced by Run.
	err error
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns an Options struct with sensible defaults:
// no cost cap.
func DefaultOptions() Options {
	return Options{
		MaxCost: math.MaxInt64,
	}
}

// WithMaxCost caps exploration at the given accumulated cost.
//
//	c > 0:  limit to cost c
//	c == 0: explicit "no cap"
//	c < 0:  invalid option → ErrBadMaxCost when Run is invoked
func WithMaxCost(c int64) Option {
	return func(o *Options) {
		switch {
		case c < 0:
			o.err = ErrBadMaxCost
		case c == 0:
			o.MaxCost = math.MaxInt64
		default:
			o.MaxCost = c
		}
	}
}
