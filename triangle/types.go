// Package triangle defines core types, options, and sentinel errors
// for the triangle subpackage of github.com/katalvlaran/pascal.
package triangle

import (
	"errors"
)

// Sentinel errors for triangle operations.
var (
	// ErrInvalidIndex indicates a coordinate outside the triangle:
	// row < 0, column < 0, or column > row at construction, or a negative
	// row passed to a lookup or sum.
	ErrInvalidIndex = errors.New("triangle: index must satisfy row >= 0 and 0 <= column <= row")
	// ErrUnboundedPosition indicates an attempt to dereference the
	// unbounded end position, which marks "past every element" and never
	// addresses an element itself.
	ErrUnboundedPosition = errors.New("triangle: unbounded end position has no element")
)

// Number constrains the element type to Go's built-in numeric kinds
// (and any type whose underlying type is one of them). Every Number has
// an additive zero and the + operator, which is all the generic engines
// require.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Integer is the ring refinement of Number: element types that support
// shifting, which unlocks the O(1) row-sum path (base << row). Use NewInt
// or NewUnit to opt in.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// options holds resolved construction settings. Fields are internal;
// public APIs consume ...Option.
type options struct {
	concurrent bool
	memoize    bool
}

// Option configures a Triangle at construction time.
type Option func(*options)

// defaultOptions returns the documented defaults: single-threaded map
// cache, memoization enabled.
func defaultOptions() options {
	return options{
		concurrent: false,
		memoize:    true,
	}
}

// WithConcurrentCache swaps the internal memo store for a sharded,
// RWMutex-guarded map keyed by a hash of the coordinate, making value
// lookups safe for concurrent use from multiple goroutines. Concurrent
// misses on the same coordinate may compute it more than once; all
// computations yield the identical value, so the store stays consistent.
func WithConcurrentCache() Option {
	return func(o *options) { o.concurrent = true }
}

// WithoutMemoization disables write-back of computed values. Lookups stay
// correct but every interior miss re-expands its dependency cone, costing
// O(row²) work per call instead of amortized O(1). Intended for callers
// that need a strictly read-only structure after construction.
func WithoutMemoization() Option {
	return func(o *options) { o.memoize = false }
}
