// Package astar defines core types and configuration options
// for A* search over a heightmap.Grid.
//
// Options:
//
//	– Ctx:       context checked once per expansion; cancellation aborts the search.
//	– Heuristic: estimate of the remaining steps to the goal (default: Manhattan).
//	– OnExpand:  hook called each time a node is expanded.
//	– MaxCost:   optional cap on path length; nodes beyond it are never expanded.
//
// Errors (sentinel):
//
//	– ErrNilGrid          if the provided grid pointer is nil.
//	– ErrStartOutOfBounds if the start point lies outside the grid.
//	– ErrOptionViolation  if an Option received an invalid argument.
package astar

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *heightmap.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds indicates that the start point is not a grid cell.
	ErrStartOutOfBounds = errors.New("astar: start point out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the number of steps from p to the goal.
// It must never overestimate for Search to return optimal paths; it need
// not be consistent, at the price of re-expanding nodes.
type Heuristic func(p heightmap.Point) int

// Manhattan returns the Manhattan-distance heuristic for goal. Every step
// moves one unit along one axis, so it is admissible and consistent.
func Manhattan(goal heightmap.Point) Heuristic {
	return func(p heightmap.Point) int {
		return p.Manhattan(goal)
	}
}

// Zero is the null heuristic; with it Search degrades to uniform-cost search.
func Zero(heightmap.Point) int { return 0 }

// Options configures a single Search call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Heuristic overrides the default Manhattan estimate to the grid's end.
	Heuristic Heuristic

	// OnExpand is called each time a node is expanded, with its cost from start.
	// Only an inconsistent heuristic makes a node expand more than once.
	OnExpand func(p heightmap.Point, cost int)

	// MaxCost bounds the path length explored. Default is math.MaxInt (no cap).
	MaxCost int

	// internal error recorded during option parsing
	err error
}

// Option configures Search via functional arguments.
// If an Option is invalid it is recorded and surfaced as ErrOptionViolation
// when Search is invoked.
type Option func(*Options)

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - nil Heuristic (Manhattan distance to the grid's end)
//   - no-op OnExpand
//   - no cost cap
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: nil,
		OnExpand:  func(heightmap.Point, int) {},
		MaxCost:   math.MaxInt,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic replaces the default heuristic.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a callback run each time a node is expanded.
func WithOnExpand(fn func(p heightmap.Point, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxCost stops the search from expanding nodes whose cost exceeds c.
// A negative c is recorded as ErrOptionViolation.
func WithMaxCost(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// Result is the outcome of a Search.
//   - Found: whether the goal was reached.
//   - Path: start → goal inclusive when Found, nil otherwise.
//   - Expanded: number of nodes finalized.
type Result struct {
	Path     []heightmap.Point
	Found    bool
	Expanded int
}

// Steps returns the number of unit moves on the path, or -1 when not found.
func (r Result) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
