// Package multisource defines options, strategies and results for
// shortest-path queries that start from every lowest cell of a grid.
package multisource

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors returned by Run.
var (
	// ErrNilGrid indicates that a nil *heightmap.Grid was passed to Run.
	ErrNilGrid = errors.New("multisource: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("multisource: invalid option supplied")

	// ErrUnknownStrategy is returned by ParseStrategy for an unrecognized name.
	ErrUnknownStrategy = errors.New("multisource: unknown strategy")
)

// Strategy selects how candidate starts are evaluated.
type Strategy int

const (
	// PerCandidate runs one independent A* search per candidate.
	PerCandidate Strategy = iota
	// ReverseSweep runs a single reverse BFS rooted at the goal and reads
	// every candidate's distance from it.
	ReverseSweep
)

// String returns the configuration name of s.
func (s Strategy) String() string {
	switch s {
	case PerCandidate:
		return "per-candidate"
	case ReverseSweep:
		return "reverse"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a configuration name ("per-candidate" or "reverse")
// to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "per-candidate", "":
		return PerCandidate, nil
	case "reverse":
		return ReverseSweep, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Options configures Run.
type Options struct {
	// Strategy picks the evaluation strategy. Default PerCandidate.
	Strategy Strategy

	// Workers bounds concurrent candidate searches. Default runtime.NumCPU().
	Workers int

	// Timeout, if > 0, bounds each candidate search; a candidate that runs
	// out of time counts as unreachable. Under ReverseSweep it bounds the
	// single sweep.
	Timeout time.Duration

	// internal error recorded during option parsing
	err error
}

// Option configures Run via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with PerCandidate, one worker per CPU and
// no timeout.
func DefaultOptions() Options {
	return Options{
		Strategy: PerCandidate,
		Workers:  runtime.NumCPU(),
		Timeout:  0,
	}
}

// WithStrategy selects the evaluation strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != PerCandidate && s != ReverseSweep {
			o.err = fmt.Errorf("%w: strategy %v", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithWorkers sets the number of concurrent candidate searches (n >= 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithTimeout bounds every candidate search by d. Zero disables the limit;
// negative values are rejected.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: timeout cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}

// Result is the aggregated outcome of a multi-source query.
//   - Start: the winning candidate (lowest row-major position among ties).
//   - Path: a shortest path from Start to the goal when Found.
//   - Candidates: number of lowest-elevation cells considered.
//   - Reached: candidates with a path to the goal.
//   - TimedOut: candidates dropped because their search ran out of time.
type Result struct {
	Start      heightmap.Point
	Path       []heightmap.Point
	Found      bool
	Candidates int
	Reached    int
	TimedOut   int
}

// Steps returns the length of the best path, or -1 when no candidate reached the goal.
func (r Result) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
