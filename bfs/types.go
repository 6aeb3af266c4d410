// Package bfs provides tunable options and error definitions
// for breadth-first search over a heightmap.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the source lies outside the grid.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil grid pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a cell the traversal never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p heightmap.Point, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// Reverse traverses Grid.Predecessors instead of Grid.Successors.
	Reverse bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - forward direction
//   - no-op OnVisit hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:      context.Background(),
		OnVisit:  func(heightmap.Point, int) error { return nil },
		MaxDepth: 0,
		Reverse:  false,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p heightmap.Point, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithReverse walks the step relation backwards, so depths measure the
// distance from each cell to the source.
func WithReverse() Option {
	return func(o *BFSOptions) {
		o.Reverse = true
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Source: the root cell.
//   - Reverse: whether predecessors were followed.
//   - Order: cells visited, in visit sequence.
//   - Depth: map from cell to its distance (in steps) from/to the source.
//   - Parent: map from cell to its predecessor in the BFS tree.
type BFSResult struct {
	Source  heightmap.Point
	Reverse bool
	Order   []heightmap.Point
	Depth   map[heightmap.Point]int
	Parent  map[heightmap.Point]heightmap.Point
}

// PathTo reconstructs the walk between the source and dest, oriented in
// the direction of travel: source → dest for a forward traversal and
// dest → source for a reverse one.
// Returns ErrNoPath if dest was not reached.
func (r *BFSResult) PathTo(dest heightmap.Point) ([]heightmap.Point, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	// parent chain dest → source
	path := []heightmap.Point{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	if r.Reverse {
		return path, nil
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
