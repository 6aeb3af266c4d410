// Package multisource answers "what is the shortest climb to the summit
// from any of the lowest cells?".
//
// Two equivalent strategies are provided:
//
//   - PerCandidate: one independent astar.Search per lowest cell, run on a
//     bounded errgroup and reduced to the minimum. O(C × search).
//   - ReverseSweep: one bfs.BFS rooted at the goal over the reverse step
//     relation, then a minimum over the candidates' depths. O(W×H).
//
// Both pick the same Start and report the same Steps, Found and Reached.
package multisource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/bfs"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/internal/ctxlog"
)

// Candidates returns every cell at the grid's minimum elevation, in
// row-major order. The start cell is always among them.
func Candidates(g *heightmap.Grid) []heightmap.Point {
	return g.Lowest()
}

// Run evaluates every candidate start against g.End() and returns the best.
// NotFound is reported as Result{Found: false} with a nil error.
// Errors: ErrNilGrid, ErrOptionViolation, or the context error when ctx is
// cancelled or its deadline passes.
func Run(ctx context.Context, g *heightmap.Grid, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	cands := Candidates(g)
	ctxlog.FromContext(ctx).Debug("Multi-source run started.",
		"strategy", cfg.Strategy.String(), "candidates", len(cands), "workers", cfg.Workers)

	if cfg.Strategy == ReverseSweep {
		return runReverse(ctx, g, cands, cfg)
	}
	return runPerCandidate(ctx, g, cands, cfg)
}

// outcome is the slot one candidate search writes its result into.
type outcome struct {
	steps    int // -1 when not found
	path     []heightmap.Point
	timedOut bool
}

// runPerCandidate searches each candidate independently. Every goroutine
// owns exactly one outcome slot, so the reduction needs no locking.
func runPerCandidate(ctx context.Context, g *heightmap.Grid, cands []heightmap.Point, cfg Options) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	outcomes := make([]outcome, len(cands))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i, c := range cands {
		i, c := i, c
		eg.Go(func() error {
			searchCtx, cancel := egCtx, context.CancelFunc(func() {})
			if cfg.Timeout > 0 {
				searchCtx, cancel = context.WithTimeout(egCtx, cfg.Timeout)
			}
			defer cancel()

			res, err := astar.Search(g, c, astar.WithContext(searchCtx))
			switch {
			case err == nil:
			case errors.Is(err, context.DeadlineExceeded) && egCtx.Err() == nil:
				logger.Debug("Candidate search timed out.", "start", c.String(), "timeout", cfg.Timeout)
				outcomes[i] = outcome{steps: -1, timedOut: true}
				return nil
			default:
				return fmt.Errorf("multisource: candidate %v: %w", c, err)
			}

			logger.Debug("Candidate searched.",
				"start", c.String(), "found", res.Found, "steps", res.Steps(), "expanded", res.Expanded)
			outcomes[i] = outcome{steps: res.Steps(), path: res.Path}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	out := Result{Candidates: len(cands)}
	best := -1
	for i, o := range outcomes {
		if o.timedOut {
			out.TimedOut++
			continue
		}
		if o.steps < 0 {
			continue
		}
		out.Reached++
		if best < 0 || o.steps < outcomes[best].steps {
			best = i
		}
	}
	if best >= 0 {
		out.Start = cands[best]
		out.Path = outcomes[best].path
		out.Found = true
	}
	logDone(logger, out)

	return out, nil
}

// runReverse computes all distances to the goal in one reverse sweep.
func runReverse(ctx context.Context, g *heightmap.Grid, cands []heightmap.Point, cfg Options) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	sweepCtx, cancel := ctx, context.CancelFunc(func() {})
	if cfg.Timeout > 0 {
		sweepCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
	}
	defer cancel()

	out := Result{Candidates: len(cands)}
	sweep, err := bfs.BFS(g, g.End(), bfs.WithReverse(), bfs.WithContext(sweepCtx))
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		logger.Debug("Reverse sweep timed out.", "timeout", cfg.Timeout)
		out.TimedOut = len(cands)
		return out, nil
	default:
		return Result{}, fmt.Errorf("multisource: reverse sweep: %w", err)
	}

	best, bestDepth := -1, 0
	for i, c := range cands {
		d, ok := sweep.Depth[c]
		if !ok {
			continue
		}
		out.Reached++
		if best < 0 || d < bestDepth {
			best, bestDepth = i, d
		}
	}
	if best >= 0 {
		path, err := sweep.PathTo(cands[best])
		if err != nil {
			return Result{}, fmt.Errorf("multisource: reverse sweep: %w", err)
		}
		out.Start = cands[best]
		out.Path = path
		out.Found = true
	}
	logDone(logger, out)

	return out, nil
}

func logDone(logger *slog.Logger, r Result) {
	logger.Debug("Multi-source run finished.",
		"found", r.Found, "steps", r.Steps(), "start", r.Start.String(),
		"reached", r.Reached, "timed_out", r.TimedOut)
}
