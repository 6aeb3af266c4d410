// Package bfs provides breadth-first search over a heightmap.Grid,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	p     heightmap.Point
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *heightmap.Grid
	opts  BFSOptions
	ctx   context.Context
	queue []queueItem
	seen  []bool // indexed by Grid.Index
	buf   []heightmap.Point
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from source,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *heightmap.Grid, source heightmap.Point, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(source) {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, source)
	}

	n := g.Len()
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		seen:  make([]bool, n),
		res: &BFSResult{
			Source:  source,
			Reverse: o.Reverse,
			Order:   make([]heightmap.Point, 0, n),
			Depth:   make(map[heightmap.Point]int, n),
			Parent:  make(map[heightmap.Point]heightmap.Point, n),
		},
	}

	w.enqueue(source, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}
	return w.res, nil
}

// enqueue marks p seen at depth d and adds it to the queue.
func (w *walker) enqueue(p heightmap.Point, d int) {
	w.seen[w.grid.Index(p)] = true
	w.res.Depth[p] = d
	w.queue = append(w.queue, queueItem{p: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	// head index instead of reslicing keeps the backing array reusable
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.p)
		if err := w.opts.OnVisit(item.p, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.p, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	if w.opts.Reverse {
		w.buf = w.grid.AppendPredecessors(w.buf[:0], item.p)
	} else {
		w.buf = w.grid.AppendSuccessors(w.buf[:0], item.p)
	}
	for _, nbr := range w.buf {
		if w.seen[w.grid.Index(nbr)] {
			continue
		}
		w.res.Parent[nbr] = item.p
		w.enqueue(nbr, nextDepth)
	}
}
