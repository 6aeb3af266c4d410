// Package astar implements A* search over the implicit graph of a
// heightmap.Grid, from any start cell to the grid's end cell.
//
// Every step costs one. A node is re-expanded whenever a cheaper path to it
// turns up, so any admissible heuristic yields an optimal path; with a
// consistent one (the default Manhattan estimate) that never happens and
// each node is expanded at most once.
//
// Complexity (N = reachable cells):
//
//   - Time:  O(N log N)
//   - Space: O(N) for the dense cost/predecessor arrays, O(4N) worst case
//     for the heap under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Frontier ties on f are broken by insertion order, so equal inputs
//     always produce the same path.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when popped.
//   - There is no closed set: an entry is stale only when its cost exceeds
//     the best known cost of its node.
//   - Search state lives in slices indexed by Grid.Index; nothing is shared
//     between calls, so concurrent searches over one Grid are safe.
package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/hillclimb/heightmap"
)

// noPrev marks a cell without predecessor.
const noPrev = -1

// Search finds a shortest path from start to g.End().
//
// Returns:
//
//   - Result{Found: true, Path: ...} when a path exists.
//   - Result{Found: false} and a nil error when the goal is unreachable
//     (or lies beyond MaxCost).
//   - err: ErrNilGrid, ErrStartOutOfBounds, ErrOptionViolation, or the
//     context error if the search was cancelled.
func Search(g *heightmap.Grid, start heightmap.Point, opts ...Option) (Result, error) {
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
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	if cfg.Heuristic == nil {
		cfg.Heuristic = Manhattan(g.End())
	}

	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		goal:    g.Index(g.End()),
		best:    make([]int, n),
		prev:    make([]int, n),
		pq:      make(frontier, 0, 64),
	}
	r.init(start)
	found, err := r.process()
	if err != nil {
		return Result{}, err
	}
	if !found {
		return Result{Expanded: r.expanded}, nil
	}

	return Result{
		Path:     r.path(),
		Found:    true,
		Expanded: r.expanded,
	}, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g        *heightmap.Grid // read-only within Search
	options  Options
	goal     int    // row-major index of the goal
	best     []int  // index → best known cost from start
	prev     []int  // index → predecessor index on the best known path
	pq       frontier
	seq      uint64 // insertion counter for tie-breaking
	expanded int
	buf      []heightmap.Point // successor scratch buffer
}

// init resets all costs to +∞ and seeds the frontier with start at cost 0.
func (r *runner) init(start heightmap.Point) {
	for i := range r.best {
		r.best[i] = math.MaxInt
		r.prev[i] = noPrev
	}
	s := r.g.Index(start)
	r.best[s] = 0
	heap.Init(&r.pq)
	r.push(s, start, 0)
}

// push inserts a frontier entry for index i at cost c.
func (r *runner) push(i int, p heightmap.Point, c int) {
	heap.Push(&r.pq, &item{
		idx:  i,
		cost: c,
		f:    c + r.options.Heuristic(p),
		seq:  r.seq,
	})
	r.seq++
}

// process pops frontier entries until the goal is finalized or the
// frontier is exhausted. It reports whether the goal was reached.
func (r *runner) process() (bool, error) {
	ctx := r.options.Ctx
	for r.pq.Len() > 0 {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}

		it := heap.Pop(&r.pq).(*item)
		// Stale entry: a cheaper one was pushed since.
		if it.cost > r.best[it.idx] {
			continue
		}
		if it.cost > r.options.MaxCost {
			continue
		}
		r.expanded++
		p := r.g.Coordinate(it.idx)
		r.options.OnExpand(p, it.cost)

		if it.idx == r.goal {
			return true, nil
		}
		r.relax(p, it.idx, it.cost)
	}

	return false, nil
}

// relax offers cost+1 to every successor of p, reopening any that improve.
func (r *runner) relax(p heightmap.Point, u, cost int) {
	next := cost + 1
	if next > r.options.MaxCost {
		return
	}
	r.buf = r.g.AppendSuccessors(r.buf[:0], p)
	for _, q := range r.buf {
		v := r.g.Index(q)
		if next >= r.best[v] {
			continue
		}
		r.best[v] = next
		r.prev[v] = u
		r.push(v, q, next)
	}
}

// path walks predecessors back from the goal and returns start → goal.
func (r *runner) path() []heightmap.Point {
	var rev []heightmap.Point
	for at := r.goal; at != noPrev; at = r.prev[at] {
		rev = append(rev, r.g.Coordinate(at))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// item is a frontier entry.
type item struct {
	idx  int    // row-major cell index
	cost int    // g: cost from start when pushed
	f    int    // cost + heuristic
	seq  uint64 // insertion order
}

// frontier is a min-heap of *item ordered by f, then by insertion order.
type frontier []*item

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
