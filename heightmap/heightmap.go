// Package heightmap provides an immutable elevation grid with the
// capped-ascent successor relation:
//
//   - a step moves one unit East, South, West or North
//   - a step may climb at most one elevation level
//   - a step may descend any number of levels
package heightmap

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice of cells,
// indexed rows[y][x]. It copies the input into a dense arena, so later
// mutation of rows does not affect the Grid.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrElevationRange, ErrStartCount,
// ErrEndCount, ErrRoleElevation or ErrInvalidRole when an invariant does not hold.
// Complexity: O(W×H) time and memory.
func New(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	g := &Grid{
		Width:  w,
		Height: h,
		cells:  make([]Cell, 0, w*h),
	}
	starts, ends := 0, 0
	for y, row := range rows {
		for x, c := range row {
			if c.Elevation > MaxElevation {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrElevationRange, c.Elevation, x, y)
			}
			switch c.Role {
			case RoleNormal:
			case RoleStart:
				if c.Elevation != MinElevation {
					return nil, fmt.Errorf("%w: start at (%d,%d) has elevation %d", ErrRoleElevation, x, y, c.Elevation)
				}
				starts++
				g.start = Point{X: x, Y: y}
			case RoleEnd:
				if c.Elevation != MaxElevation {
					return nil, fmt.Errorf("%w: end at (%d,%d) has elevation %d", ErrRoleElevation, x, y, c.Elevation)
				}
				ends++
				g.end = Point{X: x, Y: y}
			default:
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidRole, c.Role, x, y)
			}
			g.cells = append(g.cells, c)
		}
	}
	if starts != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrStartCount, starts)
	}
	if ends != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrEndCount, ends)
	}

	return g, nil
}

// MustNew is like New but panics if the rows violate a grid invariant.
// Intended for fixtures and callers that already validated their input.
func MustNew(rows [][]Cell) *Grid {
	g, err := New(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Start returns the start point.
func (g *Grid) Start() Point { return g.start }

// End returns the goal point.
func (g *Grid) End() Point { return g.end }

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Index maps p to its row-major offset y*Width + x. p must be in bounds.
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}

// Cell returns the cell at p, or false if p is out of bounds.
func (g *Grid) Cell(p Point) (Cell, bool) {
	if !g.InBounds(p) {
		return Cell{}, false
	}
	return g.cells[g.Index(p)], true
}

// Elevation returns the elevation at p, or false if p is out of bounds.
func (g *Grid) Elevation(p Point) (Elevation, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[g.Index(p)].Elevation, true
}

// Successors returns the in-bounds neighbors q of p with
// elevation(q) <= elevation(p)+1, in East, South, West, North order.
// Returns nil if p is out of bounds.
// Complexity: O(1).
func (g *Grid) Successors(p Point) []Point {
	return g.AppendSuccessors(nil, p)
}

// AppendSuccessors appends the successors of p to dst and returns the
// extended slice. Searches reuse one buffer across expansions with it.
func (g *Grid) AppendSuccessors(dst []Point, p Point) []Point {
	from, ok := g.Elevation(p)
	if !ok {
		return dst
	}
	for _, d := range directions {
		q := p.Add(d)
		to, ok := g.Elevation(q)
		if !ok {
			continue
		}
		if int(to) <= int(from)+1 {
			dst = append(dst, q)
		}
	}
	return dst
}

// Predecessors returns the in-bounds neighbors q of p that can step onto p,
// i.e. elevation(p) <= elevation(q)+1, in East, South, West, North order.
// Returns nil if p is out of bounds.
func (g *Grid) Predecessors(p Point) []Point {
	return g.AppendPredecessors(nil, p)
}

// AppendPredecessors appends the predecessors of p to dst and returns the
// extended slice.
func (g *Grid) AppendPredecessors(dst []Point, p Point) []Point {
	to, ok := g.Elevation(p)
	if !ok {
		return dst
	}
	for _, d := range directions {
		q := p.Add(d)
		from, ok := g.Elevation(q)
		if !ok {
			continue
		}
		if int(to) <= int(from)+1 {
			dst = append(dst, q)
		}
	}
	return dst
}

// Lowest returns every point whose elevation equals the grid minimum,
// in row-major order.
// Complexity: O(W×H).
func (g *Grid) Lowest() []Point {
	lowest := MaxElevation
	for _, c := range g.cells {
		if c.Elevation < lowest {
			lowest = c.Elevation
		}
	}
	var pts []Point
	for i, c := range g.cells {
		if c.Elevation == lowest {
			pts = append(pts, g.Coordinate(i))
		}
	}
	return pts
}

// String renders the grid in its textual map format, one row per line.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render renders the grid like String, replacing every cell of path except
// the start and end with '#'.
func (g *Grid) Render(path []Point) string {
	marked := make(map[int]struct{}, len(path))
	for _, p := range path {
		if g.InBounds(p) && p != g.start && p != g.end {
			marked[g.Index(p)] = struct{}{}
		}
	}
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height)
	for i, c := range g.cells {
		if _, ok := marked[i]; ok {
			sb.WriteByte('#')
		} else {
			sb.WriteByte(c.symbol())
		}
		if (i+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
