// Package heightmap defines core types and sentinel errors
// for elevation grids.
package heightmap

import (
	"errors"
	"strconv"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("heightmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrElevationRange indicates a cell elevation outside [MinElevation, MaxElevation].
	ErrElevationRange = errors.New("heightmap: elevation out of range")
	// ErrStartCount indicates zero or several Start cells.
	ErrStartCount = errors.New("heightmap: grid must contain exactly one start cell")
	// ErrEndCount indicates zero or several End cells.
	ErrEndCount = errors.New("heightmap: grid must contain exactly one end cell")
	// ErrRoleElevation indicates a Start or End cell with the wrong elevation.
	ErrRoleElevation = errors.New("heightmap: start must be at minimum and end at maximum elevation")
	// ErrInvalidRole indicates a cell Role outside RoleNormal, RoleStart and RoleEnd.
	ErrInvalidRole = errors.New("heightmap: invalid cell role")
	// ErrInvalidSymbol indicates a byte outside the map alphabet.
	ErrInvalidSymbol = errors.New("heightmap: invalid map symbol")
)

// Elevation is a cell height in [MinElevation, MaxElevation].
type Elevation uint8

const (
	// MinElevation is the lowest level, written 'a'.
	MinElevation Elevation = 0
	// MaxElevation is the highest level, written 'z'.
	MaxElevation Elevation = 25
)

// Role tags the two distinguished cells of a grid.
type Role int

const (
	// RoleNormal marks an ordinary cell.
	RoleNormal Role = iota
	// RoleStart marks the single start cell.
	RoleStart
	// RoleEnd marks the single goal cell.
	RoleEnd
)

// Point is a grid coordinate. X grows to the East, Y grows to the South.
type Point struct {
	X, Y int
}

// String formats p as "x,y".
func (p Point) String() string {
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) Manhattan(q Point) int {
	return absInt(p.X-q.X) + absInt(p.Y-q.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cell is a single grid cell.
type Cell struct {
	Elevation Elevation
	Role      Role
	Symbol    byte // display character; zero renders as the elevation letter
}

// NormalCell returns a RoleNormal cell at elevation e.
func NormalCell(e Elevation) Cell {
	return Cell{Elevation: e, Role: RoleNormal}
}

// StartCell returns the start cell, pinned to MinElevation.
func StartCell() Cell {
	return Cell{Elevation: MinElevation, Role: RoleStart, Symbol: 'S'}
}

// EndCell returns the end cell, pinned to MaxElevation.
func EndCell() Cell {
	return Cell{Elevation: MaxElevation, Role: RoleEnd, Symbol: 'E'}
}

// symbol returns the character used to render c.
func (c Cell) symbol() byte {
	if c.Symbol != 0 {
		return c.Symbol
	}
	return 'a' + byte(c.Elevation)
}

// directions lists the cardinal offsets in successor order: East, South, West, North.
var directions = [4]Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid is an immutable elevation map. Width and Height define dimensions;
// cells holds the row-major arena, cells[y*Width+x].
type Grid struct {
	Width, Height int
	cells         []Cell
	start, end    Point
}
