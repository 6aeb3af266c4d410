// Package heightmap models a rectangular elevation map as an implicit,
// directed graph over grid coordinates.
//
// What:
//
//   - Grid stores a dense, row-major arena of Cells plus the cached Start and
//     End points. It is immutable once built and safe for concurrent readers.
//   - Successors yields the cells reachable in one step: the four cardinal
//     neighbors (East, South, West, North) whose elevation is at most one
//     level above the current cell. Descent is unconstrained.
//   - Predecessors yields the reverse relation, used by searches rooted at
//     the goal.
//   - Parse reads the textual map format: 'a'..'z' for elevations, 'S' for
//     the start (elevation 'a') and 'E' for the end (elevation 'z').
//
// Why:
//
//   - Nodes are addressed by value (Point), so no pointer graph is ever
//     materialized and search state can live in flat slices indexed by
//     Grid.Index.
//
// Complexity:
//
//   - New, Parse:    O(W×H) time and memory.
//   - Successors:    O(1) (at most 4 neighbors).
//   - Lowest:        O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:       no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrElevationRange:  a cell elevation lies outside [MinElevation, MaxElevation].
//   - ErrStartCount:      the grid does not contain exactly one Start cell.
//   - ErrEndCount:        the grid does not contain exactly one End cell.
//   - ErrRoleElevation:   Start is not at MinElevation or End is not at MaxElevation.
//   - ErrInvalidSymbol:   Parse met a byte outside the map alphabet.
package heightmap
