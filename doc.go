// Package hillclimb finds shortest climbs across elevation maps: from the
// start cell to the summit, and from the best of all the lowest cells.
//
// What is on the map?
//
//	A rectangular grid of elevations 'a' (lowest) … 'z' (highest), one
//	start 'S' (treated as 'a') and one end 'E' (treated as 'z'). A step moves
//	to a cardinal neighbour that is at most one level higher; descending any
//	number of levels is always allowed.
//
// Everything is organized under four packages:
//
//	heightmap/    Grid, Point, Cell, parsing and the step relation
//	astar/        A* search with a Manhattan heuristic (one start, one goal)
//	bfs/          breadth-first sweeps, forward or reversed, with parent links
//	multisource/  best start among every lowest cell, per-candidate or in one sweep
//
// Quick ASCII example:
//
//	Sabqponm        S#######
//	abcryxxl        ab######
//	accszExk   →    ac###E##    31 steps from S,
//	acctuvwj        ac######    29 from the best 'a'
//	abdefghi        ab######
//
// The cmd/hillclimb program wires them together:
//
//	go run ./cmd/hillclimb -path maps/day12.txt
package hillclimb
