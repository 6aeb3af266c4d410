// Package bfs provides breadth-first search over the implicit graph of a
// heightmap.Grid, returning unweighted shortest-path distances, parent
// links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing step count from a source cell.
//   - Forward direction follows Grid.Successors: Depth[p] is the number of
//     steps from the source to p.
//   - Reverse direction (WithReverse) follows Grid.Predecessors: Depth[p] is
//     the number of steps from p to the source. Rooted at the grid's end,
//     a single reverse sweep yields the distance to the goal from every cell
//     that can reach it.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance in steps
//   - Parent: map from cell → its predecessor in the BFS tree
//   - Supports an OnVisit hook (may abort with an error) and a MaxDepth limit.
//
// Why
//
//   - Unit-cost edges make plain BFS an exact shortest-path oracle, which is
//     what the A* engine is checked against.
//   - The reverse sweep answers "closest lowest cell to the goal" in one
//     O(W×H) pass instead of one search per candidate.
//
// Determinism
//
//	Neighbors are enqueued in East, South, West, North order, so the visit
//	sequence and parent links are fully reproducible.
//
// Complexity (N = W×H)
//
//   - Time:   O(N)   (each cell and each of its ≤4 edges seen at most once)
//   - Memory: O(N)   (queue, Depth map, Parent map)
//
// Usage
//
//	res, err := bfs.BFS(g, g.End(), bfs.WithReverse())
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or a hook error
//	}
//	steps, ok := res.Depth[p]
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no depth limit, forward.
//   - WithContext(ctx):  set a custom context for cancellation.
//   - WithMaxDepth(d):   stop exploring beyond depth d (>0).
//   - WithReverse():     traverse the reverse step relation.
//   - WithOnVisit(fn):   hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the grid pointer is nil.
//   - ErrStartVertexNotFound  if the source lies outside the grid.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
