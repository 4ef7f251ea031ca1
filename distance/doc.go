// Package distance computes unweighted shortest-path distances over the
// passages of a carved grid.Grid.
//
// What
//
//   - ComputeFrom runs a breadth-first search from a root cell and returns
//     a Map from every reachable cell to its hop count.
//   - Map.PathTo walks back from a goal to the root and returns the
//     breadcrumbs: a Map restricted to one shortest path.
//   - Map.Farthest reports the most distant cell (first discovered wins ties).
//   - LongestPath chains two searches to approximate the maze diameter.
//
// Why
//
//   - Gameplay: distance-to-goal display, placing the exit far from the start.
//   - Maze quality: a long diameter means a maze worth walking.
//
// Determinism
//
//	Links are enumerated north, south, east, west, so discovery order,
//	tie breaking in Farthest and the path chosen by PathTo are all fixed
//	for a given grid.
//
// Complexity (N = cells, every cell has at most 4 links)
//
//   - ComputeFrom: O(N) time and memory.
//   - PathTo:      O(distance(goal)) time, O(N) memory.
//   - Farthest:    O(reached cells).
//   - LongestPath: three of the above.
//
// Options
//
//   - WithMaxDepth(d): stop expanding beyond depth d (>0); 0 means no limit.
//   - WithOnVisit(fn): called for every reached cell; an error aborts.
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrOptionViolation    for invalid options (negative depth).
//   - grid.ErrCellOutOfRange for a root or goal outside the grid, which is
//     how ids borrowed from another grid usually surface. Ids that happen
//     to fall inside this grid cannot be told apart: passing cells from a
//     different grid is a precondition violation.
//   - ErrGoalUnreachable    when PathTo cannot walk back to the root.
//
// The breadcrumbs returned with ErrGoalUnreachable are still valid: they
// hold whatever part of the walk succeeded and never contain the root.
package distance
