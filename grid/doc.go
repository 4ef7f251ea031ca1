// Package grid treats a rectangular maze as a graph of cells joined by
// carved passages ("links").
//
// What:
//
//   - Grid owns a dense, row-major arena of Cells addressed by CellID.
//   - Each Cell records its fixed position, its four positional neighbors
//     (NoCell at the boundary) and a link set holding the open passages.
//   - Links only join positionally adjacent cells, so the link set is a
//     per-direction mask and link iteration order is fixed: N, S, E, W.
//   - Tiles (floor/wall/...) are derived from link topology, never stored.
//
// Why:
//
//   - Maze generators mutate links in place; distance queries read them.
//   - Indices instead of pointers keep the cyclic neighbor graph free of
//     aliasing and make the whole maze trivially comparable in tests.
//
// Complexity:
//
//   - New:                 O(R×C) time and memory.
//   - CellAt, Link, Linked: O(1).
//   - EachCell, EachRow:    O(R×C), lazy and restartable.
//
// Errors:
//
//   - ErrInvalidDimensions: rows or columns ≤ 0.
//   - ErrCellOutOfRange:    CellID not inside this grid's arena.
//   - ErrSelfLink:          attempt to link a cell to itself.
//   - ErrNotAdjacent:       attempt to link cells that are not neighbors.
//
// Concurrency:
//
//	A Grid is not synchronized. It belongs to whoever built it; do not
//	carve and query the same Grid from different goroutines.
package grid
