// Package labyrinth generates seeded mazes on rectangular grids and
// measures distances through them.
//
// What is inside:
//
//	grid/       Cell and Grid: an arena of cells, neighbor slots and carved links
//	carve/      Binary Tree, Aldous–Broder, Recursive Backtracker, Recursive Division
//	distance/   BFS distance maps, path reconstruction, longest path (double BFS)
//	quality/    symmetry and perfect-maze checks, dead ends, one-call Report
//	cmd/mazestat  command line front end printing a maze's Report
//
// Why:
//
//   - Reproducible: the same rows, columns, algorithm and seed always carve
//     the same maze; randomness flows through an explicit *rand.Rand.
//   - Pure Go: no cgo, no globals, no logging in library code.
//   - Small and closed: four algorithms behind one interface.
//
// Quick ASCII example of a 2×3 perfect maze:
//
//	+---+---+---+
//	|           |
//	+---+---+   +
//	|           |
//	+---+---+---+
//
// has 5 passages for 6 cells: a spanning tree.
//
//	go get github.com/katalvlaran/labyrinth
package labyrinth
