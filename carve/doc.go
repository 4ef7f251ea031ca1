// Package carve turns a fresh, unlinked grid.Grid into a maze by opening
// passages between neighboring cells.
//
// What:
//
//   - Four interchangeable algorithms behind one interface:
//     BinaryTree, AldousBroder, RecursiveBacktracker, RecursiveDivision.
//   - A closed Kind enum dispatches to them; ParseKind reads names.
//   - Generate builds, seeds and carves in one call.
//
// Traits:
//
//   - BinaryTree:           perfect; O(R×C); corridors along the north row
//     and east column.
//   - AldousBroder:         perfect and unbiased; random walk with coupon
//     collector cost. Runtime is unbounded in theory and converges in
//     practice; size test timeouts accordingly for large grids.
//   - RecursiveBacktracker: perfect; long winding corridors, few short
//     dead ends.
//   - RecursiveDivision:    rooms and straight walls; cycles are allowed.
//
// Determinism:
//
//	Every algorithm draws exclusively from the *rand.Rand it is given.
//	NewRand applies the seed policy (seed==0 ⇒ DefaultSeed), so the same
//	(rows, columns, kind, seed) always produces bit-identical links.
//
// Errors:
//
//   - ErrNilGrid, ErrNilRand: missing inputs.
//   - ErrUnknownKind:         Kind outside the closed set.
//   - grid.ErrInvalidDimensions from Generate.
//
// Concurrency:
//
//	*rand.Rand is not goroutine-safe and neither is grid.Grid. One Apply
//	call owns both for its duration.
package carve
