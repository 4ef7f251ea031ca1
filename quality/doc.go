// Package quality inspects a carved grid.Grid: link symmetry, the perfect
// maze property, dead ends and the longest path. Callers use the Report
// to decide whether a maze is interesting enough or should be carved
// again with another seed; that retry policy lives outside this package.
//
// Complexity: every check is O(R×C) except Analyze, which adds two
// breadth-first searches.
package quality
