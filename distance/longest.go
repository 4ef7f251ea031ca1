package distance

import (
	"github.com/katalvlaran/labyrinth/grid"
)

// LongestPathResult describes one approximate diameter of a maze.
type LongestPathResult struct {
	// Start is the cell the first search ran from.
	Start grid.CellID
	// FirstPass is the eccentricity of Start: distance(Start, From).
	FirstPass int
	// From and To are the two poles; To is farthest from From.
	From, To grid.CellID
	// Length is distance(From, To). Length >= FirstPass always holds.
	Length int
	// Path holds the breadcrumbs from From to To.
	Path *Map
}

// LongestPath approximates the diameter of the component containing
// start with a double breadth-first search: the farthest cell from start
// becomes pole From, and the farthest cell from From becomes pole To.
//
// The path returned is a longest path, not the longest: several cells may
// tie for the maximum distance, and on graphs with cycles the double
// search is a heuristic lower bound on the diameter.
func LongestPath(g *grid.Grid, start grid.CellID) (*LongestPathResult, error) {
	first, err := ComputeFrom(g, start)
	if err != nil {
		return nil, err
	}
	from, firstPass := first.Farthest()

	second, err := ComputeFrom(g, from)
	if err != nil {
		return nil, err
	}
	to, length := second.Farthest()

	path, err := second.PathTo(to)
	if err != nil {
		return nil, err
	}

	return &LongestPathResult{
		Start:     start,
		FirstPass: firstPass,
		From:      from,
		To:        to,
		Length:    length,
		Path:      path,
	}, nil
}
