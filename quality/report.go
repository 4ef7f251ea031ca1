package quality

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/distance"
	"github.com/katalvlaran/labyrinth/grid"
)

// Point is a (row, column) position.
type Point struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Report summarizes one maze.
type Report struct {
	Rows      int  `json:"rows"`
	Columns   int  `json:"columns"`
	Links     int  `json:"links"`
	DeadEnds  int  `json:"dead_ends"`
	Walled    int  `json:"walled"`
	Perfect   bool `json:"perfect"`
	Connected bool `json:"connected"`

	// Reachable counts cells reachable from Start.
	Start     Point `json:"start"`
	Reachable int   `json:"reachable"`

	// Longest path found by the double search from Start; FirstPass is
	// the eccentricity of Start.
	From      Point   `json:"from"`
	To        Point   `json:"to"`
	Length    int     `json:"length"`
	FirstPass int     `json:"first_pass"`
	Path      []Point `json:"path,omitempty"`
}

// Analyze builds a Report for g, measuring distances from start.
func Analyze(g *grid.Grid, start grid.CellID) (Report, error) {
	if g == nil {
		return Report{}, ErrGridNil
	}
	perfect, err := IsPerfect(g)
	if err != nil {
		return Report{}, err
	}
	lp, err := distance.LongestPath(g, start)
	if err != nil {
		return Report{}, fmt.Errorf("quality: longest path: %w", err)
	}
	reach, err := distance.ComputeFrom(g, start)
	if err != nil {
		return Report{}, fmt.Errorf("quality: distances: %w", err)
	}

	point := func(id grid.CellID) Point {
		r, c := g.Coordinate(id)
		return Point{Row: r, Column: c}
	}
	path := make([]Point, 0, lp.Path.Len())
	for _, id := range lp.Path.Cells() {
		path = append(path, point(id))
	}

	return Report{
		Rows:      g.Rows(),
		Columns:   g.Columns(),
		Links:     g.TotalLinks(),
		DeadEnds:  len(DeadEnds(g)),
		Walled:    len(Walled(g)),
		Perfect:   perfect,
		Connected: Connected(g),
		Start:     point(start),
		From:      point(lp.From),
		To:        point(lp.To),
		Length:    lp.Length,
		FirstPass: lp.FirstPass,
		Path:      path,
		Reachable: reach.Len(),
	}, nil
}
