// Package distance provides tunable options, error definitions and the
// Map type for breadth-first distance queries over a grid.Grid.
package distance

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/labyrinth/grid"
)

// Sentinel errors for distance queries.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("distance: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")

	// ErrGoalUnreachable is returned when PathTo cannot reach the root.
	ErrGoalUnreachable = errors.New("distance: goal unreachable from root")
)

// Option configures ComputeFrom via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for a search.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	// OnVisit is called for each reached cell in discovery order.
	// Returning an error aborts the search.
	OnVisit func(id grid.CellID, depth int) error

	err error
}

// DefaultOptions returns Options with no depth limit and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxDepth: 0,
		OnVisit:  func(grid.CellID, int) error { return nil },
	}
}

// WithMaxDepth limits the search to depth d.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a visit hook; nil leaves the default.
func WithOnVisit(fn func(id grid.CellID, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Map records the hop count of cells from a root. It is immutable once
// returned; a cell without an entry was not reached.
type Map struct {
	g     *grid.Grid
	root  grid.CellID
	dist  []int         // -1 = absent
	order []grid.CellID // entries by ascending distance, discovery order within a layer
}

// newMap returns an empty Map over g rooted at root.
func newMap(g *grid.Grid, root grid.CellID) *Map {
	dist := make([]int, g.Size())
	for i := range dist {
		dist[i] = -1
	}
	return &Map{g: g, root: root, dist: dist}
}

// set records d for id; the caller adds ids in ascending distance.
func (m *Map) set(id grid.CellID, d int) {
	m.dist[id] = d
	m.order = append(m.order, id)
}

// Root returns the cell the distances are measured from.
func (m *Map) Root() grid.CellID { return m.root }

// Grid returns the grid the map was computed over.
func (m *Map) Grid() *grid.Grid { return m.g }

// Len returns the number of cells with a distance.
func (m *Map) Len() int { return len(m.order) }

// Get returns the distance of id and whether it is recorded.
func (m *Map) Get(id grid.CellID) (int, bool) {
	if !m.g.Contains(id) || m.dist[id] < 0 {
		return 0, false
	}
	return m.dist[id], true
}

// Contains reports whether id has a distance.
func (m *Map) Contains(id grid.CellID) bool {
	_, ok := m.Get(id)
	return ok
}

// Cells returns the recorded cells by ascending distance. For breadcrumbs
// this is the path from the root to the goal.
func (m *Map) Cells() []grid.CellID {
	out := make([]grid.CellID, len(m.order))
	copy(out, m.order)
	return out
}

// All yields every (cell, distance) entry in the order of Cells.
func (m *Map) All() iter.Seq2[grid.CellID, int] {
	return func(yield func(grid.CellID, int) bool) {
		for _, id := range m.order {
			if !yield(id, m.dist[id]) {
				return
			}
		}
	}
}
