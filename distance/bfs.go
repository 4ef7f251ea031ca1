package distance

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// walker encapsulates mutable BFS state.
type walker struct {
	g     *grid.Grid
	opts  Options
	queue []grid.CellID
	res   *Map
}

// ComputeFrom runs breadth-first search over the links of g starting at
// root and returns the distance of every reached cell.
// Returns ErrGridNil, grid.ErrCellOutOfRange for a foreign root,
// ErrOptionViolation for bad options, or a wrapped OnVisit error.
func ComputeFrom(g *grid.Grid, root grid.CellID, opts ...Option) (*Map, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(root) {
		return nil, fmt.Errorf("distance: root %d: %w", root, grid.ErrCellOutOfRange)
	}

	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]grid.CellID, 0, g.Size()),
		res:   newMap(g, root),
	}
	w.enqueue(root, 0)

	return w.res, w.loop()
}

// enqueue records id at depth d and appends it to the queue.
func (w *walker) enqueue(id grid.CellID, d int) {
	w.res.set(id, d)
	w.queue = append(w.queue, id)
}

// loop drains the queue layer by layer.
func (w *walker) loop() error {
	for qi := 0; qi < len(w.queue); qi++ {
		id := w.queue[qi]
		depth := w.res.dist[id]
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("distance: OnVisit error at %d: %w", id, err)
		}
		next := depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, n := range w.g.Links(id) {
			if w.res.dist[n] < 0 {
				w.enqueue(n, next)
			}
		}
	}
	return nil
}
