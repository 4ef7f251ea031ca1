package distance

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// PathTo reconstructs a shortest path from the root to goal by walking
// back through links with a strictly smaller distance, taking the first
// such link in north, south, east, west order.
//
// The result is a Map holding only the path cells, with their original
// distances; Len() == distance(goal)+1 on success.
//
// If goal has no distance, or the walk hits a cell with no smaller
// linked neighbor (links changed after the map was computed), PathTo
// returns the breadcrumbs gathered so far, which never contain the
// root, together with ErrGoalUnreachable. Callers may branch on either.
func (m *Map) PathTo(goal grid.CellID) (*Map, error) {
	if !m.g.Contains(goal) {
		return nil, fmt.Errorf("distance: goal %d: %w", goal, grid.ErrCellOutOfRange)
	}
	crumbs := newMap(m.g, m.root)
	d, ok := m.Get(goal)
	if !ok {
		return crumbs, fmt.Errorf("%w: %d has no distance", ErrGoalUnreachable, goal)
	}

	walked := []grid.CellID{goal}
	current := goal
	for current != m.root {
		next := grid.NoCell
		for _, n := range m.g.Links(current) {
			if nd, ok := m.Get(n); ok && nd < m.dist[current] {
				next = n
				break
			}
		}
		if next == grid.NoCell {
			fillReversed(crumbs, m, walked)
			return crumbs, fmt.Errorf("%w: stuck at %d (distance %d of %d)", ErrGoalUnreachable, current, m.dist[current], d)
		}
		walked = append(walked, next)
		current = next
	}
	fillReversed(crumbs, m, walked)

	return crumbs, nil
}

// fillReversed copies distances for walked (goal first) into dst in
// ascending-distance order.
func fillReversed(dst, src *Map, walked []grid.CellID) {
	for i := len(walked) - 1; i >= 0; i-- {
		id := walked[i]
		dst.set(id, src.dist[id])
	}
}

// Farthest returns the cell with the greatest distance and that distance.
// Ties go to the cell discovered first; a map holding only the root
// returns (root, 0).
func (m *Map) Farthest() (grid.CellID, int) {
	best, far := m.root, 0
	for _, id := range m.order {
		if d := m.dist[id]; d > far {
			best, far = id, d
		}
	}
	return best, far
}
