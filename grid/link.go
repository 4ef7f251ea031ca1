package grid

import "fmt"

// direction finds d such that a's neighbor in d is b.
// Returns ErrCellOutOfRange, ErrSelfLink or ErrNotAdjacent on misuse.
func (g *Grid) direction(a, b CellID) (Direction, error) {
	if !g.Contains(a) {
		return 0, fmt.Errorf("%w: %d", ErrCellOutOfRange, a)
	}
	if !g.Contains(b) {
		return 0, fmt.Errorf("%w: %d", ErrCellOutOfRange, b)
	}
	if a == b {
		return 0, fmt.Errorf("%w: %d", ErrSelfLink, a)
	}
	for _, d := range Directions {
		if g.cells[a].neighbors[d] == b {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %d and %d", ErrNotAdjacent, a, b)
}

// Link opens a passage between a and b in both directions.
// Complexity: O(1).
func (g *Grid) Link(a, b CellID) error {
	d, err := g.direction(a, b)
	if err != nil {
		return err
	}
	g.cells[a].links |= 1 << d
	g.cells[b].links |= 1 << d.Opposite()
	return nil
}

// LinkDirected records a passage from a to b only. The relation is left
// asymmetric until the caller links b back to a.
func (g *Grid) LinkDirected(a, b CellID) error {
	d, err := g.direction(a, b)
	if err != nil {
		return err
	}
	g.cells[a].links |= 1 << d
	return nil
}

// Unlink closes the passage between a and b in both directions.
// Unlinking cells that are not linked is a no-op.
func (g *Grid) Unlink(a, b CellID) error {
	d, err := g.direction(a, b)
	if err != nil {
		return err
	}
	g.cells[a].links &^= 1 << d
	g.cells[b].links &^= 1 << d.Opposite()
	return nil
}

// UnlinkDirected removes the a→b half of a passage only.
func (g *Grid) UnlinkDirected(a, b CellID) error {
	d, err := g.direction(a, b)
	if err != nil {
		return err
	}
	g.cells[a].links &^= 1 << d
	return nil
}

// Linked reports whether a has a passage towards b.
// Invalid or non-adjacent pairs are simply not linked.
// Complexity: O(1).
func (g *Grid) Linked(a, b CellID) bool {
	d, err := g.direction(a, b)
	if err != nil {
		return false
	}
	return g.cells[a].HasLink(d)
}

// Links returns the cells a has passages towards, in the order
// north, south, east, west.
func (g *Grid) Links(id CellID) []CellID {
	if !g.Contains(id) {
		return nil
	}
	c := g.cells[id]
	out := make([]CellID, 0, 4)
	for _, d := range Directions {
		if c.HasLink(d) {
			out = append(out, c.neighbors[d])
		}
	}
	return out
}

// LinkCount returns the number of passages leaving id; zero for ids
// outside the grid.
func (g *Grid) LinkCount(id CellID) int {
	if !g.Contains(id) {
		return 0
	}
	return g.cells[id].LinkCount()
}

// TotalLinks counts adjacent pairs joined by a passage in at least one
// direction. For a symmetric link relation this is the number of
// undirected edges of the maze.
// Complexity: O(R×C).
func (g *Grid) TotalLinks() int {
	total := 0
	for _, c := range g.cells {
		for _, d := range [2]Direction{South, East} {
			n := c.neighbors[d]
			if n == NoCell {
				continue
			}
			if c.HasLink(d) || g.cells[n].HasLink(d.Opposite()) {
				total++
			}
		}
	}
	return total
}
