package grid

import (
	"fmt"
	"iter"
	"math/rand"
)

// New builds a rows×columns grid with every neighbor slot wired and no
// links. Returns ErrInvalidDimensions if rows ≤ 0 or columns ≤ 0.
// Complexity: O(R×C) time and memory.
func New(rows, columns int) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidDimensions, rows, columns)
	}
	g := &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]Cell, rows*columns),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			cell := &g.cells[g.Index(r, c)]
			cell.Row, cell.Column = r, c
			for _, d := range Directions {
				nr, nc := r+offsets[d][0], c+offsets[d][1]
				if id, ok := g.CellAt(nr, nc); ok {
					cell.neighbors[d] = id
				} else {
					cell.neighbors[d] = NoCell
				}
			}
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// Size returns rows×columns.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether (row, col) lies within the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

// Index maps (row, col) to a row-major CellID without bounds checking.
func (g *Grid) Index(row, col int) CellID {
	return CellID(row*g.columns + col)
}

// Coordinate converts a CellID back to (row, col).
func (g *Grid) Coordinate(id CellID) (row, col int) {
	return int(id) / g.columns, int(id) % g.columns
}

// Contains reports whether id addresses a cell of this grid.
func (g *Grid) Contains(id CellID) bool {
	return id >= 0 && int(id) < len(g.cells)
}

// CellAt returns the cell at (row, col). Out-of-range coordinates yield
// (NoCell, false); absence is an expected outcome, not an error.
// Complexity: O(1).
func (g *Grid) CellAt(row, col int) (CellID, bool) {
	if !g.InBounds(row, col) {
		return NoCell, false
	}
	return g.Index(row, col), true
}

// Cell returns a copy of the cell record for id. The zero Cell is
// returned for ids outside the grid; use Contains to tell them apart.
func (g *Grid) Cell(id CellID) Cell {
	if !g.Contains(id) {
		return Cell{neighbors: [4]CellID{NoCell, NoCell, NoCell, NoCell}}
	}
	return g.cells[id]
}

// RandomCell picks a cell uniformly: a row draw followed by a column draw.
// The draw order is part of the reproducibility contract.
func (g *Grid) RandomCell(rng *rand.Rand) CellID {
	row := rng.Intn(g.rows)
	col := rng.Intn(g.columns)
	return g.Index(row, col)
}

// EachCell yields every CellID in row-major order.
func (g *Grid) EachCell() iter.Seq[CellID] {
	return func(yield func(CellID) bool) {
		for i := range g.cells {
			if !yield(CellID(i)) {
				return
			}
		}
	}
}

// EachRow yields each row index with the CellIDs of that row, west to east.
func (g *Grid) EachRow() iter.Seq2[int, []CellID] {
	return func(yield func(int, []CellID) bool) {
		for r := 0; r < g.rows; r++ {
			row := make([]CellID, g.columns)
			for c := range row {
				row[c] = g.Index(r, c)
			}
			if !yield(r, row) {
				return
			}
		}
	}
}

// Neighbor returns the neighbor of id in direction d.
// Reports false at the boundary or for ids outside the grid.
func (g *Grid) Neighbor(id CellID, d Direction) (CellID, bool) {
	if !g.Contains(id) {
		return NoCell, false
	}
	n := g.cells[id].neighbors[d]
	return n, n != NoCell
}

// Neighbors returns the existing positional neighbors of id in the order
// north, south, east, west. Generators sample from this order.
func (g *Grid) Neighbors(id CellID) []CellID {
	if !g.Contains(id) {
		return nil
	}
	out := make([]CellID, 0, 4)
	for _, n := range g.cells[id].neighbors {
		if n != NoCell {
			out = append(out, n)
		}
	}
	return out
}

// Reset removes every link, leaving shape and neighbors untouched.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i].links = 0
	}
}
