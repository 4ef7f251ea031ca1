package grid

import "fmt"

// CellID addresses a cell by its row-major index: row*Columns + column.
type CellID int

// NoCell marks an absent neighbor or a failed lookup.
const NoCell CellID = -1

// Direction selects one of the four positional neighbors.
type Direction uint8

const (
	// North points to row-1.
	North Direction = iota
	// South points to row+1.
	South
	// East points to column+1.
	East
	// West points to column-1.
	West
)

// Directions lists every Direction in link iteration order.
var Directions = [4]Direction{North, South, East, West}

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// offsets holds the (row, column) delta for each Direction.
var offsets = [4][2]int{
	North: {-1, 0},
	South: {1, 0},
	East:  {0, 1},
	West:  {0, -1},
}

// Cell is a single grid position. Row and Column never change after the
// grid is built; only the link mask is mutated.
type Cell struct {
	Row, Column int
	neighbors   [4]CellID
	links       uint8 // bit d set ⇔ passage towards neighbors[d]
}

// Neighbor returns the neighbor in direction d, or NoCell at the boundary.
func (c Cell) Neighbor(d Direction) CellID {
	return c.neighbors[d]
}

// HasLink reports whether the cell has an open passage in direction d.
func (c Cell) HasLink(d Direction) bool {
	return c.links&(1<<d) != 0
}

// LinkCount returns the number of open passages leaving the cell.
func (c Cell) LinkCount() int {
	n := 0
	for _, d := range Directions {
		if c.HasLink(d) {
			n++
		}
	}
	return n
}

// DeadEnd reports whether the cell has exactly one link.
func (c Cell) DeadEnd() bool {
	return c.LinkCount() == 1
}

// Grid is a rectangular arena of cells. Its shape is immutable once built.
type Grid struct {
	rows, columns int
	cells         []Cell
}
