package grid

import "errors"

var (
	// ErrInvalidDimensions indicates rows or columns are not strictly positive.
	ErrInvalidDimensions = errors.New("grid: rows and columns must be positive")
	// ErrCellOutOfRange indicates a CellID that does not belong to the grid.
	ErrCellOutOfRange = errors.New("grid: cell out of range")
	// ErrSelfLink indicates an attempt to link a cell to itself.
	ErrSelfLink = errors.New("grid: cannot link a cell to itself")
	// ErrNotAdjacent indicates an attempt to link cells that are not positional neighbors.
	ErrNotAdjacent = errors.New("grid: cells are not adjacent")
)
