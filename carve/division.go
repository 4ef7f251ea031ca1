package carve

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// Recursive division defaults.
const (
	// DefaultMinimumSize: regions smaller than this on both axes may stop early.
	DefaultMinimumSize = 5
	// DefaultHowOften: such a region stops with probability 1/DefaultHowOften.
	DefaultHowOften = 4
	// tooSmall: a region this thin on either axis is never divided.
	tooSmall = 1
)

// DivisionOption tunes RecursiveDivision.
// Option constructors panic on meaningless input; Apply never panics.
type DivisionOption func(*Division)

// WithMinimumSize sets the room size under which division may stop early.
// Panics if n < 1.
func WithMinimumSize(n int) DivisionOption {
	if n < 1 {
		panic(fmt.Sprintf("carve: WithMinimumSize(%d)", n))
	}
	return func(d *Division) {
		d.minimumSize = n
	}
}

// WithHowOften sets the odds (1 in n) that a small room stops dividing.
// n == 1 stops every small room. Panics if n < 1.
func WithHowOften(n int) DivisionOption {
	if n < 1 {
		panic(fmt.Sprintf("carve: WithHowOften(%d)", n))
	}
	return func(d *Division) {
		d.howOften = n
	}
}

// Division is the recursive division algorithm. It produces rectilinear,
// room-like mazes; with the defaults small rooms are left open, so the
// result generally contains cycles.
type Division struct {
	minimumSize int
	howOften    int
}

// NewRecursiveDivision returns a Division with defaults overridden by opts.
func NewRecursiveDivision(opts ...DivisionOption) Division {
	d := Division{minimumSize: DefaultMinimumSize, howOften: DefaultHowOften}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// divider carries the state of one Apply call.
type divider struct {
	Division
	g   *grid.Grid
	rng *rand.Rand
}

// Apply links every cell to every neighbor, then recursively splits the
// grid with walls that each keep a single passage. The fully linked
// intermediate state never escapes Apply.
// Complexity: O(R×C) for the open pass plus O(wall length) per split.
func (d Division) Apply(g *grid.Grid, rng *rand.Rand) error {
	if err := check(g, rng); err != nil {
		return err
	}
	for id := range g.EachCell() {
		for _, n := range g.Neighbors(id) {
			if err := g.LinkDirected(id, n); err != nil {
				return fmt.Errorf("carve: recursive division: %w", err)
			}
		}
	}
	w := divider{Division: d, g: g, rng: rng}
	return w.divide(0, 0, g.Rows(), g.Columns())
}

func (w *divider) divide(row, column, height, width int) error {
	if height <= tooSmall || width <= tooSmall {
		return nil
	}
	if height < w.minimumSize && width < w.minimumSize && w.rng.Intn(w.howOften) == 0 {
		return nil
	}
	if height > width {
		return w.horizontally(row, column, height, width)
	}
	return w.vertically(row, column, height, width)
}

// horizontally walls off the region south of a random row.
func (w *divider) horizontally(row, column, height, width int) error {
	southOf := w.rng.Intn(height - 1)
	passageAt := w.rng.Intn(width)

	for x := 0; x < width; x++ {
		if x == passageAt {
			continue
		}
		cell := w.g.Index(row+southOf, column+x)
		south, _ := w.g.Neighbor(cell, grid.South)
		if err := w.g.Unlink(cell, south); err != nil {
			return fmt.Errorf("carve: recursive division: %w", err)
		}
	}

	if err := w.divide(row, column, southOf+1, width); err != nil {
		return err
	}
	return w.divide(row+southOf+1, column, height-southOf-1, width)
}

// vertically walls off the region east of a random column.
func (w *divider) vertically(row, column, height, width int) error {
	eastOf := w.rng.Intn(width - 1)
	passageAt := w.rng.Intn(height)

	for y := 0; y < height; y++ {
		if y == passageAt {
			continue
		}
		cell := w.g.Index(row+y, column+eastOf)
		east, _ := w.g.Neighbor(cell, grid.East)
		if err := w.g.Unlink(cell, east); err != nil {
			return fmt.Errorf("carve: recursive division: %w", err)
		}
	}

	if err := w.divide(row, column, height, eastOf+1); err != nil {
		return err
	}
	return w.divide(row, column+eastOf+1, height, width-eastOf-1)
}
