package carve

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

type aldousBroder struct{}

// Apply walks from a random cell to uniformly random neighbors, linking
// into every cell that has no links yet, until size−1 cells were entered.
// Expected cost follows the coupon collector bound and is several times
// that of the other algorithms.
func (aldousBroder) Apply(g *grid.Grid, rng *rand.Rand) error {
	if err := check(g, rng); err != nil {
		return err
	}
	cell := g.RandomCell(rng)
	for unvisited := g.Size() - 1; unvisited > 0; {
		next := sample(rng, g.Neighbors(cell))
		if g.LinkCount(next) == 0 {
			if err := g.Link(cell, next); err != nil {
				return fmt.Errorf("carve: aldous-broder: %w", err)
			}
			unvisited--
		}
		cell = next
	}
	return nil
}
