package carve

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

type recursiveBacktracker struct{}

// Apply runs an iterative depth-first search with an explicit stack:
// from the top cell, link into a random neighbor that has no links yet
// and push it, or pop when none is left.
// Complexity: O(R×C) time, O(R×C) stack in the worst case.
func (recursiveBacktracker) Apply(g *grid.Grid, rng *rand.Rand) error {
	if err := check(g, rng); err != nil {
		return err
	}
	stack := make([]grid.CellID, 0, g.Size())
	stack = append(stack, g.RandomCell(rng))
	fresh := make([]grid.CellID, 0, 4)

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		fresh = fresh[:0]
		for _, n := range g.Neighbors(current) {
			if g.LinkCount(n) == 0 {
				fresh = append(fresh, n)
			}
		}
		if len(fresh) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := sample(rng, fresh)
		if err := g.Link(current, next); err != nil {
			return fmt.Errorf("carve: recursive backtracker: %w", err)
		}
		stack = append(stack, next)
	}
	return nil
}
