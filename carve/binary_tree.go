package carve

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

type binaryTree struct{}

// Apply visits cells in row-major order and links each one to a random
// choice among its existing north and east neighbors. The north-east
// corner has no choice and only receives links.
// Complexity: O(R×C), one draw per cell with a choice.
func (binaryTree) Apply(g *grid.Grid, rng *rand.Rand) error {
	if err := check(g, rng); err != nil {
		return err
	}
	candidates := make([]grid.CellID, 0, 2)
	for id := range g.EachCell() {
		candidates = candidates[:0]
		if n, ok := g.Neighbor(id, grid.North); ok {
			candidates = append(candidates, n)
		}
		if n, ok := g.Neighbor(id, grid.East); ok {
			candidates = append(candidates, n)
		}
		if len(candidates) == 0 {
			continue
		}
		if err := g.Link(id, sample(rng, candidates)); err != nil {
			return fmt.Errorf("carve: binary tree: %w", err)
		}
	}
	return nil
}
