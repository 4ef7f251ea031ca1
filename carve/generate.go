package carve

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/grid"
)

// Generate builds a rows×columns grid and carves it with kind, seeded by
// seed under the NewRand policy. The same arguments always yield the
// same links.
//
// Returns grid.ErrInvalidDimensions for non-positive shapes and
// ErrUnknownKind for kinds outside Kinds.
func Generate(rows, columns int, kind Kind, seed int64) (*grid.Grid, error) {
	algo, err := kind.Algorithm()
	if err != nil {
		return nil, err
	}
	g, err := grid.New(rows, columns)
	if err != nil {
		return nil, fmt.Errorf("carve: generate: %w", err)
	}
	if err = algo.Apply(g, NewRand(seed)); err != nil {
		return nil, err
	}
	return g, nil
}
