package quality

import (
	"errors"
	"fmt"

	"github.com/spakin/disjoint"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/labyrinth/grid"
)

var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("quality: grid is nil")
	// ErrAsymmetricLink indicates a link without its mirror.
	ErrAsymmetricLink = errors.New("quality: asymmetric link")
)

// CheckSymmetry verifies that every link a→b has its mirror b→a.
func CheckSymmetry(g *grid.Grid) error {
	if g == nil {
		return ErrGridNil
	}
	for id := range g.EachCell() {
		for _, n := range g.Links(id) {
			if !g.Linked(n, id) {
				return fmt.Errorf("%w: %d→%d", ErrAsymmetricLink, id, n)
			}
		}
	}
	return nil
}

// IsPerfect reports whether the links form a spanning tree: no passage
// closes a cycle and there are exactly Size()−1 of them.
// Returns ErrAsymmetricLink if the relation is not symmetric.
func IsPerfect(g *grid.Grid) (bool, error) {
	if err := CheckSymmetry(g); err != nil {
		return false, err
	}
	sets := make([]*disjoint.Element, g.Size())
	for i := range sets {
		sets[i] = disjoint.NewElement()
	}
	links := 0
	for id := range g.EachCell() {
		c := g.Cell(id)
		for _, d := range [2]grid.Direction{grid.South, grid.East} {
			if !c.HasLink(d) {
				continue
			}
			n := c.Neighbor(d)
			if sets[id].Find() == sets[n].Find() {
				return false, nil // cycle
			}
			disjoint.Union(sets[id], sets[n])
			links++
		}
	}
	return links == g.Size()-1, nil
}

// Connected reports whether every cell is reachable from the first one.
func Connected(g *grid.Grid) bool {
	if g == nil {
		return false
	}
	visited := mapset.New[grid.CellID]()
	stack := []grid.CellID{0}
	visited.Put(0)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, n := range g.Links(id) {
			if !visited.Has(n) {
				visited.Put(n)
				stack = append(stack, n)
			}
		}
	}
	return visited.Size() == g.Size()
}

// DeadEnds returns the cells with exactly one link, row-major.
func DeadEnds(g *grid.Grid) []grid.CellID {
	return cellsWithLinks(g, 1)
}

// Walled returns the cells with no link at all, row-major.
func Walled(g *grid.Grid) []grid.CellID {
	return cellsWithLinks(g, 0)
}

func cellsWithLinks(g *grid.Grid, n int) []grid.CellID {
	if g == nil {
		return nil
	}
	var out []grid.CellID
	for id := range g.EachCell() {
		if g.LinkCount(id) == n {
			out = append(out, id)
		}
	}
	return out
}
