package carve_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/grid"
)

// reachable counts cells reachable from id 0 through links.
func reachable(g *grid.Grid) int {
	seen := make([]bool, g.Size())
	queue := []grid.CellID{0}
	seen[0] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Links(queue[qi]) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(queue)
}

// symmetric reports whether every link has its mirror.
func symmetric(g *grid.Grid) bool {
	for id := range g.EachCell() {
		for _, n := range g.Links(id) {
			if !g.Linked(n, id) {
				return false
			}
		}
	}
	return true
}

// snapshot captures the link sets of g in row-major order.
func snapshot(g *grid.Grid) [][]grid.CellID {
	out := make([][]grid.CellID, 0, g.Size())
	for id := range g.EachCell() {
		out = append(out, g.Links(id))
	}
	return out
}

// CarveSuite runs the shared maze contracts against every algorithm.
type CarveSuite struct {
	suite.Suite
}

// TestPerfectAlgorithms_SpanningTree checks the perfect-maze property.
func (s *CarveSuite) TestPerfectAlgorithms_SpanningTree() {
	shapes := [][2]int{{1, 1}, {1, 7}, {6, 1}, {3, 3}, {8, 13}, {20, 20}}
	for _, k := range carve.Kinds {
		if !k.Perfect() {
			continue
		}
		for _, sh := range shapes {
			for _, seed := range []int64{0, 1, 42, 2024} {
				g, err := carve.Generate(sh[0], sh[1], k, seed)
				require.NoError(s.T(), err, "%s %v seed=%d", k, sh, seed)
				require.True(s.T(), symmetric(g), "%s %v seed=%d", k, sh, seed)
				require.Equal(s.T(), g.Size()-1, g.TotalLinks(), "%s %v seed=%d", k, sh, seed)
				require.Equal(s.T(), g.Size(), reachable(g), "%s %v seed=%d", k, sh, seed)
			}
		}
	}
}

// TestDeterminism generates twice per kind and compares links.
func (s *CarveSuite) TestDeterminism() {
	for _, k := range carve.Kinds {
		a, err := carve.Generate(12, 9, k, 7)
		require.NoError(s.T(), err)
		b, err := carve.Generate(12, 9, k, 7)
		require.NoError(s.T(), err)
		require.Equal(s.T(), snapshot(a), snapshot(b), k.String())
	}
}

// TestZeroSeedPolicy checks that seed 0 behaves like DefaultSeed.
func (s *CarveSuite) TestZeroSeedPolicy() {
	a, err := carve.Generate(10, 10, carve.RecursiveBacktracker, 0)
	require.NoError(s.T(), err)
	b, err := carve.Generate(10, 10, carve.RecursiveBacktracker, carve.DefaultSeed)
	require.NoError(s.T(), err)
	require.Equal(s.T(), snapshot(a), snapshot(b))
}

// TestShapeUntouched verifies that carving only mutates links.
func (s *CarveSuite) TestShapeUntouched() {
	fresh, err := grid.New(5, 6)
	require.NoError(s.T(), err)
	for _, k := range carve.Kinds {
		g, err := carve.Generate(5, 6, k, 3)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 5, g.Rows())
		require.Equal(s.T(), 6, g.Columns())
		for id := range g.EachCell() {
			require.Equal(s.T(), fresh.Neighbors(id), g.Neighbors(id))
			c, f := g.Cell(id), fresh.Cell(id)
			require.Equal(s.T(), f.Row, c.Row)
			require.Equal(s.T(), f.Column, c.Column)
		}
	}
}

// TestBinaryTree_Scenario3x3 pins down the link budget of a 3×3 maze:
// every cell but the north-east corner owns exactly one north/east link,
// and the corner only holds links granted by its south and west neighbors.
func (s *CarveSuite) TestBinaryTree_Scenario3x3() {
	g, err := carve.Generate(3, 3, carve.BinaryTree, 42)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 8, g.TotalLinks())

	corner, _ := g.CellAt(0, 2)
	for id := range g.EachCell() {
		c := g.Cell(id)
		own := 0
		if c.HasLink(grid.North) {
			own++
		}
		if c.HasLink(grid.East) {
			own++
		}
		if id == corner {
			require.Equal(s.T(), 0, own)
			continue
		}
		require.Equal(s.T(), 1, own, "cell (%d,%d)", c.Row, c.Column)
	}

	granted := 0
	west, _ := g.CellAt(0, 1)
	south, _ := g.CellAt(1, 2)
	if g.Cell(west).HasLink(grid.East) {
		granted++
	}
	if g.Cell(south).HasLink(grid.North) {
		granted++
	}
	require.Equal(s.T(), granted, g.LinkCount(corner))
	require.GreaterOrEqual(s.T(), granted, 1)
}

// TestBinaryTree_Corridors checks the forced north row and east column.
func (s *CarveSuite) TestBinaryTree_Corridors() {
	g, err := carve.Generate(6, 6, carve.BinaryTree, 11)
	require.NoError(s.T(), err)
	for c := 0; c < 5; c++ {
		a, _ := g.CellAt(0, c)
		b, _ := g.CellAt(0, c+1)
		require.True(s.T(), g.Linked(a, b), "north row at %d", c)
	}
	for r := 1; r < 6; r++ {
		a, _ := g.CellAt(r, 5)
		b, _ := g.CellAt(r-1, 5)
		require.True(s.T(), g.Linked(a, b), "east column at %d", r)
	}
}

// TestRecursiveDivision_Connected checks the default room-building mode.
func (s *CarveSuite) TestRecursiveDivision_Connected() {
	for _, seed := range []int64{1, 2, 3, 99} {
		g, err := carve.Generate(15, 22, carve.RecursiveDivision, seed)
		require.NoError(s.T(), err)
		require.True(s.T(), symmetric(g), "seed=%d", seed)
		require.Equal(s.T(), g.Size(), reachable(g), "seed=%d", seed)
		require.GreaterOrEqual(s.T(), g.TotalLinks(), g.Size()-1, "seed=%d", seed)
	}
}

// TestRecursiveDivision_NoEarlyStop divides down to single-cell strips,
// which yields a perfect maze.
func (s *CarveSuite) TestRecursiveDivision_NoEarlyStop() {
	algo := carve.NewRecursiveDivision(carve.WithMinimumSize(1))
	g, err := grid.New(9, 14)
	require.NoError(s.T(), err)
	require.NoError(s.T(), algo.Apply(g, carve.NewRand(5)))
	require.True(s.T(), symmetric(g))
	require.Equal(s.T(), g.Size()-1, g.TotalLinks())
	require.Equal(s.T(), g.Size(), reachable(g))
}

// TestRecursiveDivision_AlwaysStop leaves small grids fully open.
func (s *CarveSuite) TestRecursiveDivision_AlwaysStop() {
	algo := carve.NewRecursiveDivision(carve.WithHowOften(1))
	g, err := grid.New(3, 4)
	require.NoError(s.T(), err)
	require.NoError(s.T(), algo.Apply(g, carve.NewRand(5)))
	// 3×4 has 3*3 + 2*4 adjacent pairs, all open
	require.Equal(s.T(), 17, g.TotalLinks())
}

// TestApply_Errors verifies nil inputs are rejected by every algorithm.
func (s *CarveSuite) TestApply_Errors() {
	g, err := grid.New(2, 2)
	require.NoError(s.T(), err)
	for _, k := range carve.Kinds {
		algo, err := k.Algorithm()
		require.NoError(s.T(), err)
		require.ErrorIs(s.T(), algo.Apply(nil, carve.NewRand(1)), carve.ErrNilGrid)
		require.ErrorIs(s.T(), algo.Apply(g, nil), carve.ErrNilRand)
	}
}

func TestCarveSuite(t *testing.T) {
	suite.Run(t, new(CarveSuite))
}

// TestGenerate_Errors covers invalid dimensions and unknown kinds.
func TestGenerate_Errors(t *testing.T) {
	_, err := carve.Generate(0, 4, carve.BinaryTree, 1)
	require.True(t, errors.Is(err, grid.ErrInvalidDimensions), "got %v", err)

	_, err = carve.Generate(4, 4, carve.Kind(42), 1)
	require.True(t, errors.Is(err, carve.ErrUnknownKind), "got %v", err)
}

// TestParseKind round-trips names and rejects unknown ones.
func TestParseKind(t *testing.T) {
	for _, k := range carve.Kinds {
		got, err := carve.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
	got, err := carve.ParseKind(" Aldous_Broder ")
	require.NoError(t, err)
	require.Equal(t, carve.AldousBroder, got)

	_, err = carve.ParseKind("sidewinder")
	require.ErrorIs(t, err, carve.ErrUnknownKind)
}

// TestOptions_Panic checks that option constructors reject nonsense.
func TestOptions_Panic(t *testing.T) {
	require.Panics(t, func() { carve.WithMinimumSize(0) })
	require.Panics(t, func() { carve.WithHowOften(-2) })
	require.NotPanics(t, func() { carve.NewRecursiveDivision(carve.WithHowOften(1)) })
}
