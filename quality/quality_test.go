package quality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/quality"
)

// TestIsPerfect_Algorithms checks the three perfect generators.
func TestIsPerfect_Algorithms(t *testing.T) {
	for _, k := range carve.Kinds {
		if !k.Perfect() {
			continue
		}
		for _, seed := range []int64{1, 42, 777} {
			g, err := carve.Generate(13, 17, k, seed)
			require.NoError(t, err)
			ok, err := quality.IsPerfect(g)
			require.NoError(t, err)
			assert.True(t, ok, "%s seed=%d", k, seed)
			assert.True(t, quality.Connected(g), "%s seed=%d", k, seed)
			assert.Empty(t, quality.Walled(g), "%s seed=%d", k, seed)
		}
	}
}

// TestIsPerfect_Cycle detects an extra passage.
func TestIsPerfect_Cycle(t *testing.T) {
	g, err := carve.Generate(4, 4, carve.BinaryTree, 42)
	require.NoError(t, err)

	// add the first missing link between two adjacent cells
	added := false
	for id := range g.EachCell() {
		for _, n := range g.Neighbors(id) {
			if !g.Linked(id, n) {
				require.NoError(t, g.Link(id, n))
				added = true
				break
			}
		}
		if added {
			break
		}
	}
	require.True(t, added)

	ok, err := quality.IsPerfect(g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, quality.Connected(g))
}

// TestIsPerfect_Forest detects a disconnected maze without cycles.
func TestIsPerfect_Forest(t *testing.T) {
	g, err := grid.New(1, 4)
	require.NoError(t, err)
	require.NoError(t, g.Link(0, 1))
	require.NoError(t, g.Link(2, 3))

	ok, err := quality.IsPerfect(g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, quality.Connected(g))
}

// TestCheckSymmetry flags one-sided links.
func TestCheckSymmetry(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, quality.CheckSymmetry(g))

	require.NoError(t, g.LinkDirected(0, 1))
	assert.ErrorIs(t, quality.CheckSymmetry(g), quality.ErrAsymmetricLink)
	_, err = quality.IsPerfect(g)
	assert.ErrorIs(t, err, quality.ErrAsymmetricLink)

	assert.ErrorIs(t, quality.CheckSymmetry(nil), quality.ErrGridNil)
	assert.False(t, quality.Connected(nil))
}

// TestDeadEnds_Corridor has dead ends only at both tips.
func TestDeadEnds_Corridor(t *testing.T) {
	g, err := carve.Generate(1, 6, carve.BinaryTree, 3)
	require.NoError(t, err)
	assert.Equal(t, []grid.CellID{0, 5}, quality.DeadEnds(g))
	assert.Empty(t, quality.Walled(g))
}

// TestAnalyze reports a consistent summary.
func TestAnalyze(t *testing.T) {
	g, err := carve.Generate(9, 9, carve.RecursiveBacktracker, 5)
	require.NoError(t, err)

	rep, err := quality.Analyze(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, rep.Rows)
	assert.Equal(t, 9, rep.Columns)
	assert.Equal(t, 80, rep.Links)
	assert.True(t, rep.Perfect)
	assert.True(t, rep.Connected)
	assert.Equal(t, 81, rep.Reachable)
	assert.Equal(t, quality.Point{Row: 0, Column: 0}, rep.Start)
	assert.GreaterOrEqual(t, rep.Length, rep.FirstPass)
	assert.Len(t, rep.Path, rep.Length+1)
	assert.Equal(t, rep.From, rep.Path[0])
	assert.Equal(t, rep.To, rep.Path[len(rep.Path)-1])
	assert.Equal(t, len(quality.DeadEnds(g)), rep.DeadEnds)

	_, err = quality.Analyze(nil, 0)
	assert.ErrorIs(t, err, quality.ErrGridNil)
	_, err = quality.Analyze(g, 500)
	assert.ErrorIs(t, err, grid.ErrCellOutOfRange)
}
