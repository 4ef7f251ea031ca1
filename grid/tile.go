package grid

import "fmt"

// Tile tags what a renderer should draw for a cell. The grid never stores
// tiles; DerivedTile computes the floor/wall split from link topology and
// collaborators overlay the rest (player, stairs, ...).
type Tile uint8

const (
	// Empty is an untagged tile.
	Empty Tile = iota
	// Wall is a cell no passage reaches.
	Wall
	// Door marks a doorway.
	Door
	// Floor is a walkable cell.
	Floor
	// Player marks the player's cell.
	Player
	// Stairs marks the level exit.
	Stairs
	// Passage marks a carved corridor.
	Passage
)

var tileRunes = [...]rune{
	Empty:   ' ',
	Wall:    '#',
	Door:    '/',
	Floor:   '.',
	Player:  '@',
	Stairs:  '%',
	Passage: '=',
}

// Rune returns the single-character glyph conventionally used for t.
func (t Tile) Rune() rune {
	if int(t) < len(tileRunes) {
		return tileRunes[t]
	}
	return '?'
}

func (t Tile) String() string {
	switch t {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Door:
		return "door"
	case Floor:
		return "floor"
	case Player:
		return "player"
	case Stairs:
		return "stairs"
	case Passage:
		return "passage"
	}
	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// DerivedTile returns Wall for a cell with no links and Floor otherwise.
// Ids outside the grid derive Empty.
func (g *Grid) DerivedTile(id CellID) Tile {
	if !g.Contains(id) {
		return Empty
	}
	if g.cells[id].links == 0 {
		return Wall
	}
	return Floor
}
