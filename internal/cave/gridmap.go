// Package cave implements Dungeon Slimes: a hero walks a fixed cave map cell
// by cell, dodges patrolling slimes, grabs the treasure and escapes through
// the exit door.
//
// The package holds pure game logic. Drawing and audio go through the Canvas
// and Audio interfaces, which hosts implement on top of a real framework.
package cave

import (
	"math"

	"github.com/vovakirdan/dungeon-slimes/internal/core"
)

// TileSize is the edge length of one map cell in world units.
const TileSize = 64.0

// Map symbols.
const (
	wallSymbol  = '#'
	floorSymbol = '.'
)

// CaveMap is the level layout. It never changes at runtime.
var CaveMap = []string{
	"############",
	"#....##....#",
	"#..#....#..#",
	"####....#..#",
	"#....##....#",
	"#..######..#",
	"#..........#",
	"############",
}

// CellKind is the terrain of one map cell.
type CellKind uint8

const (
	CellWall CellKind = iota
	CellFloor
)

// String returns the map symbol for the cell kind.
func (k CellKind) String() string {
	if k == CellFloor {
		return string(floorSymbol)
	}
	return string(wallSymbol)
}

// GridMap is an immutable walkable/blocked lookup built from map rows.
// Rows may have different lengths; every lookup is bounds-checked per row.
type GridMap struct {
	rows [][]CellKind
}

// NewGridMap parses map rows. Any symbol other than the floor symbol is a wall.
func NewGridMap(lines []string) *GridMap {
	rows := make([][]CellKind, len(lines))
	for r, line := range lines {
		cells := make([]CellKind, 0, len(line))
		for _, ch := range line {
			if ch == floorSymbol {
				cells = append(cells, CellFloor)
			} else {
				cells = append(cells, CellWall)
			}
		}
		rows[r] = cells
	}
	return &GridMap{rows: rows}
}

// Rows returns the number of map rows.
func (g *GridMap) Rows() int {
	return len(g.rows)
}

// Cols returns the length of the given row, or 0 for a row outside the map.
func (g *GridMap) Cols(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// Cell returns the terrain at (col, row). ok is false outside the map.
func (g *GridMap) Cell(col, row int) (kind CellKind, ok bool) {
	if row < 0 || row >= len(g.rows) {
		return CellWall, false
	}
	if col < 0 || col >= len(g.rows[row]) {
		return CellWall, false
	}
	return g.rows[row][col], true
}

// IsWalkable reports whether (col, row) is a floor cell.
// Coordinates outside the map are never walkable.
func (g *GridMap) IsWalkable(col, row int) bool {
	kind, ok := g.Cell(col, row)
	return ok && kind == CellFloor
}

// IsWalkableAt maps a world position to its cell and checks it.
func (g *GridMap) IsWalkableAt(p core.Vec2) bool {
	col, row := CellAt(p)
	return g.IsWalkable(col, row)
}

// ForEachCell calls fn for every cell in row-major order.
func (g *GridMap) ForEachCell(fn func(col, row int, kind CellKind)) {
	for r, cells := range g.rows {
		for c, kind := range cells {
			fn(c, r, kind)
		}
	}
}

// WorldSize returns the playfield size in world units. The width comes from
// the first row, matching how the window is sized.
func (g *GridMap) WorldSize() core.Vec2 {
	return core.V(float64(g.Cols(0))*TileSize, float64(g.Rows())*TileSize)
}

// CellAt returns the cell containing the world position p.
func CellAt(p core.Vec2) (col, row int) {
	return int(math.Floor(p.X / TileSize)), int(math.Floor(p.Y / TileSize))
}

// TileCenter returns the world position of the center of cell (col, row).
func TileCenter(col, row int) core.Vec2 {
	return core.V(float64(col)*TileSize+TileSize/2, float64(row)*TileSize+TileSize/2)
}

// World dimensions of CaveMap.
var (
	WorldWidth  = float64(len(CaveMap[0])) * TileSize
	WorldHeight = float64(len(CaveMap)) * TileSize
)
