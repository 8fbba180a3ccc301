package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
	"github.com/vovakirdan/dungeon-slimes/internal/core"
)

// World units covered by one terminal cell. A 64-unit tile becomes 4×2 cells,
// which looks roughly square in most terminal fonts.
const (
	cellW = 16.0
	cellH = 32.0
)

// Map area in terminal cells.
var (
	mapCols = int(cave.WorldWidth / cellW)
	mapRows = int(cave.WorldHeight / cellH)
)

// glyph is the terminal rendering of one sprite.
type glyph struct {
	r rune
	c core.Color
}

var spriteGlyphs = map[cave.SpriteID]glyph{
	cave.SpriteTreasure:   {'$', core.ColorBrightYellow},
	cave.SpriteHeroIdle1:  {'@', core.ColorBrightCyan},
	cave.SpriteHeroIdle2:  {'@', core.ColorCyan},
	cave.SpriteHeroWalk1:  {'@', core.ColorBrightWhite},
	cave.SpriteHeroWalk2:  {'@', core.ColorBrightCyan},
	cave.SpriteHeroWalk3:  {'@', core.ColorCyan},
	cave.SpriteSlimeIdle1: {'o', core.ColorBrightGreen},
	cave.SpriteSlimeIdle2: {'O', core.ColorBrightGreen},
	cave.SpriteSlimeWalk1: {'o', core.ColorGreen},
	cave.SpriteSlimeWalk2: {'O', core.ColorGreen},
}

var toneColors = map[cave.Tone]core.Color{
	cave.ToneWhite:  core.ColorBrightWhite,
	cave.ToneRed:    core.ColorBrightRed,
	cave.ToneYellow: core.ColorBrightYellow,
}

var backdropColors = map[cave.Backdrop]core.Color{
	cave.BackdropMenu:     core.ColorGray,
	cave.BackdropPlaying:  core.ColorGray,
	cave.BackdropGameOver: core.ColorRed,
	cave.BackdropVictory:  core.ColorYellow,
}

// screenCanvas draws a session into a Screen. The map is centered inside
// the screen and surrounded by a frame tinted by the backdrop.
type screenCanvas struct {
	screen *core.Screen
	ox, oy int // Screen position of the map's top-left cell

	focused    core.Rect // Menu button drawn highlighted
	hasFocused bool
}

var _ cave.Canvas = (*screenCanvas)(nil)

func newScreenCanvas(s *core.Screen) *screenCanvas {
	c := &screenCanvas{screen: s}
	c.layout()
	return c
}

// layout recomputes the map offset after the screen was resized.
// The map is centered with room for the frame on every side.
func (c *screenCanvas) layout() {
	c.ox = max((c.screen.Width()-mapCols)/2, 1)
	c.oy = max((c.screen.Height()-1-mapRows)/2, 1)
}

// Focus highlights the button with rect r until ClearFocus is called.
func (c *screenCanvas) Focus(r core.Rect) {
	c.focused = r
	c.hasFocused = true
}

func (c *screenCanvas) ClearFocus() {
	c.hasFocused = false
}

// ToWorld converts a screen cell to the world position of its center.
func (c *screenCanvas) ToWorld(x, y int) core.Vec2 {
	return core.V(float64(x-c.ox)*cellW+cellW/2, float64(y-c.oy)*cellH+cellH/2)
}

// toCell converts a world position to the screen cell containing it.
func (c *screenCanvas) toCell(p core.Vec2) (x, y int) {
	return c.ox + int(math.Floor(p.X/cellW)), c.oy + int(math.Floor(p.Y/cellH))
}

func (c *screenCanvas) Fill(b cave.Backdrop) {
	c.screen.Clear()
	c.screen.DrawBox(c.ox-1, c.oy-1, mapCols+2, mapRows+2, backdropColors[b])
}

func (c *screenCanvas) DrawSprite(id cave.SpriteID, pos core.Vec2) {
	switch id {
	case cave.SpriteWall:
		x, y := c.toCell(pos.Sub(core.V(cave.TileSize/2, cave.TileSize/2)))
		c.screen.FillArea(x, y, 4, 2, '█', core.ColorGray)
	case cave.SpriteFloor:
		x, y := c.toCell(pos.Sub(core.V(cave.TileSize/2, cave.TileSize/2)))
		c.screen.FillArea(x, y, 4, 2, ' ', core.ColorDefault)
		c.screen.SetColored(x, y, '·', core.ColorGray)
	case cave.SpriteExit:
		x, y := c.toCell(pos.Sub(core.V(cave.TileSize/2, cave.TileSize/2)))
		c.screen.FillArea(x, y, 4, 2, '▒', core.ColorGreen)
	default:
		g, ok := spriteGlyphs[id]
		if !ok {
			g = glyph{'?', core.ColorMagenta}
		}
		x, y := c.toCell(pos)
		c.screen.SetColored(x, y, g.r, g.c)
	}
}

func (c *screenCanvas) DrawText(text string, center core.Vec2, _ cave.TextSize, tone cave.Tone) {
	x, y := c.toCell(center)
	c.screen.DrawTextColored(x-utf8.RuneCountInString(text)/2, y, text, toneColors[tone])
}

func (c *screenCanvas) DrawPanel(r core.Rect, border cave.Tone) {
	x0, y0 := c.toCell(core.V(r.X, r.Y))
	x1, y1 := c.toCell(core.V(r.Right(), r.Bottom()))
	c.screen.FillArea(x0, y0, x1-x0+1, y1-y0+1, ' ', core.ColorDefault)
	c.screen.DrawBox(x0, y0, x1-x0+1, y1-y0+1, toneColors[border])
}

// DrawButton draws a one-line button on the row holding the button's center.
// Only cells whose centers lie inside r are used, so a click on any drawn
// cell lands inside the button.
func (c *screenCanvas) DrawButton(r core.Rect, label string) {
	first := int(math.Ceil((r.X - cellW/2) / cellW))
	last := int(math.Ceil((r.Right()-cellW/2)/cellW)) - 1
	_, y := c.toCell(r.Center())

	color := core.ColorWhite
	if c.hasFocused && c.focused == r {
		color = core.ColorBrightYellow
	}

	c.screen.FillArea(c.ox+first, y, last-first+1, 1, ' ', color)
	c.screen.SetColored(c.ox+first, y, '[', color)
	c.screen.SetColored(c.ox+last, y, ']', color)

	mid := c.ox + (first+last+1)/2
	c.screen.DrawTextColored(mid-utf8.RuneCountInString(label)/2, y, label, color)
}
