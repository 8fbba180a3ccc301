package gfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
	"github.com/vovakirdan/dungeon-slimes/internal/core"
)

// fontScale converts nominal text sizes to face sizes. Nominal sizes follow
// bitmap font heights, which run larger than vector em sizes.
const fontScale = 0.72

var (
	colorWall      = color.RGBA{70, 70, 82, 255}
	colorWallEdge  = color.RGBA{48, 48, 58, 255}
	colorFloor     = color.RGBA{38, 30, 26, 255}
	colorFloorEdge = color.RGBA{50, 40, 34, 255}
	colorTreasure  = color.RGBA{240, 200, 40, 255}
	colorChest     = color.RGBA{130, 80, 30, 255}
	colorDoor      = color.RGBA{40, 120, 60, 255}
	colorDoorFrame = color.RGBA{20, 70, 35, 255}
	colorHero      = color.RGBA{80, 150, 255, 255}
	colorHeroStep  = color.RGBA{120, 180, 255, 255}
	colorSlime     = color.RGBA{90, 210, 90, 255}
	colorSlimeDark = color.RGBA{50, 160, 60, 255}
	colorEye       = color.RGBA{20, 20, 20, 255}
	colorButton    = color.RGBA{50, 50, 70, 255}
	colorPanel     = color.RGBA{0, 0, 0, 220}
)

var backdropColors = map[cave.Backdrop]color.RGBA{
	cave.BackdropMenu:     {20, 20, 30, 255},
	cave.BackdropPlaying:  {0, 0, 0, 255},
	cave.BackdropGameOver: {40, 0, 0, 255},
	cave.BackdropVictory:  {0, 30, 10, 255},
}

var toneColors = map[cave.Tone]color.RGBA{
	cave.ToneWhite:  {255, 255, 255, 255},
	cave.ToneRed:    {230, 60, 60, 255},
	cave.ToneYellow: {250, 220, 60, 255},
}

// imageCanvas draws sprites as vector shapes onto an ebiten image.
// World units map 1:1 to logical pixels.
type imageCanvas struct {
	dst   *ebiten.Image
	fonts *fontSet
}

var _ cave.Canvas = (*imageCanvas)(nil)

func (c *imageCanvas) Fill(b cave.Backdrop) {
	c.dst.Fill(backdropColors[b])
}

func (c *imageCanvas) DrawSprite(id cave.SpriteID, pos core.Vec2) {
	x, y := float32(pos.X), float32(pos.Y)
	half := float32(cave.TileSize / 2)

	switch id {
	case cave.SpriteWall:
		vector.DrawFilledRect(c.dst, x-half, y-half, 2*half, 2*half, colorWallEdge, false)
		vector.DrawFilledRect(c.dst, x-half+2, y-half+2, 2*half-4, 2*half-4, colorWall, false)
	case cave.SpriteFloor:
		vector.DrawFilledRect(c.dst, x-half, y-half, 2*half, 2*half, colorFloor, false)
		vector.StrokeRect(c.dst, x-half, y-half, 2*half, 2*half, 1, colorFloorEdge, false)
	case cave.SpriteTreasure:
		vector.DrawFilledRect(c.dst, x-14, y-8, 28, 18, colorChest, false)
		vector.DrawFilledRect(c.dst, x-14, y-12, 28, 6, colorTreasure, false)
		vector.DrawFilledCircle(c.dst, x, y, 3, colorTreasure, true)
	case cave.SpriteExit:
		vector.DrawFilledRect(c.dst, x-18, y-26, 36, 52, colorDoorFrame, false)
		vector.DrawFilledRect(c.dst, x-14, y-22, 28, 48, colorDoor, false)
		vector.DrawFilledCircle(c.dst, x+8, y+4, 2.5, colorTreasure, true)
	case cave.SpriteHeroIdle1, cave.SpriteHeroIdle2:
		c.drawHero(x, y, heroBob(id), colorHero)
	case cave.SpriteHeroWalk1, cave.SpriteHeroWalk2, cave.SpriteHeroWalk3:
		c.drawHero(x, y, heroBob(id), colorHeroStep)
	case cave.SpriteSlimeIdle1, cave.SpriteSlimeWalk1:
		c.drawSlime(x, y, 0)
	case cave.SpriteSlimeIdle2, cave.SpriteSlimeWalk2:
		c.drawSlime(x, y, 3)
	}
}

// heroBob is the vertical offset of each hero frame.
func heroBob(id cave.SpriteID) float32 {
	switch id {
	case cave.SpriteHeroIdle2, cave.SpriteHeroWalk2:
		return -2
	case cave.SpriteHeroWalk3:
		return 2
	default:
		return 0
	}
}

func (c *imageCanvas) drawHero(x, y, bob float32, body color.Color) {
	vector.DrawFilledRect(c.dst, x-10, y-6+bob, 20, 22, body, true)
	vector.DrawFilledCircle(c.dst, x, y-14+bob, 9, body, true)
	vector.DrawFilledCircle(c.dst, x-3, y-15+bob, 1.5, colorEye, true)
	vector.DrawFilledCircle(c.dst, x+3, y-15+bob, 1.5, colorEye, true)
}

// drawSlime draws a blob; squash flattens it for the second frame.
func (c *imageCanvas) drawSlime(x, y, squash float32) {
	vector.DrawFilledRect(c.dst, x-16-squash/2, y+2+squash, 32+squash, 12-squash, colorSlimeDark, true)
	vector.DrawFilledCircle(c.dst, x, y+2+squash, 14-squash/2, colorSlime, true)
	vector.DrawFilledCircle(c.dst, x-5, y-1+squash, 2, colorEye, true)
	vector.DrawFilledCircle(c.dst, x+5, y-1+squash, 2, colorEye, true)
}

func (c *imageCanvas) DrawText(s string, center core.Vec2, size cave.TextSize, tone cave.Tone) {
	face := c.fonts.face(size)
	w, h := text.Measure(s, face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X-w/2, center.Y-h/2)
	op.ColorScale.ScaleWithColor(toneColors[tone])
	text.Draw(c.dst, s, face, op)
}

func (c *imageCanvas) DrawPanel(r core.Rect, border cave.Tone) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.DrawFilledRect(c.dst, x, y, w, h, colorPanel, false)
	vector.StrokeRect(c.dst, x, y, w, h, 3, toneColors[border], false)
}

func (c *imageCanvas) DrawButton(r core.Rect, label string) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.DrawFilledRect(c.dst, x, y, w, h, colorButton, false)
	vector.StrokeRect(c.dst, x, y, w, h, 2, toneColors[cave.ToneWhite], false)
	c.DrawText(label, r.Center(), cave.TextBody, cave.ToneWhite)
}
