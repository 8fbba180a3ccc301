// Package gfx hosts Dungeon Slimes in a desktop window using ebiten.
// Sprites are drawn as vector shapes and sounds are synthesized at start-up.
package gfx

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
	"github.com/vovakirdan/dungeon-slimes/internal/core"
)

var (
	keysLeft  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	keysRight = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	keysUp    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	keysDown  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
)

// Game adapts a session to ebiten's game loop.
type Game struct {
	ctx     context.Context
	session *cave.Session
	canvas  *imageCanvas
	logger  *log.Logger
	keys    []ebiten.Key
}

var _ ebiten.Game = (*Game)(nil)

// Update polls input and advances the session by one tick. ebiten calls it
// at a fixed rate, so dt is the nominal tick length.
func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		g.logger.Info("shutting down", "reason", err)
		return ebiten.Termination
	}
	if g.session.QuitRequested() {
		g.logger.Info("exit selected")
		return ebiten.Termination
	}

	prev := g.session.State()
	g.handleEvents()

	dt := 1 / float64(ebiten.TPS())
	res := g.session.Update(dt, directions(ebiten.IsKeyPressed))

	for _, ev := range res.Events {
		g.logger.Info("event", "kind", ev.Kind)
	}
	if cur := g.session.State(); cur != prev {
		kv := append([]any{"from", prev, "to", cur}, g.session.Snapshot().KeyVals()...)
		g.logger.Info("state changed", kv...)
	}
	return nil
}

// handleEvents forwards discrete key and mouse presses to the session.
func (g *Game) handleEvents() {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	g.pressKeys(g.keys)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}
}

// pressKeys reports key-down events to the session.
func (g *Game) pressKeys(keys []ebiten.Key) {
	for _, k := range keys {
		g.session.OnKeyDown(sessionKey(k))
	}
}

// click forwards a left click at logical pixel (x, y). Logical pixels are
// world units, see Layout.
func (g *Game) click(x, y int) {
	music := g.session.MusicEnabled()
	g.session.OnPointerDown(core.V(float64(x), float64(y)))
	if after := g.session.MusicEnabled(); after != music {
		g.logger.Info("music toggled", "enabled", after)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.session.Draw(g.canvas)
}

// Layout keeps the logical screen at the world size; ebiten scales the window.
func (g *Game) Layout(int, int) (int, int) {
	return int(cave.WorldWidth), int(cave.WorldHeight)
}

// sessionKey maps a physical key to the session's key events.
func sessionKey(k ebiten.Key) cave.Key {
	if k == ebiten.KeyEnter || k == ebiten.KeyNumpadEnter {
		return cave.KeyConfirm
	}
	return cave.KeyOther
}

// directions samples the held direction keys through pressed.
func directions(pressed func(ebiten.Key) bool) cave.Directions {
	return cave.Directions{
		Left:  anyPressed(pressed, keysLeft),
		Right: anyPressed(pressed, keysRight),
		Up:    anyPressed(pressed, keysUp),
		Down:  anyPressed(pressed, keysDown),
	}
}

func anyPressed(pressed func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if pressed(k) {
			return true
		}
	}
	return false
}
