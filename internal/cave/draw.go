package cave

import "github.com/vovakirdan/dungeon-slimes/internal/core"

// Message keys resolved through the session's Translator.
const (
	MsgTitle         = "TITLE"
	MsgMenuPlay      = "MENU_PLAY"
	MsgMenuMusicOn   = "MENU_MUSIC_ON"
	MsgMenuMusicOff  = "MENU_MUSIC_OFF"
	MsgMenuExit      = "MENU_EXIT"
	MsgGameOverTitle = "GAME_OVER_TITLE"
	MsgGameOverText  = "GAME_OVER_TEXT"
	MsgVictoryTitle  = "VICTORY_TITLE"
	MsgVictoryText   = "VICTORY_TEXT"
	MsgReturnHint    = "RETURN_HINT"
)

// Result panel sizes in world units.
const (
	panelWidth          = 520
	gameOverPanelHeight = 220
	victoryPanelHeight  = 240
)

// Draw renders the current state onto c.
func (s *Session) Draw(c Canvas) {
	switch s.state {
	case StateMenu:
		s.drawMenu(c)
	case StatePlaying:
		s.drawPlaying(c)
	case StateGameOver:
		s.drawResult(c, BackdropGameOver, gameOverPanelHeight, ToneRed, MsgGameOverTitle, MsgGameOverText, 50)
	case StateVictory:
		s.drawResult(c, BackdropVictory, victoryPanelHeight, ToneYellow, MsgVictoryTitle, MsgVictoryText, 60)
	}
}

// ButtonLabel returns the display text of a menu control.
func (s *Session) ButtonLabel(ctl Control) string {
	switch ctl {
	case ControlPlay:
		return s.tr(MsgMenuPlay)
	case ControlMusic:
		if s.musicEnabled {
			return s.tr(MsgMenuMusicOn)
		}
		return s.tr(MsgMenuMusicOff)
	case ControlExit:
		return s.tr(MsgMenuExit)
	default:
		return ""
	}
}

func (s *Session) drawMenu(c Canvas) {
	c.Fill(BackdropMenu)
	c.DrawText(s.tr(MsgTitle), core.V(WorldWidth/2, titleY), TextTitle, ToneWhite)
	for _, b := range MenuButtons() {
		c.DrawButton(b.Rect, s.ButtonLabel(b.Control))
	}
}

func (s *Session) drawTiles(c Canvas) {
	s.grid.ForEachCell(func(col, row int, kind CellKind) {
		if kind == CellWall {
			c.DrawSprite(SpriteWall, TileCenter(col, row))
		}
	})
	s.grid.ForEachCell(func(col, row int, kind CellKind) {
		if kind == CellFloor {
			c.DrawSprite(SpriteFloor, TileCenter(col, row))
		}
	})
}

func (s *Session) drawPlaying(c Canvas) {
	c.Fill(BackdropPlaying)
	s.drawTiles(c)
	s.treasure.Draw(c)
	s.exit.Draw(c)
	s.hero.Draw(c)
	for _, e := range s.enemies {
		e.Draw(c)
	}
}

// drawResult draws the frozen playfield without enemies and a message panel.
// spacing is the vertical distance between the panel's text lines.
func (s *Session) drawResult(c Canvas, bg Backdrop, panelHeight float64, tone Tone, titleKey, textKey string, spacing float64) {
	c.Fill(bg)
	s.drawTiles(c)
	s.exit.Draw(c)
	s.treasure.Draw(c)
	s.hero.Draw(c)

	center := core.V(WorldWidth/2, WorldHeight/2)
	c.DrawPanel(core.RectCentered(center, panelWidth, panelHeight), tone)
	c.DrawText(s.tr(titleKey), core.V(center.X, center.Y-spacing), TextHeading, tone)
	c.DrawText(s.tr(textKey), center, TextBody, ToneWhite)
	c.DrawText(s.tr(MsgReturnHint), core.V(center.X, center.Y+spacing), TextHint, tone)
}
