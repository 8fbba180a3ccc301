package cave

import "github.com/vovakirdan/dungeon-slimes/internal/core"

// Control is one activatable entry of the main menu.
type Control int

const (
	ControlPlay Control = iota
	ControlMusic
	ControlExit
)

// String returns the control name.
func (c Control) String() string {
	switch c {
	case ControlPlay:
		return "play"
	case ControlMusic:
		return "music"
	case ControlExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Button is a menu control with its on-screen area.
type Button struct {
	Control Control
	Rect    core.Rect
}

// Menu geometry in world units.
const (
	buttonWidth  = 200
	buttonHeight = 60
	titleY       = 120
)

// MenuButtons returns the menu buttons in display order.
func MenuButtons() []Button {
	cx := float64(int(WorldWidth) / 2)
	return []Button{
		{Control: ControlPlay, Rect: core.RectCentered(core.V(cx, 250), buttonWidth, buttonHeight)},
		{Control: ControlMusic, Rect: core.RectCentered(core.V(cx, 340), buttonWidth, buttonHeight)},
		{Control: ControlExit, Rect: core.RectCentered(core.V(cx, 430), buttonWidth, buttonHeight)},
	}
}

// ButtonAt returns the first control whose button contains p.
func ButtonAt(p core.Vec2) (Control, bool) {
	for _, b := range MenuButtons() {
		if b.Rect.Contains(p) {
			return b.Control, true
		}
	}
	return 0, false
}
