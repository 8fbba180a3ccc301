package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
	"github.com/vovakirdan/dungeon-slimes/internal/core"
)

// KeyMap defines the key bindings of the terminal host.
// It centralizes key bindings and makes them testable.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Select  key.Binding // Menu only; game over and victory wait for Enter
	Music   key.Binding
	Quit    key.Binding

	// Move only exists for the help line.
	Move key.Binding
}

// DefaultKeyMap returns the default bindings with help text resolved
// through tr.
func DefaultKeyMap(tr cave.Translator) KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", tr("HELP_SELECT")),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
		),
		Music: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", tr("HELP_MUSIC")),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", tr("HELP_QUIT")),
		),
		Move: key.NewBinding(
			key.WithKeys("up", "down", "left", "right"),
			key.WithHelp("←↑↓→", tr("HELP_MOVE")),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Confirm, k.Music, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Confirm},
		{k.Music, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Select):
		return core.ActionSelect, false
	case key.Matches(msg, k.Music):
		return core.ActionMusic, false
	}

	return core.ActionNone, false
}
