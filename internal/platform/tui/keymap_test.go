package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dungeon-slimes/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap(func(s string) string { return s })

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionSelect, false},
		{"m", runeKey('m'), core.ActionMusic, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('x'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := keys.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestHelpUsesTranslator(t *testing.T) {
	keys := DefaultKeyMap(func(s string) string { return "<" + s + ">" })

	if got := keys.Quit.Help().Desc; got != "<HELP_QUIT>" {
		t.Errorf("Quit help = %q, want translated text", got)
	}
}

func TestShortHelpListsMusic(t *testing.T) {
	keys := DefaultKeyMap(func(s string) string { return s })

	short := keys.ShortHelp()
	if len(short) != 4 {
		t.Fatalf("ShortHelp() has %d bindings, want 4", len(short))
	}

	found := false
	for _, b := range short {
		if b.Help().Key == "m" {
			found = true
		}
	}
	if !found {
		t.Error("ShortHelp() should show the music toggle")
	}
}
