package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
	"github.com/vovakirdan/dungeon-slimes/internal/core"
	"github.com/vovakirdan/dungeon-slimes/internal/registry"
)

func newTestModel() Model {
	return NewModel(registry.Options{
		Settings: cave.DefaultSettings(),
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestEnterStartsGame(t *testing.T) {
	m := newTestModel()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Session().State() != cave.StatePlaying {
		t.Errorf("State() = %v, want playing", m.Session().State())
	}
}

func TestMenuFocusAndExit(t *testing.T) {
	m := newTestModel()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.focus != 2 {
		t.Fatalf("focus = %d, want 2", m.focus)
	}

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Session().QuitRequested() {
		t.Error("Exit should request quit")
	}
	if !isQuit(cmd) {
		t.Error("Exit should return tea.Quit")
	}
}

func TestMenuFocusWraps(t *testing.T) {
	m := newTestModel()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.focus != 2 {
		t.Errorf("focus = %d, want 2", m.focus)
	}
}

func TestMusicKeyToggles(t *testing.T) {
	m := newTestModel()

	m, _ = send(t, m, runeKey('m'))
	if m.Session().MusicEnabled() {
		t.Error("music should be off")
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel()

	m, cmd := send(t, m, runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestMouseClickPlay(t *testing.T) {
	m := newTestModel()

	m, _ = send(t, m, tea.MouseMsg{
		X:      m.canvas.ox + 20,
		Y:      m.canvas.oy + 7,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if m.Session().State() != cave.StatePlaying {
		t.Errorf("State() = %v, want playing", m.Session().State())
	}
}

func TestMouseReleaseIgnored(t *testing.T) {
	m := newTestModel()

	m, _ = send(t, m, tea.MouseMsg{
		X:      m.canvas.ox + 20,
		Y:      m.canvas.oy + 7,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})

	if m.Session().State() != cave.StateMenu {
		t.Errorf("State() = %v, want menu", m.Session().State())
	}
}

func TestHeldKeyMovesHero(t *testing.T) {
	m := newTestModel()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	start := m.Session().Hero().Position()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})

	now := time.Unix(0, 0)
	for i := 0; i < 30; i++ {
		m, _ = send(t, m, TickMsg(now))
		now = now.Add(time.Second / 60)
	}

	want := cave.TileCenter(2, 6)
	if m.Session().Hero().Position() != want {
		t.Errorf("hero at %v, want %v (started at %v)", m.Session().Hero().Position(), want, start)
	}
}

func TestViewShowsMenu(t *testing.T) {
	m := newTestModel()

	out := m.View()
	if !strings.Contains(out, cave.MsgMenuPlay) {
		t.Errorf("View() does not contain the play button:\n%s", out)
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newTestModel()
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})

	if !strings.Contains(m.View(), "too small") {
		t.Error("expected a size warning")
	}
}

func TestFrameClock(t *testing.T) {
	c := newFrameClock(50)
	t0 := time.Unix(10, 0)

	if dt := c.Delta(t0); dt != 1.0/50 {
		t.Errorf("first Delta() = %v, want %v", dt, 1.0/50)
	}
	if dt := c.Delta(t0.Add(100 * time.Millisecond)); dt != 0.1 {
		t.Errorf("Delta() = %v, want 0.1", dt)
	}
}

// tickUntil advances the model until the session reaches want.
func tickUntil(t *testing.T, m Model, want cave.State, limit int) Model {
	t.Helper()
	now := time.Unix(0, 0)
	for i := 0; i < limit && m.Session().State() != want; i++ {
		m, _ = send(t, m, TickMsg(now))
		now = now.Add(time.Second / 60)
	}
	if m.Session().State() != want {
		t.Fatalf("State() = %v after %d ticks, want %v", m.Session().State(), limit, want)
	}
	return m
}

func TestSpaceActivatesMenuOnly(t *testing.T) {
	m := newTestModel()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Session().State() != cave.StatePlaying {
		t.Fatalf("State() = %v, want playing after space on Play", m.Session().State())
	}

	m = tickUntil(t, m, cave.StateGameOver, 2000)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.Session().State() != cave.StateGameOver {
		t.Errorf("State() = %v, space should not leave the game over screen", m.Session().State())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Session().State() != cave.StateMenu {
		t.Errorf("State() = %v, want menu after enter", m.Session().State())
	}
}

func TestStateChangeLogsSnapshot(t *testing.T) {
	var buf strings.Builder
	m := NewModel(registry.Options{
		Settings: cave.DefaultSettings(),
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Logger:   log.New(&buf),
	})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	out := buf.String()
	for _, want := range []string{"state changed", "to=playing", "tick=0", "treasure=false"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}
