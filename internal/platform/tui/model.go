package tui

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
	"github.com/vovakirdan/dungeon-slimes/internal/core"
	"github.com/vovakirdan/dungeon-slimes/internal/registry"
)

// holdWindow is how long one key press keeps a direction held. It is shorter
// than one cell step, so a tap moves exactly one cell.
const holdWindow = 250 * time.Millisecond

var warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

// Model is the Bubble Tea model hosting a game session.
type Model struct {
	session  *cave.Session
	screen   *core.Screen
	canvas   *screenCanvas
	keys     KeyMap
	help     help.Model
	held     *heldKeys
	clock    frameClock
	config   core.RuntimeConfig
	logger   *log.Logger
	focus    int // Index into cave.MenuButtons()
	quitting bool
}

// NewModel creates a model with a fresh session in the menu.
func NewModel(opts registry.Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tr := opts.Translator
	if tr == nil {
		tr = func(s string) string { return s }
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH-1)
	holdTicks := int(math.Ceil(holdWindow.Seconds() * float64(cfg.TickRate)))

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session: cave.NewSession(opts.Settings, logAudio{logger: logger}, tr),
		screen:  screen,
		canvas:  newScreenCanvas(screen),
		keys:    DefaultKeyMap(tr),
		help:    h,
		held:    newHeldKeys(holdTicks),
		clock:   newFrameClock(cfg.TickRate),
		config:  cfg,
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started", "state", m.session.State(), "music", m.session.MusicEnabled())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit requested", "key", msg.String())
		return m, tea.Quit
	}

	prev := m.session.State()
	switch prev {
	case cave.StateMenu:
		m.handleMenuAction(action)
	case cave.StatePlaying:
		if _, ok := opposite[action]; ok {
			m.held.Press(action)
		}
	}

	if action == core.ActionConfirm {
		m.session.OnKeyDown(cave.KeyConfirm)
	} else {
		m.session.OnKeyDown(cave.KeyOther)
	}

	return m.afterInput(prev)
}

// handleMenuAction moves the focus cursor or activates the focused control.
func (m *Model) handleMenuAction(action core.Action) {
	buttons := cave.MenuButtons()

	switch action {
	case core.ActionUp:
		m.focus = (m.focus + len(buttons) - 1) % len(buttons)
	case core.ActionDown:
		m.focus = (m.focus + 1) % len(buttons)
	case core.ActionConfirm, core.ActionSelect:
		m.activate(buttons[m.focus].Control)
	case core.ActionMusic:
		m.activate(cave.ControlMusic)
	}
}

// handleMouse forwards left clicks to the session as world positions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	prev := m.session.State()
	p := m.canvas.ToWorld(msg.X, msg.Y)

	if ctl, ok := cave.ButtonAt(p); ok && prev == cave.StateMenu {
		m.focus = int(ctl)
		m.logger.Debug("menu control", "control", ctl, "via", "mouse")
		music := m.session.MusicEnabled()
		m.session.OnPointerDown(p)
		m.logMusic(music)
	} else {
		m.session.OnPointerDown(p)
	}

	return m.afterInput(prev)
}

func (m *Model) activate(ctl cave.Control) {
	m.logger.Debug("menu control", "control", ctl, "via", "keyboard")
	music := m.session.MusicEnabled()
	m.session.Activate(ctl)
	m.logMusic(music)
}

func (m *Model) logMusic(before bool) {
	if after := m.session.MusicEnabled(); after != before {
		m.logger.Info("music toggled", "enabled", after)
	}
}

// afterInput reacts to state changes caused by input.
func (m Model) afterInput(prev cave.State) (tea.Model, tea.Cmd) {
	if m.session.QuitRequested() {
		m.quitting = true
		m.logger.Info("exit selected")
		return m, tea.Quit
	}
	m.observe(prev)
	return m, nil
}

// observe logs a state transition and resets host input state on entering
// a new run or the menu.
func (m *Model) observe(prev cave.State) {
	cur := m.session.State()
	if cur == prev {
		return
	}

	kv := append([]any{"from", prev, "to", cur}, m.session.Snapshot().KeyVals()...)
	m.logger.Info("state changed", kv...)
	switch cur {
	case cave.StateMenu:
		m.focus = 0
		m.held.Reset()
	case cave.StatePlaying:
		m.held.Reset()
	}
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.canvas.layout()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.clock.Delta(now)
	prev := m.session.State()

	res := m.session.Update(dt, cave.DirectionsFrom(m.held.Frame()))
	m.held.Tick()

	for _, ev := range res.Events {
		if ev.Kind == cave.EventHit {
			m.logger.Info("event", "kind", ev.Kind, "enemy", ev.Enemy)
			continue
		}
		m.logger.Info("event", "kind", ev.Kind)
	}
	m.observe(prev)

	return m, tickCmd(m.config.TickRate)
}

// Session exposes the hosted session.
func (m Model) Session() *cave.Session {
	return m.session
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.screen.Width() < mapCols+2 || m.screen.Height() < mapRows+2 {
		return warnStyle.Render(fmt.Sprintf("Terminal too small: need %dx%d", mapCols+2, mapRows+3))
	}

	if m.session.State() == cave.StateMenu {
		m.canvas.Focus(cave.MenuButtons()[m.focus].Rect)
	} else {
		m.canvas.ClearFocus()
	}
	m.session.Draw(m.canvas)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
