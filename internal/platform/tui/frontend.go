package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dungeon-slimes/internal/registry"
)

func init() {
	registry.Register(FrontendID, func() registry.Frontend {
		return &Frontend{}
	})
}

// FrontendID is the registry id of the terminal host.
const FrontendID = "tui"

// Frontend runs the game inside the terminal.
type Frontend struct{}

func (f *Frontend) ID() string    { return FrontendID }
func (f *Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run starts the Bubble Tea program and blocks until it exits.
func (f *Frontend) Run(ctx context.Context, opts registry.Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithContext(ctx),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Menu buttons are clickable
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
