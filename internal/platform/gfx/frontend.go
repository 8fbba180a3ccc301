package gfx

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
	"github.com/vovakirdan/dungeon-slimes/internal/registry"
)

func init() {
	registry.Register(FrontendID, func() registry.Frontend {
		return &Frontend{}
	})
}

// FrontendID is the registry id of the graphical host.
const FrontendID = "gfx"

// Frontend runs the game in a desktop window.
type Frontend struct{}

func (f *Frontend) ID() string    { return FrontendID }
func (f *Frontend) Title() string { return "Desktop window (ebiten)" }

// Run opens the window and blocks until it is closed or Exit is chosen.
func (f *Frontend) Run(ctx context.Context, opts registry.Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fonts, err := loadFonts()
	if err != nil {
		return err
	}
	sound, err := newEbitenAudio(logger)
	if err != nil {
		return err
	}

	tr := opts.Translator
	if tr == nil {
		tr = func(s string) string { return s }
	}

	game := &Game{
		ctx:     ctx,
		session: cave.NewSession(opts.Settings, sound, tr),
		canvas:  &imageCanvas{fonts: fonts},
		logger:  logger,
	}

	ebiten.SetWindowSize(int(cave.WorldWidth), int(cave.WorldHeight))
	ebiten.SetWindowTitle(tr(cave.MsgTitle))
	if opts.Runtime.TickRate > 0 {
		ebiten.SetTPS(opts.Runtime.TickRate)
	}

	logger.Info("window opened", "tps", ebiten.TPS())
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
