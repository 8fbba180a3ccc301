package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dungeon-slimes/internal/config"
	"github.com/vovakirdan/dungeon-slimes/internal/core"
	"github.com/vovakirdan/dungeon-slimes/internal/i18n"
	"github.com/vovakirdan/dungeon-slimes/internal/platform/tui"
	"github.com/vovakirdan/dungeon-slimes/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLocale     string
	flagFrontend   string
)

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().StringVar(&flagLocale, "locale", "", "Display language: en, pt_BR (default: from config)")
	rootCmd.Flags().StringVar(&flagFrontend, "frontend", tui.FrontendID, "Frontend to run (see 'slimes frontends')")
}

// gameSetup is everything resolved from flags and config before launch.
type gameSetup struct {
	cfg        config.SlimesConfig
	preset     config.DifficultyPreset
	catalog    *i18n.Catalog
	frontendID string
}

// resolveSetup loads the config and applies command-line overrides.
func resolveSetup(cmd *cobra.Command) (gameSetup, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return gameSetup{}, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return gameSetup{}, err
	}
	config.ApplyPreset(&cfg, preset)

	if cmd.Flags().Changed("fps") {
		cfg.Display.TickRate = flagFPS
	}
	if flagLocale != "" {
		cfg.Display.Locale = flagLocale
	}
	if err := cfg.Validate(); err != nil {
		return gameSetup{}, err
	}

	catalog, err := i18n.Load(cfg.Display.Locale)
	if err != nil {
		return gameSetup{}, err
	}

	if !registry.Exists(flagFrontend) {
		return gameSetup{}, unknownFrontendError(flagFrontend)
	}

	return gameSetup{cfg: cfg, preset: preset, catalog: catalog, frontendID: flagFrontend}, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	setup, err := resolveSetup(cmd)
	if err != nil {
		fail(err)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		fail(err)
	}
	defer closeLog()

	frontend, err := registry.Create(setup.frontendID)
	if err != nil {
		fail(err)
	}

	// Get terminal size for the canvas
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: setup.cfg.Display.TickRate,
	}

	logger.Info("starting",
		"frontend", frontend.ID(),
		"difficulty", setup.preset,
		"locale", setup.catalog.Locale(),
		"fps", runtime.TickRate,
		"music", setup.cfg.Audio.MusicEnabled,
		"enemy_speed_scale", setup.cfg.Enemy.SpeedScale,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = frontend.Run(ctx, registry.Options{
		Settings:   setup.cfg.Settings(),
		Translator: setup.catalog.Get,
		Runtime:    runtime,
		Logger:     logger,
	})
	if err != nil {
		logger.Error("frontend failed", "error", err)
		closeLog()
		fail(err)
	}

	logger.Info("exited")
}
