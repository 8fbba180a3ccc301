package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
	"github.com/vovakirdan/dungeon-slimes/internal/platform/tui"
	"github.com/vovakirdan/dungeon-slimes/internal/registry"
)

func TestAnnotatedMap(t *testing.T) {
	rows := annotatedMap()

	tests := []struct {
		name string
		pos  cave.CellPos
		want rune
	}{
		{"hero", cave.HeroSpawn, symbolHero},
		{"treasure", cave.TreasureCell, symbolTreasure},
		{"exit", cave.ExitCell, symbolExit},
		{"slime", cave.EnemyRoster[0].Cell, symbolSlime},
		{"corner wall", cave.CellPos{Col: 0, Row: 0}, '#'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rows[tt.pos.Row][tt.pos.Col]; got != tt.want {
				t.Errorf("cell %v = %q, want %q", tt.pos, got, tt.want)
			}
		})
	}
}

func TestPrintMapPlain(t *testing.T) {
	var buf bytes.Buffer
	printMap(&buf, true)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(cave.CaveMap) {
		t.Fatalf("printed %d lines, want %d", len(lines), len(cave.CaveMap))
	}
	if lines[6] != "#H.....S..X#" {
		t.Errorf("row 6 = %q", lines[6])
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := expandHome("~/.slimes/x.log"); got != filepath.Join(home, ".slimes", "x.log") {
		t.Errorf("expandHome() = %q", got)
	}
	if got := expandHome("/tmp/x.log"); got != "/tmp/x.log" {
		t.Errorf("expandHome() = %q, want unchanged", got)
	}
}

func TestNewLoggerWritesRunID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "slimes.log")

	logger, closeLog, err := newLogger(path, false)
	if err != nil {
		t.Fatalf("newLogger() error: %v", err)
	}
	logger.Info("hello")
	closeLog()
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "hello") || !strings.Contains(out, "run=") {
		t.Errorf("log output = %q", out)
	}
}

func TestTerminalFrontendAlwaysRegistered(t *testing.T) {
	if !registry.Exists(tui.FrontendID) {
		t.Fatalf("frontend %q not registered", tui.FrontendID)
	}
	if err := unknownFrontendError("nope"); !strings.Contains(err.Error(), "slimes frontends") {
		t.Errorf("unknownFrontendError() = %v", err)
	}
}
