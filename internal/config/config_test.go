package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg, err := Parse(defaultSlimesYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestDefaultSettings(t *testing.T) {
	if got := DefaultConfig().Settings(); got != cave.DefaultSettings() {
		t.Errorf("Settings() = %+v, want %+v", got, cave.DefaultSettings())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slimes.yaml")
	data := "hero:\n  speed: 320\naudio:\n  music_enabled: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Hero.Speed != 320 {
		t.Errorf("Hero.Speed = %v, want 320", cfg.Hero.Speed)
	}
	if cfg.Audio.MusicEnabled {
		t.Error("Audio.MusicEnabled should be false")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Hero.FrameDuration != 0.15 {
		t.Errorf("Hero.FrameDuration = %v, want 0.15", cfg.Hero.FrameDuration)
	}
	if cfg.Audio.MusicVolume != 0.4 {
		t.Errorf("Audio.MusicVolume = %v, want 0.4", cfg.Audio.MusicVolume)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	badYAML := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badYAML, []byte("hero: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	badValue := filepath.Join(dir, "value.yaml")
	if err := os.WriteFile(badValue, []byte("hero:\n  speed: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"invalid yaml", badYAML, "failed to parse config"},
		{"invalid value", badValue, "hero.speed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SlimesConfig)
		ok     bool
	}{
		{"defaults", func(*SlimesConfig) {}, true},
		{"zero speed scale freezes slimes", func(c *SlimesConfig) { c.Enemy.SpeedScale = 0 }, true},
		{"zero hero speed", func(c *SlimesConfig) { c.Hero.Speed = 0 }, false},
		{"zero hero frame", func(c *SlimesConfig) { c.Hero.FrameDuration = 0 }, false},
		{"zero enemy frame", func(c *SlimesConfig) { c.Enemy.FrameDuration = 0 }, false},
		{"negative speed scale", func(c *SlimesConfig) { c.Enemy.SpeedScale = -1 }, false},
		{"loud music", func(c *SlimesConfig) { c.Audio.MusicVolume = 1.5 }, false},
		{"negative victory volume", func(c *SlimesConfig) { c.Audio.VictoryVolume = -0.1 }, false},
		{"zero tick rate", func(c *SlimesConfig) { c.Display.TickRate = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 0.75},
		{DifficultyNormal, 1.0},
		{DifficultyHard, 1.35},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tt.preset)
			if cfg.Enemy.SpeedScale != tt.want {
				t.Errorf("SpeedScale = %v, want %v", cfg.Enemy.SpeedScale, tt.want)
			}
		})
	}
}
