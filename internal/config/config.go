// Package config provides YAML-based tuning for Dungeon Slimes and the
// difficulty presets applied on top of it.
package config

import (
	"fmt"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
)

// SlimesConfig contains all tunable settings of the game.
type SlimesConfig struct {
	Audio   AudioConfig   `yaml:"audio"`
	Hero    HeroConfig    `yaml:"hero"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Display DisplayConfig `yaml:"display"`
}

// AudioConfig defines music and cue volumes.
type AudioConfig struct {
	MusicEnabled  bool    `yaml:"music_enabled"`
	MusicVolume   float64 `yaml:"music_volume"`   // 0.0 - 1.0
	VictoryVolume float64 `yaml:"victory_volume"` // 0.0 - 1.0
}

// HeroConfig defines hero movement and animation.
type HeroConfig struct {
	Speed         float64 `yaml:"speed"`          // World units per second
	FrameDuration float64 `yaml:"frame_duration"` // Seconds per animation frame
}

// EnemyConfig defines slime patrol and animation.
type EnemyConfig struct {
	FrameDuration float64 `yaml:"frame_duration"`
	SpeedScale    float64 `yaml:"speed_scale"`    // Multiplier on per-tick roster speeds
	WalkAnimation bool    `yaml:"walk_animation"` // Cycle walk frames instead of idle frames
}

// DisplayConfig defines host presentation settings.
type DisplayConfig struct {
	Locale   string `yaml:"locale"`    // "en" or "pt_BR"
	TickRate int    `yaml:"tick_rate"` // Frames per second
}

// Validate reports the first setting that cannot produce a playable game.
func (c SlimesConfig) Validate() error {
	switch {
	case c.Hero.Speed <= 0:
		return fmt.Errorf("hero.speed must be positive, got %v", c.Hero.Speed)
	case c.Hero.FrameDuration <= 0:
		return fmt.Errorf("hero.frame_duration must be positive, got %v", c.Hero.FrameDuration)
	case c.Enemy.FrameDuration <= 0:
		return fmt.Errorf("enemy.frame_duration must be positive, got %v", c.Enemy.FrameDuration)
	case c.Enemy.SpeedScale < 0:
		return fmt.Errorf("enemy.speed_scale must not be negative, got %v", c.Enemy.SpeedScale)
	case c.Audio.MusicVolume < 0 || c.Audio.MusicVolume > 1:
		return fmt.Errorf("audio.music_volume must be within [0, 1], got %v", c.Audio.MusicVolume)
	case c.Audio.VictoryVolume < 0 || c.Audio.VictoryVolume > 1:
		return fmt.Errorf("audio.victory_volume must be within [0, 1], got %v", c.Audio.VictoryVolume)
	case c.Display.TickRate <= 0:
		return fmt.Errorf("display.tick_rate must be positive, got %d", c.Display.TickRate)
	}
	return nil
}

// Settings converts the config into session settings.
func (c SlimesConfig) Settings() cave.Settings {
	return cave.Settings{
		HeroSpeed:          c.Hero.Speed,
		HeroFrameDuration:  c.Hero.FrameDuration,
		EnemyFrameDuration: c.Enemy.FrameDuration,
		EnemySpeedScale:    c.Enemy.SpeedScale,
		EnemyWalkFrames:    c.Enemy.WalkAnimation,
		MusicEnabled:       c.Audio.MusicEnabled,
		MusicVolume:        c.Audio.MusicVolume,
		VictoryVolume:      c.Audio.VictoryVolume,
	}
}
