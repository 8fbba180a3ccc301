package config

import (
	_ "embed"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
)

//go:embed defaults/slimes.yaml
var defaultSlimesYAML []byte

// DefaultConfig returns the default game configuration.
func DefaultConfig() SlimesConfig {
	s := cave.DefaultSettings()
	return SlimesConfig{
		Audio: AudioConfig{
			MusicEnabled:  s.MusicEnabled,
			MusicVolume:   s.MusicVolume,
			VictoryVolume: s.VictoryVolume,
		},
		Hero: HeroConfig{
			Speed:         s.HeroSpeed,
			FrameDuration: s.HeroFrameDuration,
		},
		Enemy: EnemyConfig{
			FrameDuration: s.EnemyFrameDuration,
			SpeedScale:    s.EnemySpeedScale,
			WalkAnimation: s.EnemyWalkFrames,
		},
		Display: DisplayConfig{
			Locale:   "en",
			TickRate: 60,
		},
	}
}
