package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets in increasing difficulty.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty resolves a preset name. The empty string means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
}

// SpeedScaleForPreset returns the enemy speed multiplier for a preset.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.35
	default:
		return 1.0
	}
}

// ApplyPreset scales the configured enemy speed by the preset multiplier.
// Slime speeds stay per-tick; only their magnitude changes.
func ApplyPreset(cfg *SlimesConfig, preset DifficultyPreset) {
	cfg.Enemy.SpeedScale *= SpeedScaleForPreset(preset)
}
