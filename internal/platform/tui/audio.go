package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
)

// logAudio stands in for a sound device: every request is written to the
// run log so music and cues can be followed there.
type logAudio struct {
	logger *log.Logger
}

var _ cave.Audio = logAudio{}

func (a logAudio) PlayMusic(t cave.Track) {
	a.logger.Debug("music started", "track", t)
}

func (a logAudio) SetMusicVolume(v float64) {
	a.logger.Debug("music volume", "volume", v)
}

func (a logAudio) StopMusic() {
	a.logger.Debug("music stopped")
}

func (a logAudio) PlaySound(c cave.Cue, v float64) {
	a.logger.Info("sound", "cue", c, "volume", v)
}
