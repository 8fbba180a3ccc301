package gfx

import (
	"bytes"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
	"github.com/vovakirdan/dungeon-slimes/internal/platform/gfx/synth"
)

// Note frequencies in Hz.
const (
	noteA2 = 110.00
	noteC3 = 130.81
	noteE3 = 164.81
	noteF3 = 174.61
	noteG3 = 196.00
	noteA3 = 220.00
	noteC4 = 261.63
	noteD4 = 293.66
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
	noteE6 = 1318.51
)

const beat = 200 * time.Millisecond

func note(freq float64, beats float64) synth.Note {
	return synth.Note{Freq: freq, Dur: time.Duration(beats * float64(beat))}
}

// backgroundLoop is a short minor-key phrase over a walking bass line.
func backgroundLoop() []byte {
	melody := []synth.Note{
		note(noteA4, 1), note(noteE4, 1), note(noteC5, 1), note(noteA4, 1),
		note(noteG4, 1), note(noteE4, 1), note(noteD4, 2),
		note(noteE4, 1), note(noteC4, 1), note(noteA4, 1), note(noteG4, 1),
		note(noteE4, 2), synth.Rest(2 * beat),
	}
	bass := []synth.Note{
		note(noteA2, 4), note(noteF3, 4), note(noteC3, 4), note(noteE3, 2), note(noteG3, 2),
	}
	return synth.Mix(
		synth.Render(melody, synth.Triangle, 0.5),
		synth.Render(bass, synth.Sine, 0.4),
	)
}

var cueNotes = map[cave.Cue]struct {
	notes []synth.Note
	wave  synth.Wave
}{
	cave.CueSlimeHit: {
		notes: []synth.Note{note(noteA3, 0.4), note(noteE3, 0.4), note(noteA2, 0.8)},
		wave:  synth.Square,
	},
	cave.CueTreasurePickup: {
		notes: []synth.Note{note(noteE5, 0.3), note(noteA4*2, 0.3), note(noteE6, 0.6)},
		wave:  synth.Triangle,
	},
	cave.CueVictory: {
		notes: []synth.Note{note(noteC5, 0.6), note(noteE5, 0.6), note(noteG5, 0.6), note(noteC6, 2)},
		wave:  synth.Square,
	},
}

// musicPlayer is the part of *audio.Player used for the background loop.
type musicPlayer interface {
	Play()
	Pause()
	Rewind() error
	SetVolume(volume float64)
}

// ebitenAudio plays synthesized music and cues through an ebiten audio context.
type ebitenAudio struct {
	ctx    *audio.Context
	music  musicPlayer
	cues   map[cave.Cue][]byte
	logger *log.Logger
}

var _ cave.Audio = (*ebitenAudio)(nil)

// newEbitenAudio renders every sound up front and prepares the music loop.
func newEbitenAudio(logger *log.Logger) (*ebitenAudio, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(synth.SampleRate)
	}

	loop := backgroundLoop()
	music, err := ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(loop), int64(len(loop))))
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}

	cues := make(map[cave.Cue][]byte, len(cueNotes))
	for cue, def := range cueNotes {
		cues[cue] = synth.Render(def.notes, def.wave, 0.6)
	}

	return &ebitenAudio{ctx: ctx, music: music, cues: cues, logger: logger}, nil
}

// PlayMusic starts the loop from the beginning, also after StopMusic.
func (a *ebitenAudio) PlayMusic(t cave.Track) {
	a.logger.Debug("music started", "track", t)
	if err := a.music.Rewind(); err != nil {
		a.logger.Warn("failed to rewind music", "error", err)
	}
	a.music.Play()
}

func (a *ebitenAudio) SetMusicVolume(v float64) {
	a.music.SetVolume(v)
}

func (a *ebitenAudio) StopMusic() {
	a.logger.Debug("music stopped")
	a.music.Pause()
}

func (a *ebitenAudio) PlaySound(c cave.Cue, v float64) {
	pcm, ok := a.cues[c]
	if !ok {
		a.logger.Warn("unknown sound cue", "cue", c)
		return
	}
	p := a.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(v)
	p.Play()
}
