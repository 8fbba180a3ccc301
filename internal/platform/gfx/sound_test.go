package gfx

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dungeon-slimes/internal/cave"
)

type fakePlayer struct {
	calls  []string
	volume float64
}

func (p *fakePlayer) Play()  { p.calls = append(p.calls, "play") }
func (p *fakePlayer) Pause() { p.calls = append(p.calls, "pause") }

func (p *fakePlayer) Rewind() error {
	p.calls = append(p.calls, "rewind")
	return nil
}

func (p *fakePlayer) SetVolume(v float64) { p.volume = v }

func TestMusicRestartsFromTheTop(t *testing.T) {
	player := &fakePlayer{}
	a := &ebitenAudio{music: player, logger: log.New(io.Discard)}

	a.PlayMusic(cave.TrackBackground)
	a.SetMusicVolume(0.4)
	a.StopMusic()
	a.PlayMusic(cave.TrackBackground)

	want := []string{"rewind", "play", "pause", "rewind", "play"}
	if len(player.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", player.calls, want)
	}
	for i := range want {
		if player.calls[i] != want[i] {
			t.Errorf("calls = %v, want %v", player.calls, want)
			break
		}
	}
	if player.volume != 0.4 {
		t.Errorf("volume = %v, want 0.4", player.volume)
	}
}

func TestUnknownCueIsIgnored(t *testing.T) {
	a := &ebitenAudio{music: &fakePlayer{}, cues: map[cave.Cue][]byte{}, logger: log.New(io.Discard)}
	a.PlaySound(cave.CueVictory, 1)
}

func TestCueNotesCoverEveryCue(t *testing.T) {
	for _, cue := range []cave.Cue{cave.CueSlimeHit, cave.CueTreasurePickup, cave.CueVictory} {
		if def, ok := cueNotes[cue]; !ok || len(def.notes) == 0 {
			t.Errorf("cue %v has no notes", cue)
		}
	}
	if len(backgroundLoop()) == 0 {
		t.Error("backgroundLoop() rendered no samples")
	}
}
