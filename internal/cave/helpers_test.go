package cave

import "github.com/vovakirdan/dungeon-slimes/internal/core"

const frameDt = 1.0 / 60.0

type soundCall struct {
	cue    Cue
	volume float64
}

// recordingAudio remembers every audio call in order.
type recordingAudio struct {
	music   []Track
	volumes []float64
	stops   int
	sounds  []soundCall
}

func (a *recordingAudio) PlayMusic(t Track)        { a.music = append(a.music, t) }
func (a *recordingAudio) SetMusicVolume(v float64) { a.volumes = append(a.volumes, v) }
func (a *recordingAudio) StopMusic()               { a.stops++ }
func (a *recordingAudio) PlaySound(c Cue, v float64) {
	a.sounds = append(a.sounds, soundCall{cue: c, volume: v})
}

func (a *recordingAudio) count(c Cue) int {
	n := 0
	for _, s := range a.sounds {
		if s.cue == c {
			n++
		}
	}
	return n
}

type spriteCall struct {
	id  SpriteID
	pos core.Vec2
}

// recordingCanvas remembers draw calls.
type recordingCanvas struct {
	fills   []Backdrop
	sprites []spriteCall
	texts   []string
	panels  []Tone
	buttons []string
}

func (c *recordingCanvas) Fill(b Backdrop) { c.fills = append(c.fills, b) }
func (c *recordingCanvas) DrawSprite(id SpriteID, pos core.Vec2) {
	c.sprites = append(c.sprites, spriteCall{id: id, pos: pos})
}
func (c *recordingCanvas) DrawText(text string, _ core.Vec2, _ TextSize, _ Tone) {
	c.texts = append(c.texts, text)
}
func (c *recordingCanvas) DrawPanel(_ core.Rect, border Tone) { c.panels = append(c.panels, border) }
func (c *recordingCanvas) DrawButton(_ core.Rect, label string) {
	c.buttons = append(c.buttons, label)
}

func (c *recordingCanvas) countSprite(id SpriteID) int {
	n := 0
	for _, s := range c.sprites {
		if s.id == id {
			n++
		}
	}
	return n
}

// boxAt is a HasHitbox with a fixed position.
type boxAt core.Vec2

func (b boxAt) Hitbox() core.Rect {
	return core.RectAround(core.Vec2(b), HitboxHalfExtent)
}

func newTestSession(t interface{ Helper() }) (*Session, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	return NewSession(DefaultSettings(), audio, nil), audio
}

func newPlayingSession(t interface{ Helper() }) (*Session, *recordingAudio) {
	t.Helper()
	s, audio := newTestSession(t)
	s.Activate(ControlPlay)
	return s, audio
}
