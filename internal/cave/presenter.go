package cave

import "github.com/vovakirdan/dungeon-slimes/internal/core"

// Backdrop is the background fill of a screen.
type Backdrop int

const (
	BackdropMenu Backdrop = iota
	BackdropPlaying
	BackdropGameOver
	BackdropVictory
)

// Tone is a semantic text or border color.
type Tone int

const (
	ToneWhite Tone = iota
	ToneRed
	ToneYellow
)

// TextSize is a semantic font size. The value is the nominal size in world units.
type TextSize int

const (
	TextHint    TextSize = 26
	TextBody    TextSize = 32
	TextHeading TextSize = 60
	TextTitle   TextSize = 64
)

// Canvas is the drawing surface a host provides. Positions are in world units.
type Canvas interface {
	Fill(b Backdrop)
	DrawSprite(id SpriteID, pos core.Vec2)
	DrawText(text string, center core.Vec2, size TextSize, tone Tone)
	DrawPanel(r core.Rect, border Tone)
	DrawButton(r core.Rect, label string)
}

// Track names a background music track.
type Track string

// Cue names a one-shot sound effect.
type Cue string

const (
	TrackBackground Track = "background_music"

	CueSlimeHit       Cue = "slime_hit"
	CueTreasurePickup Cue = "treasure_pickup"
	CueVictory        Cue = "victory"
)

// Audio is the sound output a host provides.
type Audio interface {
	PlayMusic(track Track)
	SetMusicVolume(level float64)
	StopMusic()
	PlaySound(cue Cue, volume float64)
}

// NopAudio discards all audio calls.
type NopAudio struct{}

func (NopAudio) PlayMusic(Track)        {}
func (NopAudio) SetMusicVolume(float64) {}
func (NopAudio) StopMusic()             {}
func (NopAudio) PlaySound(Cue, float64) {}

// Translator resolves a message key to display text.
type Translator func(key string) string

// identity is used when no catalog is supplied.
func identity(key string) string { return key }
