package cave

import "github.com/vovakirdan/dungeon-slimes/internal/core"

// SpriteID names one drawable frame. Hosts map ids to images or glyphs.
type SpriteID string

// Sprite ids used by the game.
const (
	SpriteWall     SpriteID = "wall_stone_1"
	SpriteFloor    SpriteID = "floor_stone_1"
	SpriteTreasure SpriteID = "treasure"
	SpriteExit     SpriteID = "exit"

	SpriteHeroIdle1 SpriteID = "hero_idle_1"
	SpriteHeroIdle2 SpriteID = "hero_idle_2"
	SpriteHeroWalk1 SpriteID = "hero_walk_1"
	SpriteHeroWalk2 SpriteID = "hero_walk_2"
	SpriteHeroWalk3 SpriteID = "hero_walk_3"

	SpriteSlimeIdle1 SpriteID = "slime_idle_1"
	SpriteSlimeIdle2 SpriteID = "slime_idle_2"
	SpriteSlimeWalk1 SpriteID = "slime_walk_1"
	SpriteSlimeWalk2 SpriteID = "slime_walk_2"
)

// Frame sets.
var (
	heroIdleFrames  = []SpriteID{SpriteHeroIdle1, SpriteHeroIdle2}
	heroWalkFrames  = []SpriteID{SpriteHeroWalk1, SpriteHeroWalk2, SpriteHeroWalk3}
	slimeIdleFrames = []SpriteID{SpriteSlimeIdle1, SpriteSlimeIdle2}
	slimeWalkFrames = []SpriteID{SpriteSlimeWalk1, SpriteSlimeWalk2}
)

// HitboxHalfExtent is half the edge of every square hitbox.
const HitboxHalfExtent = 16.0

// Frame is the per-tick context handed to every Updatable.
type Frame struct {
	Dt    float64    // Seconds since the previous frame
	Input Directions // Continuous directional input sampled this frame
	Grid  *GridMap
}

// Updatable is advanced once per frame while the session is playing.
type Updatable interface {
	Update(f Frame)
}

// Drawable draws itself onto a Canvas.
type Drawable interface {
	Draw(c Canvas)
}

// HasHitbox exposes the box used for overlap tests.
type HasHitbox interface {
	Hitbox() core.Rect
}

// Animation cycles through a frame set on a fixed per-frame duration.
//
// When the timer reaches the duration it is reset to zero; leftover time
// is discarded. The visible frame only changes on such an advance, so
// switching frame sets takes effect at the next advance.
type Animation struct {
	frames   []SpriteID
	index    int
	timer    float64
	duration float64
	image    SpriteID
}

// NewAnimation starts on the first frame of frames.
func NewAnimation(frames []SpriteID, duration float64) Animation {
	return Animation{
		frames:   frames,
		duration: duration,
		image:    frames[0],
	}
}

// Use selects the frame set to cycle through. Index and timer carry over.
func (a *Animation) Use(frames []SpriteID) {
	a.frames = frames
}

// Advance accumulates dt and steps to the next frame once the duration is reached.
func (a *Animation) Advance(dt float64) {
	a.timer += dt
	if a.timer >= a.duration {
		a.timer = 0
		a.index = (a.index + 1) % len(a.frames)
		a.image = a.frames[a.index]
	}
}

// Frame returns the sprite currently shown.
func (a Animation) Frame() SpriteID {
	return a.image
}

// Index returns the position inside the frame set.
func (a Animation) Index() int {
	return a.index
}

// Timer returns the time accumulated toward the next advance.
func (a Animation) Timer() float64 {
	return a.timer
}

// Frames returns the active frame set.
func (a Animation) Frames() []SpriteID {
	return a.frames
}

// Directions is the continuous directional input of one frame.
type Directions struct {
	Left, Right, Up, Down bool
}

// Step resolves the pressed keys into a cell offset. Left wins over right
// and up wins over down; horizontal and vertical combine into a diagonal.
func (d Directions) Step() (dx, dy int) {
	if d.Left {
		dx = -1
	} else if d.Right {
		dx = 1
	}
	if d.Up {
		dy = -1
	} else if d.Down {
		dy = 1
	}
	return dx, dy
}

// Any reports whether any direction is pressed.
func (d Directions) Any() bool {
	return d.Left || d.Right || d.Up || d.Down
}

// DirectionsFrom extracts the directional actions of an input frame.
func DirectionsFrom(in core.InputFrame) Directions {
	return Directions{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Up:    in.Has(core.ActionUp),
		Down:  in.Has(core.ActionDown),
	}
}
