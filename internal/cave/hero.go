package cave

import "github.com/vovakirdan/dungeon-slimes/internal/core"

// HeroState is the movement state of the hero.
type HeroState int

const (
	HeroIdle HeroState = iota
	HeroMoving
)

// String returns the state name.
func (s HeroState) String() string {
	if s == HeroMoving {
		return "moving"
	}
	return "idle"
}

// Hero is the player-controlled character. It moves one cell at a time,
// gliding toward the target cell at a fixed speed in world units per second.
type Hero struct {
	pos    core.Vec2
	target core.Vec2
	speed  float64
	state  HeroState
	anim   Animation
}

var (
	_ Updatable = (*Hero)(nil)
	_ Drawable  = (*Hero)(nil)
	_ HasHitbox = (*Hero)(nil)
)

// NewHero places a hero at the center of the cell containing spawn.
func NewHero(spawn core.Vec2, speed, frameDuration float64) *Hero {
	start := TileCenter(CellAt(spawn))
	return &Hero{
		pos:    start,
		target: start,
		speed:  speed,
		state:  HeroIdle,
		anim:   NewAnimation(heroIdleFrames, frameDuration),
	}
}

// Update advances movement and animation by one frame.
func (h *Hero) Update(f Frame) {
	if h.state == HeroMoving {
		h.glide(f.Dt)
	} else {
		h.tryStep(f.Input, f.Grid)
	}

	if h.state == HeroMoving {
		h.anim.Use(heroWalkFrames)
	} else {
		h.anim.Use(heroIdleFrames)
	}
	h.anim.Advance(f.Dt)
}

// glide moves toward the target, snapping onto it when it is within reach.
func (h *Hero) glide(dt float64) {
	delta := h.target.Sub(h.pos)
	distance := delta.Len()
	step := h.speed * dt

	if distance <= step {
		h.pos = h.target
		h.state = HeroIdle
		return
	}
	h.pos = h.pos.Add(delta.Scale(step / distance))
}

// tryStep picks the next cell from input and starts moving if it is floor.
func (h *Hero) tryStep(in Directions, grid *GridMap) {
	dx, dy := in.Step()
	if dx == 0 && dy == 0 {
		return
	}

	next := core.V(h.pos.X+float64(dx)*TileSize, h.pos.Y+float64(dy)*TileSize)

	world := grid.WorldSize()
	next.X = core.ClampF(next.X, TileSize/2, world.X-TileSize/2)
	next.Y = core.ClampF(next.Y, TileSize/2, world.Y-TileSize/2)

	if grid.IsWalkableAt(next) {
		h.target = next
		h.state = HeroMoving
	}
}

// Draw renders the current animation frame.
func (h *Hero) Draw(c Canvas) {
	c.DrawSprite(h.anim.Frame(), h.pos)
}

// Hitbox returns a fixed square centered on the hero, independent of the sprite.
func (h *Hero) Hitbox() core.Rect {
	return core.RectAround(h.pos, HitboxHalfExtent)
}

// Position returns the hero's world position.
func (h *Hero) Position() core.Vec2 {
	return h.pos
}

// Target returns the destination of the current step. At rest it equals Position.
func (h *Hero) Target() core.Vec2 {
	return h.target
}

// State returns the movement state.
func (h *Hero) State() HeroState {
	return h.state
}

// Moving reports whether a step is in progress.
func (h *Hero) Moving() bool {
	return h.state == HeroMoving
}

// Animation returns the animation state.
func (h *Hero) Animation() Animation {
	return h.anim
}
