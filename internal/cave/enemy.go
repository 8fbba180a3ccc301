package cave

import "github.com/vovakirdan/dungeon-slimes/internal/core"

// Enemy is a slime that patrols horizontally, bouncing off walls.
//
// Speed is a fixed distance per tick and is not scaled by dt, so patrol
// pace follows the frame rate.
type Enemy struct {
	pos       core.Vec2
	speed     float64
	direction int
	anim      Animation
}

var (
	_ Updatable = (*Enemy)(nil)
	_ Drawable  = (*Enemy)(nil)
	_ HasHitbox = (*Enemy)(nil)
)

// NewEnemy creates a slime heading east. With walkFrames set it cycles the
// walk frames instead of the idle ones.
func NewEnemy(spawn core.Vec2, speed, frameDuration float64, walkFrames bool) *Enemy {
	e := &Enemy{
		pos:       spawn,
		speed:     speed,
		direction: 1,
		anim:      NewAnimation(slimeIdleFrames, frameDuration),
	}
	if walkFrames {
		e.anim.Use(slimeWalkFrames)
	}
	return e
}

// Update moves one increment along the patrol, or turns around without
// moving when the next position would be inside a wall.
func (e *Enemy) Update(f Frame) {
	nextX := e.pos.X + e.speed*float64(e.direction)

	if !f.Grid.IsWalkableAt(core.V(nextX, e.pos.Y)) {
		e.direction = -e.direction
	} else {
		e.pos.X = nextX
	}

	e.anim.Advance(f.Dt)
}

func (e *Enemy) Draw(c Canvas) {
	c.DrawSprite(e.anim.Frame(), e.pos)
}

func (e *Enemy) Hitbox() core.Rect {
	return core.RectAround(e.pos, HitboxHalfExtent)
}

func (e *Enemy) Position() core.Vec2 {
	return e.pos
}

// Direction returns +1 when heading east and -1 when heading west.
func (e *Enemy) Direction() int {
	return e.direction
}

func (e *Enemy) Speed() float64 {
	return e.speed
}

func (e *Enemy) Animation() Animation {
	return e.anim
}
