package cave

import "github.com/vovakirdan/dungeon-slimes/internal/core"

// Marker is a stationary objective on the map: the treasure or the exit door.
type Marker struct {
	sprite    SpriteID
	spawn     core.Vec2
	pos       core.Vec2
	collected bool
}

var (
	_ Drawable  = (*Marker)(nil)
	_ HasHitbox = (*Marker)(nil)
)

// NewMarker places a marker at spawn.
func NewMarker(sprite SpriteID, spawn core.Vec2) *Marker {
	return &Marker{sprite: sprite, spawn: spawn, pos: spawn}
}

// Reset moves the marker back to its spawn and clears the collected flag.
func (m *Marker) Reset() {
	m.pos = m.spawn
	m.collected = false
}

// Collect marks the marker as picked up. Collected markers are not drawn.
func (m *Marker) Collect() {
	m.collected = true
}

// Collected reports whether the marker has been picked up.
func (m *Marker) Collected() bool {
	return m.collected
}

// Draw renders the marker unless it has been collected.
func (m *Marker) Draw(c Canvas) {
	if m.collected {
		return
	}
	c.DrawSprite(m.sprite, m.pos)
}

// Hitbox returns the square used for pickup and exit checks.
func (m *Marker) Hitbox() core.Rect {
	return core.RectAround(m.pos, HitboxHalfExtent)
}

// Position returns the marker's world position.
func (m *Marker) Position() core.Vec2 {
	return m.pos
}
