package cave

// EnemySnapshot captures one enemy.
type EnemySnapshot struct {
	X, Y      float64
	Direction int
	Frame     SpriteID
}

// Snapshot captures the complete game state for determinism testing and debugging.
type Snapshot struct {
	Tick              uint64
	State             State
	MusicEnabled      bool
	HeroX             float64
	HeroY             float64
	HeroState         HeroState
	HeroFrame         SpriteID
	TreasureCollected bool
	Enemies           []EnemySnapshot
}

// KeyVals returns the run-level fields as alternating keys and values,
// ready to pass to a structured logger.
func (s Snapshot) KeyVals() []any {
	return []any{
		"tick", s.Tick,
		"hero_x", s.HeroX,
		"hero_y", s.HeroY,
		"treasure", s.TreasureCollected,
		"music", s.MusicEnabled,
	}
}

// Snapshot returns the current game snapshot.
func (s *Session) Snapshot() Snapshot {
	enemies := make([]EnemySnapshot, len(s.enemies))
	for i, e := range s.enemies {
		enemies[i] = EnemySnapshot{
			X:         e.pos.X,
			Y:         e.pos.Y,
			Direction: e.direction,
			Frame:     e.anim.Frame(),
		}
	}

	return Snapshot{
		Tick:              s.tick,
		State:             s.state,
		MusicEnabled:      s.musicEnabled,
		HeroX:             s.hero.pos.X,
		HeroY:             s.hero.pos.Y,
		HeroState:         s.hero.state,
		HeroFrame:         s.hero.anim.Frame(),
		TreasureCollected: s.treasure.Collected(),
		Enemies:           enemies,
	}
}
