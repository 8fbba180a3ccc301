package cave

// CellPos addresses one map cell.
type CellPos struct {
	Col, Row int
}

// EnemySpawn is one entry of the enemy roster.
type EnemySpawn struct {
	Cell  CellPos
	Speed float64 // World units per tick
}

// Spawn points. Like CaveMap, these are part of the level and fixed.
var (
	HeroSpawn    = CellPos{Col: 1, Row: 6}
	TreasureCell = CellPos{Col: 1, Row: 1}
	ExitCell     = CellPos{Col: 10, Row: 6}

	EnemyRoster = []EnemySpawn{
		{Cell: CellPos{Col: 5, Row: 2}, Speed: 1.0},
		{Cell: CellPos{Col: 9, Row: 3}, Speed: 1.5},
		{Cell: CellPos{Col: 1, Row: 5}, Speed: 0.8},
		{Cell: CellPos{Col: 7, Row: 6}, Speed: 1.2},
	}
)

// Settings are the tunable parameters of a session.
type Settings struct {
	HeroSpeed          float64 // World units per second
	HeroFrameDuration  float64 // Seconds per animation frame
	EnemyFrameDuration float64 // Seconds per animation frame
	EnemySpeedScale    float64 // Multiplier on every roster speed
	EnemyWalkFrames    bool    // Cycle slime walk frames instead of idle frames

	MusicEnabled  bool
	MusicVolume   float64
	VictoryVolume float64
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		HeroSpeed:          200,
		HeroFrameDuration:  0.15,
		EnemyFrameDuration: 0.2,
		EnemySpeedScale:    1.0,
		EnemyWalkFrames:    false,
		MusicEnabled:       true,
		MusicVolume:        0.4,
		VictoryVolume:      0.3,
	}
}
