package cave

import "github.com/vovakirdan/dungeon-slimes/internal/core"

// State is the game-flow state of a session.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateVictory
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Key is a discrete key-down event relevant to the game flow.
type Key int

const (
	KeyOther Key = iota
	KeyConfirm
)

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventHit EventKind = iota
	EventPickup
	EventVictory
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventPickup:
		return "pickup"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Event is reported by Update so hosts can log or react to it.
type Event struct {
	Kind  EventKind
	Enemy int // Enemy index for EventHit
}

// StepResult is returned by Update after each tick.
type StepResult struct {
	State  State
	Events []Event
}

// Session owns the whole game: flow state, music flag, map and entities.
// It has a single writer; hosts call Update, Draw and the input handlers
// from one goroutine.
type Session struct {
	settings Settings
	audio    Audio
	tr       Translator

	state        State
	musicEnabled bool
	quit         bool
	tick         uint64

	grid     *GridMap
	hero     *Hero
	enemies  []*Enemy
	treasure *Marker
	exit     *Marker
}

// NewSession builds a session in the Menu state and starts the background
// music if it is enabled. A nil audio or translator is replaced by a no-op.
func NewSession(settings Settings, audio Audio, tr Translator) *Session {
	if audio == nil {
		audio = NopAudio{}
	}
	if tr == nil {
		tr = identity
	}

	s := &Session{
		settings:     settings,
		audio:        audio,
		tr:           tr,
		musicEnabled: settings.MusicEnabled,
		treasure:     NewMarker(SpriteTreasure, TileCenter(TreasureCell.Col, TreasureCell.Row)),
		exit:         NewMarker(SpriteExit, TileCenter(ExitCell.Col, ExitCell.Row)),
	}
	s.Reset()
	s.playMusic()
	return s
}

// Reset rebuilds the map, hero, enemy roster and markers and returns to the menu.
func (s *Session) Reset() {
	s.grid = NewGridMap(CaveMap)
	s.hero = NewHero(TileCenter(HeroSpawn.Col, HeroSpawn.Row), s.settings.HeroSpeed, s.settings.HeroFrameDuration)

	s.enemies = make([]*Enemy, 0, len(EnemyRoster))
	for _, sp := range EnemyRoster {
		s.enemies = append(s.enemies, NewEnemy(
			TileCenter(sp.Cell.Col, sp.Cell.Row),
			sp.Speed*s.settings.EnemySpeedScale,
			s.settings.EnemyFrameDuration,
			s.settings.EnemyWalkFrames,
		))
	}

	s.treasure.Reset()
	s.exit.Reset()
	s.tick = 0
	s.state = StateMenu
}

// Update advances the simulation by one frame. Outside Playing it does nothing.
func (s *Session) Update(dt float64, in Directions) StepResult {
	if s.state != StatePlaying {
		return StepResult{State: s.state}
	}
	s.tick++

	f := Frame{Dt: dt, Input: in, Grid: s.grid}
	s.hero.Update(f)
	for _, e := range s.enemies {
		e.Update(f)
	}

	out := Evaluate(s.hero, s.enemies, s.treasure, s.exit)
	return StepResult{State: s.state, Events: s.apply(out)}
}

// apply turns an outcome into state changes and sound cues.
func (s *Session) apply(out Outcome) []Event {
	var events []Event

	if out.Hit {
		s.playSound(CueSlimeHit, 1.0)
		s.state = StateGameOver
		return append(events, Event{Kind: EventHit, Enemy: out.Enemy})
	}

	if out.Pickup {
		s.playSound(CueTreasurePickup, 1.0)
		s.treasure.Collect()
		events = append(events, Event{Kind: EventPickup})
	}

	if out.Victory {
		s.playSound(CueVictory, s.settings.VictoryVolume)
		s.state = StateVictory
		events = append(events, Event{Kind: EventVictory})
	}
	return events
}

// OnPointerDown handles a click at a world position. Only the menu reacts.
func (s *Session) OnPointerDown(p core.Vec2) {
	if s.state != StateMenu {
		return
	}
	if c, ok := ButtonAt(p); ok {
		s.Activate(c)
	}
}

// OnKeyDown handles a discrete key press. Confirm on the game-over or
// victory screen resets the session back to the menu.
func (s *Session) OnKeyDown(k Key) {
	if k != KeyConfirm {
		return
	}
	if s.state == StateGameOver || s.state == StateVictory {
		s.Reset()
	}
}

// Activate triggers a menu control. It is ignored outside the menu.
func (s *Session) Activate(c Control) {
	if s.state != StateMenu {
		return
	}

	switch c {
	case ControlPlay:
		s.Reset()
		s.state = StatePlaying
	case ControlMusic:
		s.musicEnabled = !s.musicEnabled
		if s.musicEnabled {
			s.playMusic()
		} else {
			s.audio.StopMusic()
		}
	case ControlExit:
		s.quit = true
	}
}

func (s *Session) playMusic() {
	if !s.musicEnabled {
		return
	}
	s.audio.PlayMusic(TrackBackground)
	s.audio.SetMusicVolume(s.settings.MusicVolume)
}

func (s *Session) playSound(cue Cue, volume float64) {
	if s.musicEnabled {
		s.audio.PlaySound(cue, volume)
	}
}

// State returns the current game-flow state.
func (s *Session) State() State {
	return s.state
}

// MusicEnabled reports whether music and sound cues are on.
func (s *Session) MusicEnabled() bool {
	return s.musicEnabled
}

// QuitRequested reports whether the Exit control was activated.
// The host should terminate with exit code 0.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// Hero returns the hero.
func (s *Session) Hero() *Hero {
	return s.hero
}

// Enemies returns the enemy roster.
func (s *Session) Enemies() []*Enemy {
	return s.enemies
}

// Treasure returns the treasure marker.
func (s *Session) Treasure() *Marker {
	return s.treasure
}

// Exit returns the exit door marker.
func (s *Session) Exit() *Marker {
	return s.exit
}

// Grid returns the map.
func (s *Session) Grid() *GridMap {
	return s.grid
}
