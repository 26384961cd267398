// Package game implements the simulation core of the falling-tower
// jumping game: a deterministic fixed-timestep engine that generates an
// endless tower of platforms, advances the avatar's integer physics and
// drives the top-level state machine. It performs no I/O and draws all
// randomness from an injected PCG32 generator, so a fixed seed and
// input script replay bit-identical games.
package game

// State is the top-level game state.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
	StateHighscores
)

// String returns a human-readable name for the state.
func (st State) String() string {
	switch st {
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	case StateHighscores:
		return "Highscores"
	default:
		return "Unknown"
	}
}

// transitions is the legal state transition table. setState refuses
// anything not listed here, so conflicting host calls (say, a pause
// arriving after a game over) are ignored rather than corrupting the
// machine.
var transitions = map[State][]State{
	StateRunning:    {StatePaused, StateGameOver},
	StatePaused:     {StateRunning},
	StateGameOver:   {StateHighscores},
	StateHighscores: {StateRunning},
}

// gameOverDelayTicks is how long the game-over banner stays before the
// highscore screen takes over on its own (2 seconds at 25ms per tick).
const gameOverDelayTicks = 80

// Session owns the complete state of one game: avatar, camera, floor
// ring, joystick and RNG. It is mutated only through Tick and the
// input/lifecycle calls, never concurrently. A session keeps drawing
// from the same PRNG stream across restarts; reproducing a specific
// game therefore means replaying from session creation.
type Session struct {
	cfg    Config
	rng    *RNG
	floors *floorRing
	joy    Joystick
	hero   avatar
	scroll scrollState

	score     int64
	state     State
	ticks     uint64
	overTicks int

	// onFinalScore is invoked exactly once per game, at the transition
	// into StateGameOver, with the final score.
	onFinalScore func(int64)
}

// NewSession validates the configuration and starts a game in
// StateRunning. The finalScore callback may be nil.
func NewSession(cfg Config, rng *RNG, finalScore func(int64)) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{
		cfg:          cfg,
		rng:          rng,
		onFinalScore: finalScore,
	}
	s.initGame()
	return s, nil
}

// initGame resets everything that belongs to a single game. The RNG is
// deliberately not reseeded: the floor sequence simply continues.
func (s *Session) initGame() {
	ts := s.cfg.TileSize

	s.score = 0
	s.hero = avatar{
		x:        (s.cfg.FieldWidth/2)*ts - s.cfg.SpriteSize/2,
		y:        (s.cfg.FieldHeight-4)*ts - s.cfg.SpriteSize,
		standing: true,
	}
	s.scroll = scrollState{offset: s.cfg.FieldHeight - 4}
	s.floors = newFloorRing(s.cfg, s.rng)
	s.joy.Reset()
	s.overTicks = 0
	s.state = StateRunning
}

// Tick advances the session by one fixed simulation step. Only
// StateRunning simulates; StateGameOver merely counts down to the
// highscore screen, and the other states freeze entirely.
func (s *Session) Tick() {
	s.ticks++
	switch s.state {
	case StateRunning:
		s.tickRunning()
	case StateGameOver:
		s.tickGameOver()
	case StatePaused, StateHighscores:
		// Frozen. Wall-clock time spent here is never converted into
		// simulation ticks; that bookkeeping lives in Clock.
	}
}

func (s *Session) tickRunning() {
	s.stepPhysics()
	s.stepScroll()
	if s.hero.y+s.scroll.forced >= s.cfg.botLimit() {
		s.setState(StateGameOver)
	}
}

func (s *Session) tickGameOver() {
	s.overTicks++
	if s.overTicks >= gameOverDelayTicks {
		s.setState(StateHighscores)
	}
}

// setState applies a transition if the table allows it.
func (s *Session) setState(to State) {
	allowed := false
	for _, next := range transitions[s.state] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return
	}

	s.state = to
	if to == StateGameOver {
		s.overTicks = 0
		if s.onFinalScore != nil {
			s.onFinalScore(s.score)
		}
	}
}

// HandleKey feeds one logical key event into the joystick. Input state
// updates in every game state so that keys held across a pause are
// still accounted for when the game resumes.
func (s *Session) HandleKey(k Key, pressed bool) {
	if pressed {
		s.joy.Press(k)
	} else {
		s.joy.Release(k)
	}
}

// Pause suspends a running game.
func (s *Session) Pause() {
	if s.state == StateRunning {
		s.setState(StatePaused)
	}
}

// Resume continues a paused game.
func (s *Session) Resume() {
	if s.state == StatePaused {
		s.setState(StateRunning)
	}
}

// FocusLost is signalled by the host when the window or terminal loses
// input focus; a running game pauses so the avatar doesn't die alone.
func (s *Session) FocusLost() {
	s.Pause()
}

// Acknowledge advances the end-of-game screens: it skips the
// game-over banner, and on the highscore screen it starts a new game.
func (s *Session) Acknowledge() {
	switch s.state {
	case StateGameOver:
		s.setState(StateHighscores)
	case StateHighscores:
		s.Reset()
	}
}

// Reset starts a new game from the highscore screen. The session keeps
// its RNG stream and configuration.
func (s *Session) Reset() {
	if s.state != StateHighscores {
		return
	}
	s.initGame()
}

// State returns the current top-level state.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score: the number of 5-row flights climbed.
func (s *Session) Score() int64 {
	return s.score
}

// Ticks returns the number of Tick calls over the session's lifetime.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Config returns the session's immutable configuration.
func (s *Session) Config() Config {
	return s.cfg
}
