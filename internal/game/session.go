package game

import (
	"fmt"
	"math/rand"
)

const (
	pelletScore  = 10
	powerScore   = 50
	captureScore = 200

	frightDuration   = 8.0 // seconds pursuers stay frightened
	modeCyclePeriod  = 7.0 // seconds between scatter/chase flips
	startCountdown   = 2.0 // seconds of READY! at round start
	respawnCountdown = 1.5 // seconds of READY! after a life loss
)

// Phase is the session's top-level state.
type Phase int

const (
	// PhaseCountdown freezes the simulation while the ready timer runs.
	PhaseCountdown Phase = iota
	// PhaseActive runs the full per-tick update.
	PhaseActive
	// PhaseTerminal freezes everything until a restart request.
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseActive:
		return "active"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Event is a session occurrence the presentation layer may react to
// (sound, effects). Drained once per tick by the boundary.
type Event int

const (
	EventPellet Event = iota
	EventPower
	EventCapture
	EventLifeLost
	EventGameOver
)

// Session owns the whole simulation: maze, item field, player, pursuers,
// phase machine, and the shared timers. All state is mutated only inside
// Tick and the request methods; there is exactly one writer per tick.
type Session struct {
	maze     *Maze
	field    *ItemField
	player   *Player
	pursuers [PursuerCount]*Pursuer

	phase      Phase
	phaseTimer float64 // seconds left in the current countdown
	elapsed    float64 // accumulated active-phase seconds, drives the timers
	frightEnd  float64 // elapsed value at which frightened mode expires

	rng    *rand.Rand
	log    *SimLog
	tick   int
	events []Event
}

// NewSession builds a session over m with a seeded RNG (frightened wander
// targets are its only consumer). simLog may be nil.
func NewSession(m *Maze, seed int64, simLog *SimLog) *Session {
	s := &Session{
		maze:  m,
		field: NewItemField(m.Pellets(), m.Powers()),
		rng:   rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay only
		log:   simLog,
	}
	s.initAgents()
	s.phase = PhaseCountdown
	s.phaseTimer = startCountdown
	return s
}

func (s *Session) initAgents() {
	s.player = NewPlayer(s.maze.PlayerStart())
	for i := 0; i < PursuerCount; i++ {
		s.pursuers[i] = NewPursuer(i, s.maze.PursuerStart(i), s.maze.ScatterTile(i), s.maze.Home())
	}
}

// RequestTurn buffers a player turn request. Ignored outside the active and
// countdown phases.
func (s *Session) RequestTurn(d Direction) {
	if s.phase == PhaseTerminal {
		return
	}
	s.player.RequestTurn(d)
}

// RequestRestart handles the restart key: in the terminal phase it
// reinitializes the whole session; during the countdown it skips the
// remaining wait. Meaningless while active.
func (s *Session) RequestRestart() {
	switch s.phase {
	case PhaseTerminal:
		s.restart()
	case PhaseCountdown:
		s.phase = PhaseActive
		s.phaseTimer = 0
	}
}

// restart reinitializes player, item field, and pursuers to round-start
// state and re-enters the countdown.
func (s *Session) restart() {
	s.initAgents()
	s.field.Refill()
	s.elapsed = 0
	s.frightEnd = 0
	s.phase = PhaseCountdown
	s.phaseTimer = startCountdown
	s.log.Add(s.tick, "--", "session", "restart", "", 0)
}

// Tick advances the simulation by dt seconds. One call per frame; the
// caller owns the clock.
func (s *Session) Tick(dt float64) {
	s.tick++
	switch s.phase {
	case PhaseCountdown:
		s.phaseTimer -= dt
		if s.phaseTimer <= 0 {
			s.phase = PhaseActive
		}
	case PhaseActive:
		s.activeTick(dt)
	case PhaseTerminal:
		// Frozen until a restart request.
	}
}

// activeTick runs one full simulation pass.
func (s *Session) activeTick(dt float64) {
	s.elapsed += dt

	// 1. PLAYER: apply buffered turn, advance.
	s.player.Update(dt, s.maze)

	// 2. PICKUPS: items on the player's tile, refill on exhaustion.
	s.handlePickups()

	// 3. MODES: frightened expiry, then the scatter/chase cycle.
	s.updateModes()

	// 4. PURSUERS: retarget, repath, advance.
	for _, p := range s.pursuers {
		s.trackMode(p, func() {
			p.Update(dt, s.maze, s.player.tile, s.rng)
		})
	}

	// 5. COLLISIONS: captures first-class, first hit ends the pass.
	for _, ev := range ResolveCollisions(s.player, s.pursuers[:]) {
		switch ev.Kind {
		case CollisionCapture:
			s.applyCapture(ev.Pursuer)
		case CollisionHit:
			s.applyHit(ev.Pursuer)
		}
	}
}

func (s *Session) handlePickups() {
	t := s.player.tile
	if s.field.TakePellet(t) {
		s.player.score += pelletScore
		s.events = append(s.events, EventPellet)
		s.log.AddVerbose(s.tick, "P", "pickup", "pellet", fmt.Sprintf("(%d,%d)", t.Row, t.Col), float64(s.player.score))
	}
	if s.field.TakePower(t) {
		s.player.score += powerScore
		s.events = append(s.events, EventPower)
		s.log.Add(s.tick, "P", "pickup", "power", fmt.Sprintf("(%d,%d)", t.Row, t.Col), float64(s.player.score))
		for _, p := range s.pursuers {
			s.trackMode(p, p.Frighten)
		}
		// A second power pellet while already frightened refreshes the
		// shared window; it never stacks.
		s.frightEnd = s.elapsed + frightDuration
	}
	if s.field.Empty() {
		s.field.Refill()
		s.log.Add(s.tick, "--", "session", "refill", "", 0)
	}
}

// updateModes applies the shared timers: the frightened window expires every
// pursuer in lockstep, then the 7-second scatter/chase alternation governs
// whichever pursuers are neither frightened nor eaten.
func (s *Session) updateModes() {
	if s.elapsed >= s.frightEnd {
		for _, p := range s.pursuers {
			if p.mode == ModeFrightened {
				s.trackMode(p, func() { p.mode = ModeChase })
			}
		}
	}
	cycle := ModeScatter
	if int(s.elapsed/modeCyclePeriod)%2 == 1 {
		cycle = ModeChase
	}
	for _, p := range s.pursuers {
		if p.mode == ModeFrightened || p.mode == ModeEaten {
			continue
		}
		if p.mode != cycle {
			s.trackMode(p, func() { p.mode = cycle })
		}
	}
}

// trackMode runs fn and logs a mode-change entry if the pursuer's mode
// differs afterward.
func (s *Session) trackMode(p *Pursuer, fn func()) {
	before := p.mode
	fn()
	if p.mode != before {
		s.log.Add(s.tick, fmt.Sprintf("G%d", p.id), "mode", "change",
			fmt.Sprintf("%s -> %s", before, p.mode), 0)
	}
}

func (s *Session) applyCapture(i int) {
	p := s.pursuers[i]
	s.trackMode(p, p.Capture)
	s.player.score += captureScore
	s.events = append(s.events, EventCapture)
	s.log.Add(s.tick, fmt.Sprintf("G%d", i), "collision", "captured", "", float64(s.player.score))
}

func (s *Session) applyHit(i int) {
	s.player.lives--
	s.events = append(s.events, EventLifeLost)
	s.log.Add(s.tick, fmt.Sprintf("G%d", i), "collision", "player_hit", "", float64(s.player.lives))
	if s.player.lives <= 0 {
		s.phase = PhaseTerminal
		s.events = append(s.events, EventGameOver)
		s.log.Add(s.tick, "--", "session", "game_over", "", float64(s.player.score))
		return
	}
	// Round-start reset: score and item field survive; eaten pursuers keep
	// progressing home.
	s.player.resetToStart()
	for _, p := range s.pursuers {
		if p.mode == ModeEaten {
			continue
		}
		s.trackMode(p, p.resetToStart)
	}
	s.frightEnd = 0
	s.phase = PhaseCountdown
	s.phaseTimer = respawnCountdown
}

// DrainEvents returns the events raised since the last drain and clears the
// queue. Called once per frame by the presentation boundary.
func (s *Session) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// Phase, Score, Lives, CountdownLeft expose session state for the boundary.
func (s *Session) Phase() Phase           { return s.phase }
func (s *Session) Score() int             { return s.player.score }
func (s *Session) Lives() int             { return s.player.lives }
func (s *Session) CountdownLeft() float64 { return s.phaseTimer }

// Maze exposes the immutable grid for the render boundary.
func (s *Session) Maze() *Maze { return s.maze }
