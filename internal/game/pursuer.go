package game

import "math/rand"

// PursuerCount is fixed: four pursuers per session.
const PursuerCount = 4

// Mode is a pursuer's behaviour state.
type Mode int

const (
	// ModeScatter heads for the pursuer's fixed corner, ignoring the player.
	ModeScatter Mode = iota
	// ModeChase targets the player's current tile, re-read every tick.
	ModeChase
	// ModeFrightened wanders toward random open tiles at reduced speed.
	ModeFrightened
	// ModeEaten returns home, non-threatening, then reverts to scatter.
	ModeEaten
)

func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	case ModeFrightened:
		return "frightened"
	case ModeEaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Hostile reports whether contact with the player in this mode costs a life.
func (m Mode) Hostile() bool {
	return m == ModeScatter || m == ModeChase
}

// Pursuer is one of the four chasing agents. The pursuers share all
// behaviour logic; a pursuer's identity is only its index, start tile, and
// scatter corner.
type Pursuer struct {
	agent
	id            int
	mode          Mode
	scatterTarget Tile
	homeTile      Tile
	startTile     Tile

	target    Tile
	path      []Tile
	pathIndex int
}

// NewPursuer creates pursuer id at start, scattering toward scatter and
// returning to home when eaten.
func NewPursuer(id int, start, scatter, home Tile) *Pursuer {
	p := &Pursuer{
		id:            id,
		mode:          ModeScatter,
		scatterTarget: scatter,
		homeTile:      home,
		startTile:     start,
		target:        scatter,
	}
	p.placeAt(start)
	return p
}

// Frighten switches the pursuer into frightened mode. Eaten pursuers are
// already neutralized and keep heading home. Clearing the path forces a
// fresh wander target on the next tick.
func (p *Pursuer) Frighten() {
	if p.mode == ModeEaten {
		return
	}
	p.mode = ModeFrightened
	p.path = nil
	p.pathIndex = 0
}

// Capture marks the pursuer eaten. The cleared path forces an immediate
// retarget toward home.
func (p *Pursuer) Capture() {
	p.mode = ModeEaten
	p.path = nil
	p.pathIndex = 0
}

// resetToStart returns the pursuer to its round-start tile in scatter mode.
func (p *Pursuer) resetToStart() {
	p.placeAt(p.startTile)
	p.mode = ModeScatter
	p.path = nil
	p.pathIndex = 0
}

func (p *Pursuer) pathDone() bool {
	return len(p.path) == 0 || p.pathIndex >= len(p.path)
}

// Update advances the pursuer by one tick of dt seconds: pick the target for
// the current mode, refresh the path when it is empty, exhausted, or stale,
// then advance along it. An unreachable target is not an error; the pursuer
// holds position for the tick and retries on the next one.
func (p *Pursuer) Update(dt float64, m *Maze, playerTile Tile, rng *rand.Rand) {
	switch p.mode {
	case ModeScatter:
		p.target = p.scatterTarget
	case ModeChase:
		p.target = playerTile
	case ModeFrightened:
		// Re-roll only when the previous wander completed, sampling the
		// open-tile set so the search cannot land on a wall.
		if p.pathDone() {
			open := m.OpenTiles()
			p.target = open[rng.Intn(len(open))]
		}
	case ModeEaten:
		p.target = p.homeTile
	}

	if p.pathDone() || p.path[len(p.path)-1] != p.target {
		path := ShortestPath(m, TileAt(p.pos), p.target)
		if path == nil {
			return
		}
		p.path = path
		p.pathIndex = 0
		if len(path) > 1 {
			// path[0] is the start tile; step toward the next one.
			p.pathIndex = 1
		}
	}

	speed := pursuerSpeed
	if p.mode == ModeFrightened {
		speed = frightenedSpeed
	}
	if p.pathIndex < len(p.path) {
		next := p.path[p.pathIndex]
		var arrived bool
		p.pos, arrived = StepToward(p.pos, next, speed*TileSize*dt)
		if arrived {
			p.tile = next
			p.pathIndex++
		}
	}

	if p.mode == ModeEaten && p.tile == p.homeTile && p.aligned() {
		p.mode = ModeScatter
	}
}
