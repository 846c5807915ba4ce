package game

const (
	playerSpeed     = 5.0 // tiles per second
	pursuerSpeed    = 4.0 // tiles per second, scatter/chase/eaten
	frightenedSpeed = 2.5 // tiles per second while frightened

	agentRadius = TileSize/2 - 1

	startingLives = 3
)

// agent is the kinematic state shared by the player and the pursuers: the
// logical tile (grid truth), the continuous position, and the facing.
type agent struct {
	tile Tile
	pos  Vec2
	dir  Direction
}

func (a *agent) placeAt(t Tile) {
	a.tile = t
	a.pos = TileCenter(t)
	a.dir = DirNone
}

// aligned reports whether the agent sits exactly on its tile center.
func (a *agent) aligned() bool {
	return a.pos == TileCenter(a.tile)
}

// Player is the evading agent: lives, score, and the buffered turn request.
type Player struct {
	agent
	pendingDir Direction
	lives      int
	score      int
	startTile  Tile
}

// NewPlayer creates a player at its round-start tile with full lives.
func NewPlayer(start Tile) *Player {
	p := &Player{lives: startingLives, startTile: start}
	p.placeAt(start)
	return p
}

// RequestTurn buffers a turn request. It is applied the next time the player
// is tile-aligned and the tile in that direction is open; until then the
// player keeps its current direction. An illegal request is not an error,
// it simply stays buffered.
func (p *Player) RequestTurn(d Direction) {
	if d != DirNone {
		p.pendingDir = d
	}
}

// Update advances the player by one tick of dt seconds.
func (p *Player) Update(dt float64, m *Maze) {
	if p.aligned() && p.pendingDir != DirNone && m.IsOpen(p.tile.Step(p.pendingDir)) {
		p.dir = p.pendingDir
	}
	if p.dir == DirNone {
		return
	}
	target := p.tile.Step(p.dir)
	if !m.IsOpen(target) {
		// Blocked. Direction only changes while aligned, so a closed target
		// means the player is stopped at a tile center, not mid-transit.
		return
	}
	var arrived bool
	p.pos, arrived = StepToward(p.pos, target, playerSpeed*TileSize*dt)
	if arrived {
		p.tile = target
	}
}

// resetToStart returns the player to its round-start tile, standing still.
// Lives, score, and the pending turn buffer are untouched.
func (p *Player) resetToStart() {
	p.placeAt(p.startTile)
}
