package game

// PlayerView is the read-only player state a renderer needs.
type PlayerView struct {
	Pos   Vec2
	Dir   Direction
	Alive bool
}

// PursuerView is the read-only pursuer state a renderer needs.
type PursuerView struct {
	Pos  Vec2
	Mode Mode
}

// Snapshot is the per-tick read-only view of the session, sufficient to
// draw a frame. The core never draws; the boundary never writes back.
type Snapshot struct {
	Phase    Phase
	Score    int
	Lives    int
	Player   PlayerView
	Pursuers [PursuerCount]PursuerView
	Pellets  []Tile
	Powers   []Tile
}

// Snapshot captures the current frame state. Item slices are fresh copies;
// the maze itself is immutable and read directly via Maze().
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase: s.phase,
		Score: s.player.score,
		Lives: s.player.lives,
		Player: PlayerView{
			Pos:   s.player.pos,
			Dir:   s.player.dir,
			Alive: s.phase != PhaseTerminal,
		},
		Pellets: s.field.PelletTiles(),
		Powers:  s.field.PowerTiles(),
	}
	for i, p := range s.pursuers {
		snap.Pursuers[i] = PursuerView{Pos: p.pos, Mode: p.mode}
	}
	return snap
}
