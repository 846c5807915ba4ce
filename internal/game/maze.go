package game

import (
	log "github.com/sirupsen/logrus"
)

const (
	// TileSize is the pixel width/height of one maze tile.
	TileSize = 16
	// Cols and Rows fix the maze dimensions; every layout is normalized to them.
	Cols = 28
	Rows = 31
)

// Tile addresses one cell of the maze grid.
type Tile struct {
	Row int
	Col int
}

// Direction is one of the four cardinal moves, or none.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the row/col offset of one step in d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// Step returns the tile one step from t in direction d.
func (t Tile) Step(d Direction) Tile {
	dr, dc := d.Delta()
	return Tile{Row: t.Row + dr, Col: t.Col + dc}
}

// Maze is the static walkability grid plus the placements read from the
// layout text. Built once at startup, never mutated.
type Maze struct {
	open []bool // row-major, true = traversable

	pellets       []Tile
	powers        []Tile
	playerStart   Tile
	pursuerStarts [PursuerCount]Tile
	scatterTiles  [PursuerCount]Tile
	homeTile      Tile
}

// Layout legend:
//
//	'#'      wall
//	'.'      pellet
//	'o'      power pellet
//	' '      open corridor
//	'P'      player start
//	'1'-'4'  pursuer starts
//	'B','-'  ghost box / door, walkable, rendering only
//
// DefaultLayout is the classic 28x31 maze.
var DefaultLayout = []string{
	"############ ###############",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#o####.#####.##.#####.####o#",
	"#.####.#####.##.#####.####.#",
	"#..........................#",
	"#.####.##.########.##.####.#",
	"#.####.##.########.##.####.#",
	"#......##....##....##......#",
	"######.##### ## #####.######",
	"     #.##### ## #####.#     ",
	"     #.##          ##.#     ",
	"     #.## ###--### ##.#     ",
	"######.## #      # ##.######",
	"      .   # B  B #   .      ",
	"######.## #      # ##.######",
	"     #.## ######## ##.#     ",
	"     #.##          ##.#     ",
	"     #.## ######## ##.#     ",
	"######.## #......# ##.######",
	"#............##............#",
	"#.####.#####.##.#####.####.#",
	"#.####.#####.##.#####.####.#",
	"#o..##................##..o#",
	"###.##.##.########.##.##.###",
	"###.##.##.########.##.##.###",
	"#......##....##....##......#",
	"#.##########.##.##########.#",
	"#.#####   ##.##.##   #####.#",
	"#..........................#",
	"############ ###############",
}

// defaultPursuerStarts places the pursuers inside the ghost box when the
// layout carries no '1'-'4' markers.
var defaultPursuerStarts = [PursuerCount]Tile{
	{Row: 13, Col: 13},
	{Row: 13, Col: 14},
	{Row: 13, Col: 12},
	{Row: 13, Col: 15},
}

// ParseMaze builds a Maze from a text layout. Rows of the wrong length are
// padded with open space or truncated to Cols rather than rejected, and a
// short layout is padded with open rows. Missing player/pursuer starts fall
// back to deterministic defaults and log a configuration warning.
func ParseMaze(layout []string) *Maze {
	m := &Maze{open: make([]bool, Rows*Cols)}

	norm := make([]string, Rows)
	for r := 0; r < Rows; r++ {
		row := ""
		if r < len(layout) {
			row = layout[r]
		}
		if len(row) < Cols {
			row = row + spaces(Cols-len(row))
		} else if len(row) > Cols {
			row = row[:Cols]
		}
		norm[r] = row
	}

	havePlayer := false
	var havePursuer [PursuerCount]bool
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			t := Tile{Row: r, Col: c}
			ch := norm[r][c]
			m.open[r*Cols+c] = ch != '#'
			switch ch {
			case '.':
				m.pellets = append(m.pellets, t)
			case 'o':
				m.powers = append(m.powers, t)
			case 'P':
				m.playerStart = t
				havePlayer = true
			case '1', '2', '3', '4':
				i := int(ch - '1')
				m.pursuerStarts[i] = t
				havePursuer[i] = true
			}
		}
	}

	if !havePlayer {
		m.playerStart = m.fallbackPlayerStart()
		log.WithField("tile", m.playerStart).Warn("layout has no player start marker, using fallback")
	}
	for i := 0; i < PursuerCount; i++ {
		if !havePursuer[i] {
			m.pursuerStarts[i] = defaultPursuerStarts[i]
			log.WithFields(log.Fields{"pursuer": i, "tile": m.pursuerStarts[i]}).
				Warn("layout has no start marker for pursuer, using fallback")
		}
	}
	m.homeTile = defaultPursuerStarts[0]

	// One distinct scatter corner per pursuer, clamped to the nearest open
	// tile so the corner is actually reachable.
	corners := [PursuerCount]Tile{
		{Row: 0, Col: Cols - 2},
		{Row: 0, Col: 1},
		{Row: Rows - 1, Col: Cols - 2},
		{Row: Rows - 1, Col: 1},
	}
	for i, corner := range corners {
		m.scatterTiles[i] = m.nearestOpen(corner)
	}
	return m
}

// fallbackPlayerStart scans upward from the bottom, near the center columns,
// for the first open tile.
func (m *Maze) fallbackPlayerStart() Tile {
	for r := Rows - 1; r >= 0; r-- {
		for c := Cols/2 - 3; c < Cols/2+3; c++ {
			if m.IsOpen(Tile{Row: r, Col: c}) {
				return Tile{Row: r, Col: c}
			}
		}
	}
	return Tile{Row: Rows - 2, Col: 1}
}

// nearestOpen returns the open tile closest to t by Manhattan distance,
// scanning rings outward. Row-then-col scan order keeps it deterministic.
func (m *Maze) nearestOpen(t Tile) Tile {
	if m.IsOpen(t) {
		return t
	}
	for radius := 1; radius < Rows+Cols; radius++ {
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				if abs(dr)+abs(dc) != radius {
					continue
				}
				n := Tile{Row: t.Row + dr, Col: t.Col + dc}
				if m.IsOpen(n) {
					return n
				}
			}
		}
	}
	return t
}

// IsOpen reports whether t is a traversable tile. Out-of-bounds tiles are
// closed, never an error.
func (m *Maze) IsOpen(t Tile) bool {
	if t.Row < 0 || t.Col < 0 || t.Row >= Rows || t.Col >= Cols {
		return false
	}
	return m.open[t.Row*Cols+t.Col]
}

// Neighbors returns the orthogonally adjacent open tiles of t in up, down,
// left, right order. The order is load-bearing: it fixes the tie-break of
// every shortest-path search, and with it pursuer determinism.
func (m *Maze) Neighbors(t Tile) []Tile {
	out := make([]Tile, 0, 4)
	for _, d := range [4]Direction{DirUp, DirDown, DirLeft, DirRight} {
		n := t.Step(d)
		if m.IsOpen(n) {
			out = append(out, n)
		}
	}
	return out
}

// OpenTiles returns every traversable tile in row-major order.
func (m *Maze) OpenTiles() []Tile {
	out := make([]Tile, 0, Rows*Cols)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if m.open[r*Cols+c] {
				out = append(out, Tile{Row: r, Col: c})
			}
		}
	}
	return out
}

// PlayerStart returns the player's round-start tile.
func (m *Maze) PlayerStart() Tile { return m.playerStart }

// PursuerStart returns pursuer i's round-start tile.
func (m *Maze) PursuerStart(i int) Tile { return m.pursuerStarts[i] }

// ScatterTile returns pursuer i's fixed scatter corner.
func (m *Maze) ScatterTile(i int) Tile { return m.scatterTiles[i] }

// Home returns the tile eaten pursuers return to.
func (m *Maze) Home() Tile { return m.homeTile }

// Pellets and Powers return the item tiles read from the layout.
func (m *Maze) Pellets() []Tile { return m.pellets }
func (m *Maze) Powers() []Tile  { return m.powers }

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
