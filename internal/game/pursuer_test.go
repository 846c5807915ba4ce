package game

import (
	"math/rand"
	"testing"
)

const dt60 = 1.0 / 60.0

func TestPursuer_ScatterHeadsForCorner(t *testing.T) {
	m := ParseMaze(DefaultLayout)
	p := NewPursuer(0, m.PursuerStart(0), m.ScatterTile(0), m.Home())
	rng := rand.New(rand.NewSource(1))

	p.Update(dt60, m, Tile{Row: 1, Col: 1}, rng)
	if p.pathDone() {
		t.Fatal("scatter pursuer should have a path")
	}
	if got := p.path[len(p.path)-1]; got != m.ScatterTile(0) {
		t.Fatalf("scatter path ends at %v, want corner %v", got, m.ScatterTile(0))
	}
}

func TestPursuer_ChaseRetargetsWhenPlayerMoves(t *testing.T) {
	m := ParseMaze(DefaultLayout)
	p := NewPursuer(0, m.PursuerStart(0), m.ScatterTile(0), m.Home())
	p.mode = ModeChase
	rng := rand.New(rand.NewSource(1))

	p.Update(dt60, m, Tile{Row: 1, Col: 1}, rng)
	if got := p.path[len(p.path)-1]; got != (Tile{Row: 1, Col: 1}) {
		t.Fatalf("chase path ends at %v", got)
	}

	// Player tile changed: the stale path must be replaced this tick.
	p.Update(dt60, m, Tile{Row: 29, Col: 26}, rng)
	if got := p.path[len(p.path)-1]; got != (Tile{Row: 29, Col: 26}) {
		t.Fatalf("chase path not refreshed, ends at %v", got)
	}
}

func TestPursuer_FrightenedTargetsOpenTiles(t *testing.T) {
	m := ParseMaze(DefaultLayout)
	p := NewPursuer(0, m.PursuerStart(0), m.ScatterTile(0), m.Home())
	rng := rand.New(rand.NewSource(3))
	p.Frighten()

	for i := 0; i < 600; i++ {
		p.Update(dt60, m, Tile{Row: 1, Col: 1}, rng)
		if !m.IsOpen(p.target) {
			t.Fatalf("tick %d: frightened target %v is not open", i, p.target)
		}
	}
}

func TestPursuer_FrightenOnEatenIsIgnored(t *testing.T) {
	m := ParseMaze(DefaultLayout)
	p := NewPursuer(0, m.PursuerStart(0), m.ScatterTile(0), m.Home())
	p.Capture()
	p.Frighten()
	if p.mode != ModeEaten {
		t.Fatalf("eaten pursuer must stay eaten, got %s", p.mode)
	}
}

func TestPursuer_EatenRevertsToScatterAtHome(t *testing.T) {
	m := ParseMaze(DefaultLayout)
	home := m.Home()
	// Start one open tile away from home.
	neighbors := m.Neighbors(home)
	if len(neighbors) == 0 {
		t.Fatal("home tile needs an open neighbor")
	}
	p := NewPursuer(0, neighbors[0], m.ScatterTile(0), home)
	p.Capture()
	rng := rand.New(rand.NewSource(1))

	// One tile per tick at most: a quarter second covers the single step.
	p.Update(0.25, m, Tile{Row: 1, Col: 1}, rng)
	if p.tile != home {
		t.Fatalf("expected pursuer home, at %v", p.tile)
	}
	if p.mode != ModeScatter {
		t.Fatalf("expected scatter after reaching home, got %s", p.mode)
	}
}

func TestPursuer_UnreachableTargetHoldsPosition(t *testing.T) {
	// Pursuer sealed into an isolated cell: every search fails, the pursuer
	// holds and retries instead of erroring.
	rows := solidLayout()
	rows[5][5] = '1'
	rows[1][1] = ' '
	m := ParseMaze(layoutStrings(rows))

	p := NewPursuer(0, m.PursuerStart(0), Tile{Row: 1, Col: 1}, Tile{Row: 1, Col: 1})
	rng := rand.New(rand.NewSource(1))
	before := p.pos
	for i := 0; i < 120; i++ {
		p.Update(dt60, m, Tile{Row: 1, Col: 1}, rng)
	}
	if p.pos != before {
		t.Fatalf("sealed pursuer moved from %v to %v", before, p.pos)
	}
}

func TestPursuer_PathCursorSkipsStartTile(t *testing.T) {
	m := ParseMaze(DefaultLayout)
	p := NewPursuer(0, m.PursuerStart(0), m.ScatterTile(0), m.Home())
	rng := rand.New(rand.NewSource(1))
	start := p.tile

	p.Update(dt60, m, Tile{Row: 1, Col: 1}, rng)
	if p.pathIndex == 0 && len(p.path) > 1 {
		t.Fatal("cursor must point at the step after the start tile")
	}
	if p.path[p.pathIndex-1] != start && p.path[0] != start {
		t.Fatalf("path should begin at the start tile %v: %v", start, p.path[0])
	}
}
