package game

import (
	"testing"
)

func TestSession_CountdownFreezesSimulation(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	s := ts.Session

	if s.Phase() != PhaseCountdown {
		t.Fatalf("fresh session should be in countdown, got %s", s.Phase())
	}
	playerPos := s.player.pos
	pursuerPos := s.pursuers[0].pos
	ts.RunTicks(60) // one second of a two-second countdown

	if s.Phase() != PhaseCountdown {
		t.Fatalf("countdown should still be running, got %s", s.Phase())
	}
	if s.player.pos != playerPos || s.pursuers[0].pos != pursuerPos {
		t.Fatal("nothing may move during the countdown")
	}

	ts.RunTicks(70)
	if s.Phase() != PhaseActive {
		t.Fatalf("countdown should have elapsed, got %s", s.Phase())
	}
}

func TestSession_RestartRequestSkipsCountdown(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	ts.Session.RequestRestart()
	if ts.Session.Phase() != PhaseActive {
		t.Fatalf("restart during countdown should skip it, got %s", ts.Session.Phase())
	}
}

func TestSession_PickupIsIdempotent(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	ts.SkipCountdown()
	s := ts.Session

	// Park the stationary player on a pellet tile.
	s.player.placeAt(Tile{Row: 1, Col: 1})
	ts.RunTicks(1)
	if s.Score() != pelletScore {
		t.Fatalf("expected %d after pickup, got %d", pelletScore, s.Score())
	}
	ts.RunTicks(1)
	if s.Score() != pelletScore {
		t.Fatalf("second tick on the same tile must not score again, got %d", s.Score())
	}
}

func TestSession_PowerWindowRefreshesNotStacks(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	ts.SkipCountdown()
	s := ts.Session

	s.player.placeAt(Tile{Row: 3, Col: 1}) // power pellet
	ts.RunTicks(1)
	first := s.frightEnd
	if first <= 0 {
		t.Fatal("power pickup should arm the frightened window")
	}

	s.player.placeAt(Tile{Row: 3, Col: 26}) // second power pellet
	ts.RunTicks(1)
	second := s.frightEnd
	if second <= first {
		t.Fatal("second pickup must refresh the shared window")
	}
	if second-first > 1.0 {
		t.Fatalf("window stacked instead of refreshing: +%.2fs", second-first)
	}
	for i := 0; i < PursuerCount; i++ {
		if s.pursuers[i].mode != ModeFrightened {
			t.Fatalf("pursuer %d should be frightened, got %s", i, s.pursuers[i].mode)
		}
	}
}

func TestSession_ScatterChaseAlternates(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	ts.SkipCountdown()
	s := ts.Session

	ts.StepDt(7.0)
	for i := 0; i < PursuerCount; i++ {
		if s.pursuers[i].mode != ModeChase {
			t.Fatalf("after 7s pursuer %d should chase, got %s", i, s.pursuers[i].mode)
		}
	}
	ts.StepDt(7.0)
	for i := 0; i < PursuerCount; i++ {
		if s.pursuers[i].mode != ModeScatter {
			t.Fatalf("after 14s pursuer %d should scatter, got %s", i, s.pursuers[i].mode)
		}
	}
	if len(ts.SimLog.Filter("mode", "change")) == 0 {
		t.Fatal("mode changes should be logged")
	}
}

func TestSession_FrightenedExpiresInLockstep(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	ts.SkipCountdown()
	s := ts.Session

	s.player.placeAt(Tile{Row: 3, Col: 1})
	ts.RunTicks(1)
	for i := 0; i < PursuerCount; i++ {
		if s.pursuers[i].mode != ModeFrightened {
			t.Fatalf("pursuer %d should be frightened", i)
		}
	}

	// Jump past the window in one step: every pursuer reverts together.
	s.player.placeAt(Tile{Row: 14, Col: 8}) // neutral corridor, no items
	ts.StepDt(frightDuration + 0.1)
	for i := 0; i < PursuerCount; i++ {
		if s.pursuers[i].mode == ModeFrightened {
			t.Fatalf("pursuer %d still frightened after the window", i)
		}
	}
}

func TestSession_TurnRequestIgnoredWhenTerminal(t *testing.T) {
	ts := NewTestSim(WithSeed(1))
	s := ts.Session
	s.phase = PhaseTerminal

	s.RequestTurn(DirLeft)
	if s.player.pendingDir != DirNone {
		t.Fatal("terminal phase must not accept turn requests")
	}
}
