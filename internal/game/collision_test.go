package game

import "testing"

// placePursuer builds a pursuer at tile t in the given mode.
func placePursuer(id int, t Tile, mode Mode) *Pursuer {
	p := NewPursuer(id, t, Tile{Row: 1, Col: 1}, Tile{Row: 1, Col: 1})
	p.mode = mode
	return p
}

func TestResolveCollisions_ThresholdIsSubTile(t *testing.T) {
	player := NewPlayer(Tile{Row: 1, Col: 1})
	// Adjacent tile centers are one full tile apart: no contact.
	adjacent := placePursuer(0, Tile{Row: 1, Col: 2}, ModeChase)
	if ev := ResolveCollisions(player, []*Pursuer{adjacent}); len(ev) != 0 {
		t.Fatalf("adjacency must not collide, got %v", ev)
	}

	// Same center: contact.
	onTop := placePursuer(0, Tile{Row: 1, Col: 1}, ModeChase)
	ev := ResolveCollisions(player, []*Pursuer{onTop})
	if len(ev) != 1 || ev[0].Kind != CollisionHit {
		t.Fatalf("expected one hit, got %v", ev)
	}
}

func TestResolveCollisions_ModeDispatch(t *testing.T) {
	player := NewPlayer(Tile{Row: 1, Col: 1})
	at := player.tile

	frightened := placePursuer(0, at, ModeFrightened)
	eaten := placePursuer(1, at, ModeEaten)

	ev := ResolveCollisions(player, []*Pursuer{frightened, eaten})
	if len(ev) != 1 {
		t.Fatalf("expected a single event, got %v", ev)
	}
	if ev[0].Kind != CollisionCapture || ev[0].Pursuer != 0 {
		t.Fatalf("expected capture of pursuer 0, got %v", ev[0])
	}
}

func TestResolveCollisions_FirstHitEndsScan(t *testing.T) {
	player := NewPlayer(Tile{Row: 1, Col: 1})
	at := player.tile

	capture := placePursuer(0, at, ModeFrightened)
	hit := placePursuer(1, at, ModeScatter)
	ignored := placePursuer(2, at, ModeChase)

	ev := ResolveCollisions(player, []*Pursuer{capture, hit, ignored})
	if len(ev) != 2 {
		t.Fatalf("expected capture then hit, got %v", ev)
	}
	if ev[0].Kind != CollisionCapture || ev[1].Kind != CollisionHit || ev[1].Pursuer != 1 {
		t.Fatalf("unexpected events %v", ev)
	}
}

func TestMode_Hostile(t *testing.T) {
	cases := []struct {
		mode Mode
		want bool
	}{
		{ModeScatter, true},
		{ModeChase, true},
		{ModeFrightened, false},
		{ModeEaten, false},
	}
	for _, c := range cases {
		if got := c.mode.Hostile(); got != c.want {
			t.Errorf("%s.Hostile() = %v, want %v", c.mode, got, c.want)
		}
	}
}
