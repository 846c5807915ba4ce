package game

// collisionThreshold is the contact distance between player and pursuer
// centers. Kept below one tile so mere adjacency never triggers.
const collisionThreshold = 2*agentRadius - 3

// CollisionKind classifies a resolved player/pursuer contact.
type CollisionKind int

const (
	// CollisionCapture is contact with a frightened pursuer.
	CollisionCapture CollisionKind = iota
	// CollisionHit is contact with a hostile pursuer.
	CollisionHit
)

// CollisionEvent names the pursuer involved and how the contact resolves.
type CollisionEvent struct {
	Pursuer int
	Kind    CollisionKind
}

// ResolveCollisions scans the pursuers in index order against the player's
// position. Frightened contacts yield capture events; eaten pursuers are
// inert; the first hostile contact yields a hit event and ends the scan, so
// no further pursuer is evaluated against an already-resetting player.
func ResolveCollisions(player *Player, pursuers []*Pursuer) []CollisionEvent {
	var events []CollisionEvent
	for i, pu := range pursuers {
		if Dist(player.pos, pu.pos) >= collisionThreshold {
			continue
		}
		switch pu.mode {
		case ModeFrightened:
			events = append(events, CollisionEvent{Pursuer: i, Kind: CollisionCapture})
		case ModeEaten:
			// Already neutralized.
		case ModeScatter, ModeChase:
			events = append(events, CollisionEvent{Pursuer: i, Kind: CollisionHit})
			return events
		}
	}
	return events
}
