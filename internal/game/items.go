package game

// ItemField tracks the collectible item tiles: pellets and power pellets,
// independently. A tile leaves a set exactly once, on pickup; both sets
// refill in full when both are empty.
type ItemField struct {
	pellets map[Tile]bool
	powers  map[Tile]bool

	fullPellets []Tile
	fullPowers  []Tile
}

// NewItemField builds a field holding the given item tiles.
func NewItemField(pellets, powers []Tile) *ItemField {
	f := &ItemField{
		fullPellets: append([]Tile(nil), pellets...),
		fullPowers:  append([]Tile(nil), powers...),
	}
	f.Refill()
	return f
}

// TakePellet removes the pellet at t, reporting whether one was present.
func (f *ItemField) TakePellet(t Tile) bool {
	if !f.pellets[t] {
		return false
	}
	delete(f.pellets, t)
	return true
}

// TakePower removes the power pellet at t, reporting whether one was present.
func (f *ItemField) TakePower(t Tile) bool {
	if !f.powers[t] {
		return false
	}
	delete(f.powers, t)
	return true
}

// HasPellet and HasPower report membership without removal.
func (f *ItemField) HasPellet(t Tile) bool { return f.pellets[t] }
func (f *ItemField) HasPower(t Tile) bool  { return f.powers[t] }

// Empty reports whether both item sets are exhausted.
func (f *ItemField) Empty() bool {
	return len(f.pellets) == 0 && len(f.powers) == 0
}

// Remaining returns the live pellet and power counts.
func (f *ItemField) Remaining() (pellets, powers int) {
	return len(f.pellets), len(f.powers)
}

// Refill restores both sets to their original full contents.
func (f *ItemField) Refill() {
	f.pellets = make(map[Tile]bool, len(f.fullPellets))
	for _, t := range f.fullPellets {
		f.pellets[t] = true
	}
	f.powers = make(map[Tile]bool, len(f.fullPowers))
	for _, t := range f.fullPowers {
		f.powers[t] = true
	}
}

// PelletTiles returns the tiles currently holding a pellet. Order is
// unspecified; callers that need determinism sort or use the maze lists.
func (f *ItemField) PelletTiles() []Tile {
	out := make([]Tile, 0, len(f.pellets))
	for t := range f.pellets {
		out = append(out, t)
	}
	return out
}

// PowerTiles returns the tiles currently holding a power pellet.
func (f *ItemField) PowerTiles() []Tile {
	out := make([]Tile, 0, len(f.powers))
	for t := range f.powers {
		out = append(out, t)
	}
	return out
}
