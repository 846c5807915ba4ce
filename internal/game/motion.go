package game

import "math"

// Vec2 is a continuous pixel-space position.
type Vec2 struct {
	X float64
	Y float64
}

// TileCenter returns the pixel-space center of t.
func TileCenter(t Tile) Vec2 {
	return Vec2{
		X: float64(t.Col)*TileSize + TileSize/2,
		Y: float64(t.Row)*TileSize + TileSize/2,
	}
}

// TileAt returns the tile containing the pixel-space position p. Read back
// only at path-recompute boundaries; the logical tile stays the source of
// truth everywhere else.
func TileAt(p Vec2) Tile {
	return Tile{Row: int(p.Y) / TileSize, Col: int(p.X) / TileSize}
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// StepToward advances pos toward the center of target by at most budget
// pixels along the straight line. When the center is reached or overshot
// within the budget it snaps exactly to the center and reports arrived.
// Callers must only request a target that is the current tile or an open
// neighbor of it; walls are never entered because motion is confined to the
// segment between two open tile centers.
func StepToward(pos Vec2, target Tile, budget float64) (Vec2, bool) {
	c := TileCenter(target)
	d := Dist(pos, c)
	if d <= budget {
		return c, true
	}
	return Vec2{
		X: pos.X + (c.X-pos.X)/d*budget,
		Y: pos.Y + (c.Y-pos.Y)/d*budget,
	}, false
}
