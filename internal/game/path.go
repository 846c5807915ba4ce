package game

// ShortestPath runs a breadth-first search over m from start to goal and
// returns the tile sequence from start to goal inclusive, or nil when the
// goal is unreachable. Ties between equal-length paths are broken by the
// Neighbors traversal order. A search from a tile to itself returns a
// single-tile path. Stateless: every call re-runs the search.
func ShortestPath(m *Maze, start, goal Tile) []Tile {
	if start == goal {
		return []Tile{start}
	}
	if !m.IsOpen(start) || !m.IsOpen(goal) {
		return nil
	}

	came := make(map[Tile]Tile, Rows*Cols)
	came[start] = start
	queue := []Tile{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range m.Neighbors(cur) {
			if _, seen := came[n]; seen {
				continue
			}
			came[n] = cur
			if n == goal {
				return rebuildPath(came, start, goal)
			}
			queue = append(queue, n)
		}
	}
	return nil
}

func rebuildPath(came map[Tile]Tile, start, goal Tile) []Tile {
	var rev []Tile
	for t := goal; t != start; t = came[t] {
		rev = append(rev, t)
	}
	rev = append(rev, start)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}
