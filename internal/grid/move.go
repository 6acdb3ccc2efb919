package grid

// Merge records a tile created by merging two equal tiles.
type Merge struct {
	At    Point
	Value int
}

// MoveResult is the outcome of applying a direction to a grid.
type MoveResult struct {
	Grid    Grid
	Changed bool
	Score   int
	Merges  []Merge
}

// MaxMerge returns the largest merged value in the move, or 0.
func (r MoveResult) MaxMerge() int {
	maxVal := 0
	for _, m := range r.Merges {
		if m.Value > maxVal {
			maxVal = m.Value
		}
	}
	return maxVal
}

// ApplyMove slides every row (left/right) or column (up/down) of g in the given
// direction. All four directions share CompactLine: lines are read so that the
// motion points at index 0 and written back the same way.
// An invalid direction leaves the grid unchanged.
func ApplyMove(g Grid, dir Direction) MoveResult {
	res := MoveResult{Grid: g}
	if !dir.Valid() {
		return res
	}

	for i := range Size {
		line := orient(g, dir, i)
		out, changed, score, merged := CompactLine(line)

		res.Changed = res.Changed || changed
		res.Score += score
		writeLine(&res.Grid, dir, i, out)

		for _, idx := range merged {
			p := cellAt(dir, i, idx)
			res.Merges = append(res.Merges, Merge{At: p, Value: out[idx]})
		}
	}

	return res
}

// orient extracts line i of g so that dir points toward index 0.
func orient(g Grid, dir Direction, i int) Line {
	switch dir {
	case Right:
		return g.Row(i).reverse()
	case Up:
		return g.Col(i)
	case Down:
		return g.Col(i).reverse()
	default:
		return g.Row(i)
	}
}

// writeLine stores an oriented line back into g, undoing the orientation.
func writeLine(g *Grid, dir Direction, i int, l Line) {
	for idx, v := range l {
		p := cellAt(dir, i, idx)
		g[p.Row][p.Col] = v
	}
}

// cellAt maps index idx of oriented line i back to grid coordinates.
func cellAt(dir Direction, i, idx int) Point {
	switch dir {
	case Right:
		return Point{Row: i, Col: Size - 1 - idx}
	case Up:
		return Point{Row: idx, Col: i}
	case Down:
		return Point{Row: Size - 1 - idx, Col: i}
	default:
		return Point{Row: i, Col: idx}
	}
}
