package grid

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any two 4-neighbours hold the same tile.
func HasPossibleMerge(g Grid) bool {
	for r := range Size {
		for c := range Size {
			val := g[r][c]
			if val == 0 {
				continue
			}
			// Check right neighbor
			if c < Size-1 && g[r][c+1] == val {
				return true
			}
			// Check bottom neighbor
			if r < Size-1 && g[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if at least one direction would change the grid.
func CanMove(g Grid) bool {
	return HasEmptyCell(g) || HasPossibleMerge(g)
}

// IsTerminal returns true when the grid is full and no neighbours are equal,
// i.e. no direction changes it.
func IsTerminal(g Grid) bool {
	return !CanMove(g)
}

// MaxTile returns the maximum tile value on the grid.
func MaxTile(g Grid) int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] > maxVal {
				maxVal = g[r][c]
			}
		}
	}
	return maxVal
}

// TileCount returns the number of non-empty cells.
func TileCount(g Grid) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g[r][c] != 0 {
				n++
			}
		}
	}
	return n
}
