package grid

import (
	"math/rand"
)

// DefaultSpawn4 is the probability of spawning a 4 instead of a 2.
const DefaultSpawn4 = 0.10

// Spawner places new tiles into empty cells using its own random source.
// Two spawners built from the same seed produce the same sequence.
type Spawner struct {
	rng    *rand.Rand
	spawn4 float64
}

// NewSpawner creates a spawner seeded with seed.
// A spawn4 outside [0, 1] falls back to DefaultSpawn4.
func NewSpawner(seed int64, spawn4 float64) *Spawner {
	if spawn4 < 0 || spawn4 > 1 {
		spawn4 = DefaultSpawn4
	}
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		spawn4: spawn4,
	}
}

// Spawn4 returns the configured probability of a 4.
func (s *Spawner) Spawn4() float64 {
	return s.spawn4
}

// Spawn puts a 2 or a 4 into a uniformly chosen empty cell.
// Returns the new grid, where the tile went, its value and whether anything
// was placed. A full grid is returned unchanged.
func (s *Spawner) Spawn(g Grid) (Grid, Point, int, bool) {
	empty := EmptyCells(g)
	if len(empty) == 0 {
		return g, Point{}, 0, false
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < s.spawn4 {
		value = 4
	}

	g[cell.Row][cell.Col] = value
	return g, cell, value, true
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(g Grid) []Point {
	var cells []Point
	for r := range Size {
		for c := range Size {
			if g[r][c] == 0 {
				cells = append(cells, Point{Row: r, Col: c})
			}
		}
	}
	return cells
}
