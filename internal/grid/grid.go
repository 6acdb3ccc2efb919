// Package grid implements the pure rules of the sliding-tile merge puzzle:
// single-direction moves with merging, random tile spawning and terminal-state
// detection. Every function takes and returns values; nothing here keeps state
// between calls except the Spawner's random source.
package grid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Grid is a Size x Size board. Zero means an empty cell, any other value is a
// power of two >= 2. Grid is an array, so assignment copies it.
type Grid [Size][Size]int

// Line is one row or column oriented so the move direction points at index 0.
type Line [Size]int

// Point addresses a cell by row and column.
type Point struct {
	Row int
	Col int
}

// Direction represents a move direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every valid direction.
var Directions = [...]Direction{Left, Right, Up, Down}

// ErrInvalidDirection is returned when input does not name one of the four directions.
var ErrInvalidDirection = errors.New("invalid direction")

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "Direction(" + strconv.Itoa(int(d)) + ")"
	}
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Left && d <= Down
}

// ParseDirection converts a name or a movement key into a Direction.
// Accepts left/right/up/down, wasd and vim-style hjkl.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "a", "h":
		return Left, nil
	case "right", "d", "l":
		return Right, nil
	case "up", "w", "k":
		return Up, nil
	case "down", "s", "j":
		return Down, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// FromRows builds a Grid from a slice of rows.
// Panics if the shape is not Size x Size or a cell is not 0 or a power of two >= 2.
func FromRows(rows [][]int) Grid {
	if len(rows) != Size {
		panic(fmt.Sprintf("grid: expected %d rows, got %d", Size, len(rows)))
	}

	var g Grid
	for r, row := range rows {
		if len(row) != Size {
			panic(fmt.Sprintf("grid: row %d has %d cells, want %d", r, len(row), Size))
		}
		for c, v := range row {
			if !validTile(v) {
				panic(fmt.Sprintf("grid: invalid tile %d at (%d,%d)", v, r, c))
			}
			g[r][c] = v
		}
	}
	return g
}

// validTile reports whether v may appear in a cell.
func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

// Get returns the value at p.
func (g Grid) Get(p Point) int {
	return g[p.Row][p.Col]
}

// Row returns row r as a Line.
func (g Grid) Row(r int) Line {
	return Line(g[r])
}

// Col returns column c as a Line, top to bottom.
func (g Grid) Col(c int) Line {
	var l Line
	for r := range Size {
		l[r] = g[r][c]
	}
	return l
}

// String renders the grid as fixed-width text, one row per line, '.' for empty.
func (g Grid) String() string {
	var sb strings.Builder
	for r := range Size {
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if g[r][c] == 0 {
				sb.WriteString(fmt.Sprintf("%5s", "."))
				continue
			}
			sb.WriteString(fmt.Sprintf("%5d", g[r][c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
