package grid

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"left", Left},
		{"RIGHT", Right},
		{" up ", Up},
		{"down", Down},
		{"a", Left},
		{"d", Right},
		{"w", Up},
		{"s", Down},
		{"h", Left},
		{"l", Right},
		{"k", Up},
		{"j", Down},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Errorf("ParseDirection(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDirection("diagonal"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection(diagonal) error = %v, want ErrInvalidDirection", err)
	}
}

func TestDirectionString(t *testing.T) {
	for _, d := range Directions {
		parsed, err := ParseDirection(d.String())
		if err != nil || parsed != d {
			t.Errorf("round trip of %v failed: %v, %v", d, parsed, err)
		}
	}
	if Direction(9).Valid() {
		t.Error("Direction(9) should be invalid")
	}
}

func TestFromRows(t *testing.T) {
	g := FromRows([][]int{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 2048},
	})

	if g.Get(Point{Row: 3, Col: 3}) != 2048 {
		t.Errorf("FromRows lost a value: %v", g)
	}
}

func TestFromRowsPanicsOnContractViolation(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
	}{
		{"too few rows", [][]int{{0, 0, 0, 0}}},
		{"short row", [][]int{{0, 0, 0, 0}, {0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}},
		{"not a power of two", [][]int{{3, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}},
		{"one is not a tile", [][]int{{1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}},
		{"negative", [][]int{{-2, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("FromRows should panic")
				}
			}()
			FromRows(tt.rows)
		})
	}
}

func TestGridString(t *testing.T) {
	g := Grid{{2, 0, 0, 0}}
	out := g.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != Size {
		t.Fatalf("String() has %d lines, want %d", len(lines), Size)
	}
	if !strings.HasPrefix(strings.TrimSpace(lines[0]), "2") {
		t.Errorf("first line = %q", lines[0])
	}
}
