package grid

import (
	"slices"
	"testing"
)

func TestCompactLine(t *testing.T) {
	tests := []struct {
		name     string
		input    Line
		expected Line
		changed  bool
		score    int
		merged   []int
	}{
		{
			name:     "simple merge",
			input:    Line{2, 2, 0, 0},
			expected: Line{4, 0, 0, 0},
			changed:  true,
			score:    4,
			merged:   []int{0},
		},
		{
			name:     "merged tile does not absorb next equal value",
			input:    Line{2, 2, 4, 0},
			expected: Line{4, 4, 0, 0},
			changed:  true,
			score:    4,
			merged:   []int{0},
		},
		{
			name:     "leftmost pair wins across a gap",
			input:    Line{2, 0, 2, 2},
			expected: Line{4, 2, 0, 0},
			changed:  true,
			score:    4,
			merged:   []int{0},
		},
		{
			name:     "merge with trailing tile",
			input:    Line{2, 2, 2, 0},
			expected: Line{4, 2, 0, 0},
			changed:  true,
			score:    4,
			merged:   []int{0},
		},
		{
			name:     "double merge",
			input:    Line{2, 2, 2, 2},
			expected: Line{4, 4, 0, 0},
			changed:  true,
			score:    8,
			merged:   []int{0, 1},
		},
		{
			name:     "one merge per tile",
			input:    Line{4, 4, 4, 4},
			expected: Line{8, 8, 0, 0},
			changed:  true,
			score:    16,
			merged:   []int{0, 1},
		},
		{
			name:     "no merge possible",
			input:    Line{2, 4, 8, 16},
			expected: Line{2, 4, 8, 16},
		},
		{
			name:     "slide with gap",
			input:    Line{0, 0, 2, 2},
			expected: Line{4, 0, 0, 0},
			changed:  true,
			score:    4,
			merged:   []int{0},
		},
		{
			name:     "slide with multiple gaps",
			input:    Line{2, 0, 0, 2},
			expected: Line{4, 0, 0, 0},
			changed:  true,
			score:    4,
			merged:   []int{0},
		},
		{
			name:     "no change needed",
			input:    Line{4, 2, 0, 0},
			expected: Line{4, 2, 0, 0},
		},
		{
			name:     "empty line",
			input:    Line{0, 0, 0, 0},
			expected: Line{0, 0, 0, 0},
		},
		{
			name:     "single tile",
			input:    Line{0, 4, 0, 0},
			expected: Line{4, 0, 0, 0},
			changed:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, changed, score, merged := CompactLine(tt.input)
			if result != tt.expected {
				t.Errorf("CompactLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if changed != tt.changed {
				t.Errorf("CompactLine(%v) changed = %v, want %v", tt.input, changed, tt.changed)
			}
			if score != tt.score {
				t.Errorf("CompactLine(%v) score = %d, want %d", tt.input, score, tt.score)
			}
			if !slices.Equal(merged, tt.merged) {
				t.Errorf("CompactLine(%v) merged = %v, want %v", tt.input, merged, tt.merged)
			}
		})
	}
}

func TestCompactLineIsIdempotentWithoutMerges(t *testing.T) {
	lines := []Line{
		{2, 4, 0, 0},
		{0, 8, 0, 16},
		{2, 4, 2, 4},
	}

	for _, l := range lines {
		once, _, _, _ := CompactLine(l)
		twice, changed, score, _ := CompactLine(once)
		if changed || score != 0 || twice != once {
			t.Errorf("second compaction of %v changed it: %v -> %v (score %d)", l, once, twice, score)
		}
	}
}
