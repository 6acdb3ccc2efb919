package tui

import (
	"github.com/vovakirdan/tile-merge/internal/grid"
	"github.com/vovakirdan/tile-merge/internal/session"
)

// HighlightKind marks why a cell is highlighted.
type HighlightKind int

const (
	HighlightNone HighlightKind = iota
	HighlightMerged
	HighlightSpawned
)

// Fade durations in ticks.
const (
	mergedTicks  = 6
	spawnedTicks = 4
)

type highlight struct {
	kind  HighlightKind
	ticks int
}

// Highlights is a presentation-only side table keyed by cell. It is rebuilt
// from each move outcome and fades on ticks.
type Highlights map[grid.Point]highlight

// Rebuild replaces the table with the cells touched by out.
func (h Highlights) Rebuild(out session.Outcome) {
	clear(h)
	if !out.Changed {
		return
	}
	for _, m := range out.Merges {
		h[m.At] = highlight{kind: HighlightMerged, ticks: mergedTicks}
	}
	if out.Spawned {
		h[out.SpawnedAt] = highlight{kind: HighlightSpawned, ticks: spawnedTicks}
	}
}

// Tick ages every entry and drops expired ones.
func (h Highlights) Tick() {
	for p, hl := range h {
		hl.ticks--
		if hl.ticks <= 0 {
			delete(h, p)
			continue
		}
		h[p] = hl
	}
}

// Kind returns the highlight at p.
func (h Highlights) Kind(p grid.Point) HighlightKind {
	return h[p].kind
}
