package session

import "github.com/vovakirdan/tile-merge/internal/grid"

// DefaultWinTile is the merge value that wins the game.
const DefaultWinTile = 2048

// Options tunes session rules.
type Options struct {
	Seed         int64   // RNG seed for tile spawning
	Spawn4       float64 // Probability of spawning a 4 (0.0-1.0)
	WinTile      int     // Merge value that sets the won flag
	InitialTiles int     // Tiles spawned by NewGame

	UndoLimit            int  // Max undo entries kept, 0 = unlimited
	SkipNoopUndo         bool // Don't record snapshots for moves that change nothing
	RecomputeFlagsOnUndo bool // Re-derive gameOver after undo
}

// DefaultOptions returns the classic rules.
func DefaultOptions() Options {
	return Options{
		Spawn4:       grid.DefaultSpawn4,
		WinTile:      DefaultWinTile,
		InitialTiles: 2,
	}
}

// withDefaults fills zero values.
func (o Options) withDefaults() Options {
	if o.WinTile <= 0 {
		o.WinTile = DefaultWinTile
	}
	if o.InitialTiles <= 0 {
		o.InitialTiles = 2
	}
	if o.InitialTiles > grid.Size*grid.Size {
		o.InitialTiles = grid.Size * grid.Size
	}
	if o.UndoLimit < 0 {
		o.UndoLimit = 0
	}
	return o
}
