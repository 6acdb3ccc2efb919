package session

import "github.com/vovakirdan/tile-merge/internal/grid"

// Status represents the session state machine position.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusWon      Status = "won"
	StatusGameOver Status = "game_over"
)

// State is a read-only copy of the session for presentation layers.
type State struct {
	Grid      grid.Grid
	Score     int
	BestScore int
	GameOver  bool
	Won       bool
	Status    Status
	Moves     int // Successful moves since the last new game
	MaxTile   int
	UndoDepth int
}

// Outcome describes what a single Move call did.
type Outcome struct {
	Direction  grid.Direction
	Changed    bool
	ScoreDelta int
	Merges     []grid.Merge
	Spawned    bool
	SpawnedAt  grid.Point
	SpawnValue int
	JustWon    bool // First win-tile merge of this game
	JustLost   bool // This move made the grid terminal
}
