// Package session owns a single game of the merge puzzle: the current grid,
// score, best score, win and game-over flags, and the undo history. It calls
// into package grid for every rule and is the only mutator of its state.
//
// A Session is not safe for concurrent use; drive it from one goroutine.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-merge/internal/grid"
)

// Session is the game controller.
type Session struct {
	opts    Options
	spawner *grid.Spawner
	store   BestScoreStore
	logger  *log.Logger

	grid     grid.Grid
	score    int
	best     int
	gameOver bool
	won      bool
	moves    int
	history  history
}

// New creates a session, loads the best score from store and starts a game.
// store and logger may be nil.
func New(store BestScoreStore, opts Options, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts = opts.withDefaults()
	s := &Session{
		opts:    opts,
		spawner: grid.NewSpawner(opts.Seed, opts.Spawn4),
		store:   store,
		logger:  logger,
		history: history{limit: opts.UndoLimit},
	}

	s.loadBest()
	s.NewGame()
	return s
}

// NewGame clears the board, spawns the initial tiles and resets score,
// flags and undo history. The best score is kept.
func (s *Session) NewGame() {
	s.grid = grid.Grid{}
	for range s.opts.InitialTiles {
		s.grid, _, _, _ = s.spawner.Spawn(s.grid)
	}

	s.score = 0
	s.gameOver = false
	s.won = false
	s.moves = 0
	s.history.clear()

	s.logger.Debug("new game", "best", s.best)
}

// Move applies dir to the grid.
//
// The pre-move (grid, score) is pushed onto the undo history on every valid
// attempt, including moves that change nothing, unless Options.SkipNoopUndo
// is set. When the grid changes the score delta is added, one tile is spawned,
// the won and gameOver flags are updated and the best score is raised.
// gameOver is re-derived on every attempt so it always matches the grid.
// A move after game over is accepted and leaves the grid unchanged.
func (s *Session) Move(dir grid.Direction) (Outcome, error) {
	if !dir.Valid() {
		return Outcome{}, fmt.Errorf("%w: %d", grid.ErrInvalidDirection, int(dir))
	}

	res := grid.ApplyMove(s.grid, dir)
	out := Outcome{
		Direction: dir,
		Changed:   res.Changed,
		Merges:    res.Merges,
	}

	if res.Changed || !s.opts.SkipNoopUndo {
		s.history.push(snapshot{grid: s.grid, score: s.score, moved: res.Changed})
	}

	wasOver := s.gameOver

	if !res.Changed {
		s.gameOver = grid.IsTerminal(s.grid)
		out.JustLost = s.gameOver && !wasOver
		return out, nil
	}

	next, at, value, spawned := s.spawner.Spawn(res.Grid)
	out.ScoreDelta = res.Score
	out.Spawned = spawned
	out.SpawnedAt = at
	out.SpawnValue = value

	if !s.won && s.reachedWinTile(res.Merges) {
		s.won = true
		out.JustWon = true
		s.logger.Debug("win tile reached", "tile", s.opts.WinTile, "score", s.score+res.Score)
	}

	s.gameOver = grid.IsTerminal(next)
	out.JustLost = s.gameOver && !wasOver

	s.grid = next
	s.score += res.Score
	s.moves++
	s.updateBest()

	if out.JustLost {
		s.logger.Debug("game over", "score", s.score, "max_tile", grid.MaxTile(s.grid))
	}

	return out, nil
}

// reachedWinTile reports whether any merge produced exactly the win tile.
func (s *Session) reachedWinTile(merges []grid.Merge) bool {
	for _, m := range merges {
		if m.Value == s.opts.WinTile {
			return true
		}
	}
	return false
}

// Undo restores the most recent (grid, score) snapshot.
// Returns false when there is nothing to undo.
// The won flag is never touched; gameOver is only re-derived when
// Options.RecomputeFlagsOnUndo is set.
func (s *Session) Undo() bool {
	snap, ok := s.history.pop()
	if !ok {
		return false
	}

	s.grid = snap.grid
	s.score = snap.score
	if snap.moved {
		s.moves--
	}

	if s.opts.RecomputeFlagsOnUndo {
		s.gameOver = grid.IsTerminal(s.grid)
	}

	return true
}

// CanUndo reports whether the undo history is non-empty.
func (s *Session) CanUndo() bool {
	return s.history.len() > 0
}

// Status returns the state machine position.
func (s *Session) Status() Status {
	switch {
	case s.gameOver:
		return StatusGameOver
	case s.won:
		return StatusWon
	default:
		return StatusPlaying
	}
}

// State returns a copy of the current session state.
func (s *Session) State() State {
	return State{
		Grid:      s.grid,
		Score:     s.score,
		BestScore: s.best,
		GameOver:  s.gameOver,
		Won:       s.won,
		Status:    s.Status(),
		Moves:     s.moves,
		MaxTile:   grid.MaxTile(s.grid),
		UndoDepth: s.history.len(),
	}
}

// Options returns the effective options.
func (s *Session) Options() Options {
	return s.opts
}
