package main

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-merge/internal/platform/tui"
	"github.com/vovakirdan/tile-merge/internal/session"
	"github.com/vovakirdan/tile-merge/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Arrows/WASD/HJKL  - Move
  Mouse drag        - Move in the drag direction
  U                 - Undo
  N                 - New game
  Ctrl+S            - Save a text screenshot
  Q/Esc             - Quit

Logs are written to ~/.tilemerge/tilemerge.log while the board is open.

Examples:
  tilemerge play
  tilemerge play --seed 42
  tilemerge play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings()
	if err != nil {
		return err
	}

	logOut := openPlayLog()
	defer logOut.Close()
	logger := newLogger(logOut, cfg.Log.Level)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	var (
		best     session.BestScoreStore
		recorder tui.GameRecorder
	)
	store, err := openStore(cfg)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open scores database", "path", cfg.Storage.DBPath, "err", err)
		best = storage.NewMemory()
	} else {
		defer store.Close()
		best = store
		recorder = store
	}

	saver := storage.NewAsyncSaver(best, logger)
	sessionID := uuid.NewString()
	logger.Info("session started", "session", sessionID, "seed", seed)

	sess := session.New(saver, cfg.SessionOptions(seed), logger)
	runErr := tui.Run(sess, recorder, tui.Config{
		ScreenW:   width,
		ScreenH:   height,
		SessionID: sessionID,
		Logger:    logger,
	})

	// Flush the best score before the store closes.
	saver.Close()
	logger.Info("session ended", "session", sessionID, "score", sess.State().Score)
	return runErr
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// openPlayLog opens the log file used while the board owns the terminal.
func openPlayLog() io.WriteCloser {
	home, err := os.UserHomeDir()
	if err != nil {
		return nopCloser{io.Discard}
	}
	dir := filepath.Join(home, ".tilemerge")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nopCloser{io.Discard}
	}
	f, err := os.OpenFile(filepath.Join(dir, "tilemerge.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nopCloser{io.Discard}
	}
	return f
}
