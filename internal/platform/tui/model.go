package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-merge/internal/canvas"
	"github.com/vovakirdan/tile-merge/internal/grid"
	"github.com/vovakirdan/tile-merge/internal/session"
	"github.com/vovakirdan/tile-merge/internal/storage"
)

// minSwipe is the shortest pointer drag, in scaled cells, that counts as a move.
const minSwipe = 2

// GameRecorder stores finished games. *storage.Store implements it.
type GameRecorder interface {
	SaveGame(rec storage.GameRecord) (int64, error)
}

// Config holds the runtime settings of the board.
type Config struct {
	ScreenW   int
	ScreenH   int
	TickRate  int
	SessionID string
	Logger    *log.Logger
}

// Model is the Bubble Tea model for the board.
type Model struct {
	sess       *session.Session
	recorder   GameRecorder
	config     Config
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	screen     *canvas.Screen
	highlights Highlights

	showWin  bool
	recorded bool // Whether the current game has been written to history
	status   string

	dragging     bool
	dragX, dragY int

	quitting bool
}

// NewModel creates a board model around sess. recorder may be nil.
func NewModel(sess *session.Session, recorder GameRecorder, cfg Config) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = DefaultTickRate
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		sess:       sess,
		recorder:   recorder,
		config:     cfg,
		logger:     logger,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		screen:     canvas.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		highlights: make(Highlights),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.highlights.Tick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.recordGame()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Undo):
		m.showWin = false
		wasOver := m.sess.Status() == session.StatusGameOver
		if m.sess.Undo() {
			clear(m.highlights)
			m.status = ""
			if wasOver {
				// the game continues, so its final result is still to come
				m.recorded = false
			}
		} else {
			m.status = "Nothing to undo"
		}
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		m.recordGame()
		m.sess.NewGame()
		m.recorded = false
		m.showWin = false
		m.status = ""
		clear(m.highlights)
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.move(dir)
	}
	return m, nil
}

// handleMouse turns a left-button drag into a move.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = true
		m.dragX, m.dragY = msg.X, msg.Y

	case msg.Action == tea.MouseActionRelease && m.dragging:
		m.dragging = false
		// Terminal cells are roughly twice as tall as they are wide.
		dx, dy := msg.X-m.dragX, (msg.Y-m.dragY)*2
		if abs(dx)+abs(dy) < minSwipe {
			return m, nil
		}
		if dir, ok := ClassifySwipe(dx, dy); ok {
			m.move(dir)
		}
	}
	return m, nil
}

// move forwards one direction to the session and updates presentation state.
func (m *Model) move(dir grid.Direction) {
	m.showWin = false

	out, err := m.sess.Move(dir)
	if err != nil {
		m.logger.Warn("move rejected", "direction", dir, "err", err)
		return
	}

	m.highlights.Rebuild(out)
	m.status = ""
	if !out.Changed && !out.JustLost {
		m.status = fmt.Sprintf("Can't move %s", dir)
	}
	if out.JustWon {
		m.showWin = true
	}
	// JustLost stays false when the game-over flag survived an undo.
	if out.JustLost || (out.Changed && m.sess.Status() == session.StatusGameOver) {
		m.recordGame()
	}
}

// recordGame writes the current game to the history once.
// Games without a successful move are not recorded.
func (m *Model) recordGame() {
	st := m.sess.State()
	if m.recorded || m.recorder == nil || st.Moves == 0 {
		return
	}
	m.recorded = true

	rec := storage.GameRecord{
		SessionID: m.config.SessionID,
		Score:     st.Score,
		MaxTile:   st.MaxTile,
		Moves:     st.Moves,
		Won:       st.Won,
	}
	// Best-effort save, game continues regardless
	if _, err := m.recorder.SaveGame(rec); err != nil {
		m.logger.Warn("failed to record game", "err", err)
	}
}

// saveScreenshot saves the current board as plain text.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "Screenshot failed"
		return
	}
	dir := filepath.Join(home, ".tilemerge", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "Screenshot failed"
		return
	}

	filename := fmt.Sprintf("tilemerge_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("failed to save screenshot", "path", path, "err", err)
		m.status = "Screenshot failed"
		return
	}
	m.status = "Saved " + filename
}

func (m *Model) draw() {
	drawFrame(m.screen, frame{
		state:      m.sess.State(),
		highlights: m.highlights,
		showWin:    m.showWin,
		winTile:    m.sess.Options().WinTile,
		status:     m.status,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for sess.
func Run(sess *session.Session, recorder GameRecorder, cfg Config) error {
	model := NewModel(sess, recorder, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
