package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-merge/internal/canvas"
	"github.com/vovakirdan/tile-merge/internal/grid"
	"github.com/vovakirdan/tile-merge/internal/session"
	"github.com/vovakirdan/tile-merge/internal/storage"
)

type fakeRecorder struct {
	games []storage.GameRecord
	err   error
}

func (f *fakeRecorder) SaveGame(rec storage.GameRecord) (int64, error) {
	f.games = append(f.games, rec)
	return int64(len(f.games)), f.err
}

func newTestModel(t *testing.T, rec GameRecorder) Model {
	t.Helper()
	opts := session.DefaultOptions()
	opts.Seed = 7
	sess := session.New(storage.NewMemory(), opts, nil)
	return NewModel(sess, rec, Config{ScreenW: 80, ScreenH: 24, SessionID: "test-session"})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

var arrowKeys = []tea.KeyMsg{
	{Type: tea.KeyLeft},
	{Type: tea.KeyRight},
	{Type: tea.KeyUp},
	{Type: tea.KeyDown},
}

// playOneMove presses arrows until the board changes.
func playOneMove(t *testing.T, m Model) Model {
	t.Helper()
	for _, k := range arrowKeys {
		m = update(t, m, k)
		if m.sess.State().Moves > 0 {
			return m
		}
	}
	t.Fatal("no arrow key changed the opening board")
	return m
}

func TestModelMoveByKey(t *testing.T) {
	m := newTestModel(t, nil)
	m = playOneMove(t, m)

	st := m.sess.State()
	if st.Moves != 1 {
		t.Errorf("Moves = %d, want 1", st.Moves)
	}
	if grid.TileCount(st.Grid) < 2 {
		t.Errorf("expected a spawned tile, board:\n%s", st.Grid)
	}
	if len(m.highlights) == 0 {
		t.Error("a changing move should leave highlights")
	}
}

func TestModelUndoKey(t *testing.T) {
	m := newTestModel(t, nil)
	before := m.sess.State().Grid

	m = update(t, m, runeKey('u'))
	if m.status != "Nothing to undo" {
		t.Errorf("status = %q", m.status)
	}

	m = playOneMove(t, m)
	for m.sess.CanUndo() {
		m = update(t, m, runeKey('u'))
	}
	if m.sess.State().Grid != before {
		t.Error("undo did not restore the opening board")
	}
	if len(m.highlights) != 0 {
		t.Error("undo should clear highlights")
	}
}

func TestModelRecordsGameOnce(t *testing.T) {
	rec := &fakeRecorder{}
	m := newTestModel(t, rec)
	m = playOneMove(t, m)

	m = update(t, m, runeKey('n'))
	if len(rec.games) != 1 {
		t.Fatalf("recorded %d games after new game, want 1", len(rec.games))
	}
	g := rec.games[0]
	if g.SessionID != "test-session" || g.Moves != 1 {
		t.Errorf("recorded game = %+v", g)
	}

	// Fresh game with no moves is not recorded on quit.
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if len(rec.games) != 1 {
		t.Errorf("recorded %d games, want 1", len(rec.games))
	}
	if next.(Model).View() != "" {
		t.Error("View after quit should be empty")
	}
}

// playUntilRecorded cycles the arrows until the recorder holds n games.
func playUntilRecorded(t *testing.T, m Model, rec *fakeRecorder, n int) Model {
	t.Helper()
	for i := 0; i < 20000 && len(rec.games) < n; i++ {
		m = update(t, m, arrowKeys[i%len(arrowKeys)])
	}
	if len(rec.games) != n {
		t.Fatalf("recorded %d games, want %d", len(rec.games), n)
	}
	return m
}

func TestModelRecordsAgainAfterUndoFromGameOver(t *testing.T) {
	rec := &fakeRecorder{}
	m := newTestModel(t, rec)

	m = playUntilRecorded(t, m, rec, 1)
	if !m.sess.State().GameOver {
		t.Fatal("first record should come from a lost game")
	}
	lost := rec.games[0]

	m = update(t, m, runeKey('u'))
	if m.recorded {
		t.Fatal("undo from game over should allow the game to be recorded again")
	}

	m = playUntilRecorded(t, m, rec, 2)
	if !m.sess.State().GameOver {
		t.Error("second record should come from the second loss")
	}
	if again := rec.games[1]; again.Moves < lost.Moves || again.SessionID != lost.SessionID {
		t.Errorf("second record = %+v, first = %+v", again, lost)
	}

	// Quitting after the second loss adds nothing.
	m = update(t, m, runeKey('q'))
	if len(rec.games) != 2 {
		t.Errorf("recorded %d games after quit, want 2", len(rec.games))
	}
}

func TestModelRecordFailureIsNotFatal(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	m := newTestModel(t, rec)
	m = playOneMove(t, m)

	m = update(t, m, runeKey('n'))
	if m.sess.State().Moves != 0 {
		t.Error("new game should start even when recording fails")
	}
}

func TestModelSwipe(t *testing.T) {
	m := newTestModel(t, nil)

	m = update(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.dragging {
		t.Fatal("press should start a drag")
	}
	m = update(t, m, tea.MouseMsg{X: 30, Y: 11, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.dragging {
		t.Error("release should end the drag")
	}

	if m.sess.State().Moves == 0 && !strings.Contains(m.status, "right") {
		t.Errorf("swipe right had no effect, status %q", m.status)
	}
}

func TestModelTinySwipeIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	before := m.sess.State()

	m = update(t, m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, tea.MouseMsg{X: 11, Y: 10, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	after := m.sess.State()
	if after.Grid != before.Grid || after.UndoDepth != before.UndoDepth {
		t.Error("a one-cell drag should not move")
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 100x39", m.screen.Width(), m.screen.Height())
	}
}

func TestModelTickFadesHighlights(t *testing.T) {
	m := newTestModel(t, nil)
	m = playOneMove(t, m)

	for range mergedTicks {
		m = update(t, m, TickMsg{})
	}
	if len(m.highlights) != 0 {
		t.Errorf("highlights left after fading: %v", m.highlights)
	}
}

func TestDrawFrame(t *testing.T) {
	g := grid.FromRows([][]int{
		{2, 4, 0, 0},
		{0, 2048, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 16},
	})
	scr := canvas.NewScreen(60, 20)

	drawFrame(scr, frame{
		state: session.State{Grid: g, Score: 1234, BestScore: 5678},
	})
	out := scr.String()

	for _, want := range []string{"TILE MERGE", "Score: 1234", "Best: 5678", "2048", "16"} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
}

func TestDrawFrameOverlays(t *testing.T) {
	scr := canvas.NewScreen(60, 20)

	drawFrame(scr, frame{state: session.State{GameOver: true}})
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	drawFrame(scr, frame{showWin: true, winTile: 2048})
	if !strings.Contains(scr.String(), "You win!") {
		t.Error("win banner missing")
	}
}

func TestDrawFrameTooSmall(t *testing.T) {
	scr := canvas.NewScreen(MinWidth-1, MinHeight)
	drawFrame(scr, frame{})

	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

func TestHighlightsRebuild(t *testing.T) {
	h := make(Highlights)
	h.Rebuild(session.Outcome{
		Changed:   true,
		Merges:    []grid.Merge{{At: grid.Point{Row: 0, Col: 0}, Value: 4}},
		Spawned:   true,
		SpawnedAt: grid.Point{Row: 3, Col: 3},
	})

	if h.Kind(grid.Point{Row: 0, Col: 0}) != HighlightMerged {
		t.Error("merge cell not highlighted")
	}
	if h.Kind(grid.Point{Row: 3, Col: 3}) != HighlightSpawned {
		t.Error("spawn cell not highlighted")
	}
	if h.Kind(grid.Point{Row: 1, Col: 1}) != HighlightNone {
		t.Error("untouched cell highlighted")
	}

	h.Rebuild(session.Outcome{})
	if len(h) != 0 {
		t.Error("no-op outcome should clear the table")
	}
}

func TestGameRows(t *testing.T) {
	rows := GameRows([]storage.GameRecord{
		{Score: 300, MaxTile: 64, Moves: 40, Won: false},
		{Score: 20000, MaxTile: 2048, Moves: 900, Won: true},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "300" || rows[0][4] != "" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][2] != "2048" || rows[1][4] != "yes" {
		t.Errorf("row 1 = %v", rows[1])
	}
}
