package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreBestAbsent(t *testing.T) {
	store := openTestStore(t)

	best, ok, err := store.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if ok || best != 0 {
		t.Errorf("LoadBest() = %d, %v; want 0, false", best, ok)
	}
}

func TestStoreBestSaveAndLoad(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveBest(120); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}
	if err := store.SaveBest(340); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	best, ok, err := store.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if !ok || best != 340 {
		t.Errorf("LoadBest() = %d, %v; want 340, true", best, ok)
	}
}

func TestStoreBestNeverDecreases(t *testing.T) {
	store := openTestStore(t)

	store.SaveBest(500)
	store.SaveBest(200)

	best, _, err := store.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 500 {
		t.Errorf("LoadBest() = %d, want 500", best)
	}
}

func TestStoreBestPersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveBest(2048)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	best, ok, _ := store.LoadBest()
	if !ok || best != 2048 {
		t.Errorf("LoadBest() after reopen = %d, %v; want 2048, true", best, ok)
	}
}

func TestStoreResetBest(t *testing.T) {
	store := openTestStore(t)

	store.SaveBest(64)
	if err := store.ResetBest(); err != nil {
		t.Fatalf("ResetBest() failed: %v", err)
	}

	_, ok, _ := store.LoadBest()
	if ok {
		t.Error("best score should be absent after reset")
	}
}

func TestStoreSaveAndTopGames(t *testing.T) {
	store := openTestStore(t)

	games := []GameRecord{
		{SessionID: "a", Score: 100, MaxTile: 16, Moves: 20},
		{SessionID: "b", Score: 50, MaxTile: 8, Moves: 10},
		{SessionID: "c", Score: 20000, MaxTile: 2048, Moves: 900, Won: true},
	}
	for _, g := range games {
		if _, err := store.SaveGame(g); err != nil {
			t.Fatalf("SaveGame() failed: %v", err)
		}
	}

	top, err := store.TopGames(10)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}

	if len(top) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(top))
	}

	// Should be sorted descending
	if top[0].Score != 20000 || top[1].Score != 100 || top[2].Score != 50 {
		t.Errorf("Games not in expected order: %v", top)
	}
	if !top[0].Won || top[0].MaxTile != 2048 || top[0].SessionID != "c" {
		t.Errorf("top game fields = %+v", top[0])
	}
	if top[1].Won {
		t.Error("second game should not be marked won")
	}
}

func TestStoreTopGamesLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveGame(GameRecord{SessionID: "s", Score: (i + 1) * 100})
	}

	top, err := store.TopGames(3)
	if err != nil {
		t.Fatalf("TopGames() failed: %v", err)
	}

	if len(top) != 3 {
		t.Errorf("Expected 3 games with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("Games not in expected order: %v", top)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if empty.GamesCount != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveGame(GameRecord{SessionID: "a", Score: 100})
	store.SaveGame(GameRecord{SessionID: "a", Score: 300, Won: true})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, want 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, want 200", stats.AvgScore)
	}
	if stats.Wins != 1 {
		t.Errorf("Wins = %d, want 1", stats.Wins)
	}
}
