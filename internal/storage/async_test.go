package storage

import (
	"errors"
	"sync"
	"testing"
)

type recordingStore struct {
	mu    sync.Mutex
	saves []int
	err   error
}

func (r *recordingStore) LoadBest() (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.saves) == 0 {
		return 0, false, nil
	}
	return r.saves[len(r.saves)-1], true, nil
}

func (r *recordingStore) SaveBest(v int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves = append(r.saves, v)
	return r.err
}

func TestAsyncSaverFlushesOnClose(t *testing.T) {
	rec := &recordingStore{}
	a := NewAsyncSaver(rec, nil)

	for _, v := range []int{4, 8, 16} {
		if err := a.SaveBest(v); err != nil {
			t.Fatalf("SaveBest() returned %v", err)
		}
	}
	a.Close()

	best, ok, _ := rec.LoadBest()
	if !ok || best != 16 {
		t.Errorf("last saved value = %d, %v; want 16", best, ok)
	}
	for i := 1; i < len(rec.saves); i++ {
		if rec.saves[i] < rec.saves[i-1] {
			t.Errorf("saves went backwards: %v", rec.saves)
		}
	}
}

func TestAsyncSaverSwallowsErrors(t *testing.T) {
	rec := &recordingStore{err: errors.New("read-only filesystem")}
	a := NewAsyncSaver(rec, nil)

	if err := a.SaveBest(32); err != nil {
		t.Errorf("SaveBest() should not report persistence failures, got %v", err)
	}
	a.Close()

	if len(rec.saves) == 0 {
		t.Error("wrapped store was never called")
	}
}

func TestAsyncSaverAfterClose(t *testing.T) {
	rec := &recordingStore{}
	a := NewAsyncSaver(rec, nil)
	a.Close()
	a.Close() // second close is a no-op

	if err := a.SaveBest(64); err != nil {
		t.Errorf("SaveBest() after Close returned %v", err)
	}
	if len(rec.saves) != 0 {
		t.Errorf("value saved after Close: %v", rec.saves)
	}
}

func TestAsyncSaverWithSQLite(t *testing.T) {
	store := openTestStore(t)
	a := NewAsyncSaver(store, nil)

	a.SaveBest(128)
	a.SaveBest(256)
	a.Close()

	best, ok, err := store.LoadBest()
	if err != nil || !ok || best != 256 {
		t.Errorf("LoadBest() = %d, %v, %v; want 256, true, nil", best, ok, err)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	if _, ok, _ := m.LoadBest(); ok {
		t.Error("new memory store should be empty")
	}

	m.SaveBest(10)
	m.SaveBest(5)

	best, ok, _ := m.LoadBest()
	if !ok || best != 10 {
		t.Errorf("LoadBest() = %d, %v; want 10, true", best, ok)
	}
}
