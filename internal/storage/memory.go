package storage

import "sync"

// Memory is an in-memory best-score store. State is lost when the process
// exits; used when the database cannot be opened.
type Memory struct {
	mu    sync.RWMutex
	best  int
	saved bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadBest returns the stored best score, if any.
func (m *Memory) LoadBest() (int, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.best, m.saved, nil
}

// SaveBest stores value unless a higher one is already stored.
func (m *Memory) SaveBest(value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved || value > m.best {
		m.best = value
		m.saved = true
	}
	return nil
}
