package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-merge/internal/session"
)

// AsyncSaver makes best-score saves fire-and-forget. SaveBest returns
// immediately; a single worker writes the most recent value to the wrapped
// store and logs failures. Pending values are coalesced: only the latest
// one is written.
type AsyncSaver struct {
	store  session.BestScoreStore
	logger *log.Logger

	mu      sync.Mutex
	pending int
	dirty   bool
	closed  bool

	wake chan struct{}
	done chan struct{}
}

// NewAsyncSaver starts the worker goroutine. Call Close to flush and stop it.
func NewAsyncSaver(store session.BestScoreStore, logger *log.Logger) *AsyncSaver {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &AsyncSaver{
		store:  store,
		logger: logger,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go a.run()
	return a
}

// LoadBest reads through to the wrapped store synchronously.
func (a *AsyncSaver) LoadBest() (int, bool, error) {
	return a.store.LoadBest()
}

// SaveBest queues value for writing and never fails.
// Values queued after Close are dropped.
func (a *AsyncSaver) SaveBest(value int) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	if !a.dirty || value > a.pending {
		a.pending = value
	}
	a.dirty = true

	// signal under the lock so Close can't close wake in between
	select {
	case a.wake <- struct{}{}:
	default: // worker already signalled
	}
	a.mu.Unlock()
	return nil
}

// Close writes any pending value and stops the worker.
func (a *AsyncSaver) Close() {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return
	}
	a.closed = true
	close(a.wake)
	a.mu.Unlock()

	<-a.done
}

func (a *AsyncSaver) run() {
	defer close(a.done)

	for range a.wake {
		a.flush()
	}
	a.flush()
}

// flush writes the pending value, if any.
func (a *AsyncSaver) flush() {
	a.mu.Lock()
	if !a.dirty {
		a.mu.Unlock()
		return
	}
	value := a.pending
	a.dirty = false
	a.mu.Unlock()

	if err := a.store.SaveBest(value); err != nil {
		a.logger.Warn("could not save best score", "best", value, "error", err)
	}
}

// Ensure the stores implement session.BestScoreStore
var (
	_ session.BestScoreStore = (*Store)(nil)
	_ session.BestScoreStore = (*Memory)(nil)
	_ session.BestScoreStore = (*AsyncSaver)(nil)
)
