package session

// BestScoreStore loads and saves the best score under a single fixed key.
// LoadBest reports ok=false when nothing has been stored yet.
type BestScoreStore interface {
	LoadBest() (value int, ok bool, err error)
	SaveBest(value int) error
}

// loadBest reads the stored best score, treating absence or failure as 0.
func (s *Session) loadBest() {
	if s.store == nil {
		return
	}

	best, ok, err := s.store.LoadBest()
	if err != nil {
		s.logger.Warn("could not load best score", "error", err)
		return
	}
	if ok && best > 0 {
		s.best = best
	}
}

// updateBest raises the best score when the current score exceeds it and
// persists the new value. Persistence failures are logged, never returned.
func (s *Session) updateBest() {
	if s.score <= s.best {
		return
	}

	s.best = s.score
	if s.store == nil {
		return
	}

	if err := s.store.SaveBest(s.best); err != nil {
		s.logger.Warn("could not save best score", "best", s.best, "error", err)
	}
}
