package session

import "github.com/vovakirdan/tile-merge/internal/grid"

// snapshot is the (grid, score) pair taken before a move.
type snapshot struct {
	grid  grid.Grid
	score int
	moved bool // the move taken after this snapshot changed the grid
}

// history is a bounded LIFO of snapshots. A limit of 0 means unbounded.
type history struct {
	entries []snapshot
	limit   int
}

func (h *history) push(s snapshot) {
	if h.limit > 0 && len(h.entries) >= h.limit {
		// drop oldest
		copy(h.entries, h.entries[1:])
		h.entries = h.entries[:len(h.entries)-1]
	}
	h.entries = append(h.entries, s)
}

func (h *history) pop() (snapshot, bool) {
	if len(h.entries) == 0 {
		return snapshot{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

func (h *history) len() int {
	return len(h.entries)
}

func (h *history) clear() {
	h.entries = h.entries[:0]
}
