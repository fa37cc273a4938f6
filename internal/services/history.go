package services

import (
	deep "github.com/brunoga/deep"

	"tripplanner/internal/domain/models"
)

// historyDepth bounds how many undo steps one session keeps.
const historyDepth = 10

// History is a bounded snapshot buffer: LIFO access for undo, FIFO eviction
// once full. Entries are deep copies, so later document mutation never leaks
// into a stored snapshot. There is no redo path.
type History struct {
	entries []models.TripDocument
}

func (h *History) Push(doc models.TripDocument) {
	h.entries = append(h.entries, deep.MustCopy(doc))
	if len(h.entries) > historyDepth {
		h.entries = h.entries[1:]
	}
}

// Pop removes and returns the most recent snapshot; false means nothing to undo.
func (h *History) Pop() (models.TripDocument, bool) {
	if len(h.entries) == 0 {
		return models.TripDocument{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

func (h *History) Len() int { return len(h.entries) }

// Clear drops all snapshots, used when a fresh document load replaces the session.
func (h *History) Clear() { h.entries = nil }
