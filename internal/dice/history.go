package dice

import (
	"strings"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// DefaultHistoryCapacity is the number of roll sets a roller remembers
const DefaultHistoryCapacity = 5

// History is a fixed-capacity, newest-first ledger of roll sets. It is not
// safe for concurrent use; each Roller owns exactly one.
type History struct {
	capacity int
	entries  []*DieRollSet
}

// NewHistory creates an empty history holding at most capacity sets
func NewHistory(capacity int) (*History, error) {
	if capacity < 1 {
		return nil, errors.InvalidArgumentf("history capacity must be at least 1, got %d", capacity)
	}

	return &History{
		capacity: capacity,
		entries:  make([]*DieRollSet, 0, capacity),
	}, nil
}

// Insert puts a copy of set at the head, evicting the oldest set when full
func (h *History) Insert(set *DieRollSet) {
	if set == nil {
		return
	}

	if len(h.entries) == h.capacity {
		h.entries = h.entries[:h.capacity-1]
	}
	h.entries = append(h.entries, nil)
	copy(h.entries[1:], h.entries)
	h.entries[0] = set.clone()
}

// Snapshot returns copies of the recorded sets, newest first
func (h *History) Snapshot() []*DieRollSet {
	snapshot := make([]*DieRollSet, len(h.entries))
	for i, set := range h.entries {
		snapshot[i] = set.clone()
	}
	return snapshot
}

// Len returns the number of recorded sets
func (h *History) Len() int {
	return len(h.entries)
}

// Capacity returns the maximum number of sets kept
func (h *History) Capacity() int {
	return h.capacity
}

// String renders every recorded set, newest first
func (h *History) String() string {
	return RenderHistory(h.entries)
}

// RenderHistory renders sets one after another, separated by blank lines
func RenderHistory(sets []*DieRollSet) string {
	rendered := make([]string, len(sets))
	for i, set := range sets {
		rendered[i] = set.String()
	}
	return strings.Join(rendered, "\n\n")
}
