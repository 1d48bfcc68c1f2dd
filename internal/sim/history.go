package sim

import (
	"iter"

	"lifetrail/internal/core"
)

// DefaultHistory is the number of generations kept for the fading trail.
const DefaultHistory = 10

// History is a fixed-capacity ring of generations, oldest evicted first.
// Stored grids are treated as immutable snapshots.
type History struct {
	buf   []*core.Grid
	start int
	n     int
}

// NewHistory creates an empty history holding at most capacity grids.
// Non-positive capacities fall back to DefaultHistory.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistory
	}
	return &History{buf: make([]*core.Grid, capacity)}
}

// Len returns the number of stored generations.
func (h *History) Len() int { return h.n }

// Cap returns the maximum number of stored generations.
func (h *History) Cap() int { return len(h.buf) }

// Push appends g as the newest generation, evicting the oldest when full.
func (h *History) Push(g *core.Grid) {
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = g
		h.n++
		return
	}
	h.buf[h.start] = g
	h.start = (h.start + 1) % len(h.buf)
}

// At returns the i-th stored generation, 0 being the oldest.
func (h *History) At(i int) *core.Grid {
	if i < 0 || i >= h.n {
		return nil
	}
	return h.buf[(h.start+i)%len(h.buf)]
}

// Newest returns the most recent generation, or nil when empty.
func (h *History) Newest() *core.Grid {
	return h.At(h.n - 1)
}

// ReplaceNewest swaps the newest entry for g, or pushes g when empty.
func (h *History) ReplaceNewest(g *core.Grid) {
	if h.n == 0 {
		h.Push(g)
		return
	}
	h.buf[(h.start+h.n-1)%len(h.buf)] = g
}

// Clear drops every stored generation.
func (h *History) Clear() {
	for i := range h.buf {
		h.buf[i] = nil
	}
	h.start, h.n = 0, 0
}

// All iterates from oldest to newest.
func (h *History) All() iter.Seq2[int, *core.Grid] {
	return func(yield func(int, *core.Grid) bool) {
		for i := 0; i < h.n; i++ {
			if !yield(i, h.At(i)) {
				return
			}
		}
	}
}
