// Package history keeps a bounded window of recent grid states for cycle detection.
package history

import "github.com/sheikhrachel/go-life/model"

// Bounded is a fixed-capacity FIFO of grid snapshots. Once full, each new
// record overwrites the oldest one, so exactly the most recent Cap() records
// can be queried.
type Bounded struct {
	entries []model.Snapshot
	next    int // slot the next record is written to
	size    int
}

// New returns an empty history holding at most capacity snapshots.
// A zero capacity records nothing. Negative capacity panics.
func New(capacity int) *Bounded {
	if capacity < 0 {
		panic("history.New: negative capacity")
	}
	return &Bounded{entries: make([]model.Snapshot, capacity)}
}

// Record stores a snapshot, evicting the oldest entry when full
func (h *Bounded) Record(s model.Snapshot) {
	if len(h.entries) == 0 {
		return
	}
	h.entries[h.next] = s
	h.next = (h.next + 1) % len(h.entries)
	if h.size < len(h.entries) {
		h.size++
	}
}

// Contains reports whether an equal snapshot is stored
func (h *Bounded) Contains(s model.Snapshot) bool {
	for i := range h.size {
		if h.entries[i].Equal(s) {
			return true
		}
	}
	return false
}

// Len returns the number of stored snapshots
func (h *Bounded) Len() int {
	return h.size
}

// Cap returns the capacity fixed at construction
func (h *Bounded) Cap() int {
	return len(h.entries)
}

// Entries returns the stored snapshots from oldest to newest
func (h *Bounded) Entries() []model.Snapshot {
	out := make([]model.Snapshot, 0, h.size)
	start := 0
	if h.size == len(h.entries) {
		start = h.next
	}
	for i := range h.size {
		out = append(out, h.entries[(start+i)%len(h.entries)])
	}
	return out
}
