// Package tui provides a Bubble Tea terminal UI for the haunted-house
// engine.
package tui

// notNavigating marks a history cursor parked at the input line.
const notNavigating = -1

// History keeps recent commands for up/down recall. Old entries fall off
// the front once the buffer is full.
type History struct {
	entries []string
	max     int
	cursor  int // notNavigating, or an index into entries
}

// NewHistory creates a history buffer holding at most max commands.
func NewHistory(max int) *History {
	return &History{
		entries: make([]string, 0, max),
		max:     max,
		cursor:  notNavigating,
	}
}

// Push records a command. A repeat of the newest entry is dropped so
// hammering the same verb doesn't fill the buffer.
func (h *History) Push(cmd string) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == cmd {
		return
	}
	h.entries = append(h.entries, cmd)
	if len(h.entries) > h.max {
		h.entries = h.entries[1:]
	}
}

// Prev steps toward older entries, stopping at the oldest.
// Returns ("", false) if history is empty.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == notNavigating:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps toward newer entries. Stepping past the newest parks the
// cursor and returns ("", false) so the input line comes back empty.
func (h *History) Next() (string, bool) {
	if h.cursor == notNavigating {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = notNavigating
		return "", false
	}
	return h.entries[h.cursor], true
}

// ResetCursor parks the cursor back at the input line.
func (h *History) ResetCursor() {
	h.cursor = notNavigating
}
