package engine

import "time"

// maxHistory bounds the undo log; the oldest snapshot is evicted first.
const maxHistory = 50

// Snapshot is an immutable deep copy of a past grid state, labeled with the
// action that followed it.
type Snapshot struct {
	Grid    *Grid
	Label   string
	TakenAt time.Time
}

// History is the bounded undo/redo log. Each entry is the grid state captured
// just before an accepted mutation. The cursor indexes the snapshot the next
// undo restores; -1 means nothing to undo.
//
// Undo and redo swap the snapshot at the cursor with the live state, so the
// first undo after an operation restores the pre-operation grid and a redo
// restores exactly what was undone.
type History struct {
	entries []Snapshot
	cursor  int
	now     func() time.Time
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{cursor: -1, now: time.Now}
}

// Push records the pre-mutation grid state. Any redo entries beyond the
// cursor are discarded, and the oldest entry is evicted past capacity.
func (h *History) Push(label string, grid *Grid) {
	h.entries = append(h.entries[:h.cursor+1], Snapshot{
		Grid:    grid.Clone(),
		Label:   label,
		TakenAt: h.now(),
	})
	if len(h.entries) > maxHistory {
		h.entries = h.entries[1:]
	}
	h.cursor = len(h.entries) - 1
}

// Undo exchanges the live grid for the snapshot at the cursor. Returns the
// restored grid and true, or nil and false when there is nothing to undo.
func (h *History) Undo(live *Grid) (*Grid, bool) {
	if !h.CanUndo() {
		return nil, false
	}
	restored := h.entries[h.cursor].Grid
	h.entries[h.cursor].Grid = live.Clone()
	h.cursor--
	return restored, true
}

// Redo exchanges the live grid for the snapshot undone last. Returns the
// restored grid and true, or nil and false when there is nothing to redo.
func (h *History) Redo(live *Grid) (*Grid, bool) {
	if !h.CanRedo() {
		return nil, false
	}
	h.cursor++
	restored := h.entries[h.cursor].Grid
	h.entries[h.cursor].Grid = live.Clone()
	return restored, true
}

// CanUndo reports whether an undo is available.
func (h *History) CanUndo() bool {
	return h.cursor >= 0
}

// CanRedo reports whether a redo is available.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.entries)-1
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Reset discards all snapshots. Used when the grid is replaced wholesale on
// batch switch, load or import.
func (h *History) Reset() {
	h.entries = nil
	h.cursor = -1
}

// LastLabel returns the label of the snapshot at the cursor, or "" when none.
func (h *History) LastLabel() string {
	if h.cursor < 0 {
		return ""
	}
	return h.entries[h.cursor].Label
}
