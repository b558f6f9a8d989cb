package engine

import (
	"github.com/google/uuid"

	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

// Store owns one batch's schedule state: the live grid, its history, the
// clipboard and the dirty flag. Every mutation flows through it, so an
// operation either fully applies (snapshot pushed, grid updated, dirty set)
// or is rejected with a conflict and changes nothing.
type Store struct {
	batch     timetable.Batch
	grid      *Grid
	history   *History
	clipboard *Clipboard
	dirty     bool
	newID     func() string
}

// NewStore creates an empty store for the given batch. An invalid batch falls
// back to the default.
func NewStore(batch timetable.Batch) *Store {
	if !timetable.ValidBatch(batch) {
		batch = timetable.DefaultBatch
	}
	return &Store{
		batch:     batch,
		grid:      NewGrid(),
		history:   NewHistory(),
		clipboard: NewClipboard(),
		newID:     uuid.NewString,
	}
}

// Batch returns the batch this store holds state for.
func (s *Store) Batch() timetable.Batch {
	return s.batch
}

// Grid returns the live grid. Callers must treat it as read-only; all writes
// go through the store.
func (s *Store) Grid() *Grid {
	return s.grid
}

// BlockAt returns the block starting at the given position, or nil.
func (s *Store) BlockAt(day timetable.Day, slot int) *timetable.ClassBlock {
	return s.grid.BlockAt(day, slot)
}

// IsContinuation reports whether the cell is the tail of a 2-slot block.
func (s *Store) IsContinuation(day timetable.Day, slot int) bool {
	return s.grid.IsContinuation(day, slot)
}

// Find returns the block with the given id, or nil.
func (s *Store) Find(id string) *timetable.ClassBlock {
	return s.grid.Find(id)
}

// AllBlocks returns every scheduled block.
func (s *Store) AllBlocks() []*timetable.ClassBlock {
	return s.grid.AllBlocks()
}

// Place validates and schedules a new block at the given position. On success
// it returns the created block; on rejection it returns the conflict and the
// grid is untouched.
func (s *Store) Place(content timetable.BlockContent, day timetable.Day, slot int) (*timetable.ClassBlock, *timetable.Conflict) {
	content = content.Normalize()
	if c := positionConflict(day, slot); c != nil {
		return nil, c
	}
	if err := content.Validate(); err != nil {
		return nil, &timetable.Conflict{Kind: timetable.ConflictLogic, Message: err.Error()}
	}

	block := &timetable.ClassBlock{
		ID:       s.newID(),
		Subject:  content.Subject,
		Type:     content.Type,
		Room:     content.Room,
		Faculty:  content.Faculty,
		Duration: content.Duration,
		Day:      day,
		Slot:     slot,
	}
	if c := CheckPlacement(s.grid, block, ""); c != nil {
		return nil, c
	}

	s.history.Push("Added "+block.BareSubject(), s.grid)
	s.grid.Put(block)
	s.dirty = true
	return block, nil
}

// Update replaces an existing block's content and placement in one step. The
// block keeps its id. The detector excludes the block itself, so edits that
// stay in place do not self-conflict.
func (s *Store) Update(id string, content timetable.BlockContent, day timetable.Day, slot int) (*timetable.ClassBlock, *timetable.Conflict) {
	old := s.grid.Find(id)
	if old == nil {
		return nil, &timetable.Conflict{Kind: timetable.ConflictLogic, Message: "Class block not found"}
	}
	content = content.Normalize()
	if c := positionConflict(day, slot); c != nil {
		return nil, c
	}
	if err := content.Validate(); err != nil {
		return nil, &timetable.Conflict{Kind: timetable.ConflictLogic, Message: err.Error()}
	}

	updated := &timetable.ClassBlock{
		ID:       old.ID,
		Subject:  content.Subject,
		Type:     content.Type,
		Room:     content.Room,
		Faculty:  content.Faculty,
		Duration: content.Duration,
		Day:      day,
		Slot:     slot,
	}
	if c := CheckPlacement(s.grid, updated, id); c != nil {
		return nil, c
	}

	s.history.Push("Updated "+updated.BareSubject(), s.grid)
	s.grid.Remove(old)
	s.grid.Put(updated)
	s.dirty = true
	return updated, nil
}

// Move relocates a block without changing its content. Moving a block onto
// its current position is a no-op, not a conflict.
func (s *Store) Move(id string, day timetable.Day, slot int) (*timetable.ClassBlock, *timetable.Conflict) {
	old := s.grid.Find(id)
	if old == nil {
		return nil, &timetable.Conflict{Kind: timetable.ConflictLogic, Message: "Class block not found"}
	}
	if old.Day == day && old.Slot == slot {
		return old, nil
	}
	return s.Update(id, old.Content(), day, slot)
}

// Remove deletes the block with the given id. Removing an unknown id is a
// silent no-op returning false.
func (s *Store) Remove(id string) bool {
	block := s.grid.Find(id)
	if block == nil {
		return false
	}
	s.history.Push("Removed "+block.BareSubject(), s.grid)
	s.grid.Remove(block)
	s.dirty = true
	return true
}

// CopyBlock stages the content of the block with the given id on the
// clipboard. Returns false when the id is unknown.
func (s *Store) CopyBlock(id string) bool {
	block := s.grid.Find(id)
	if block == nil {
		return false
	}
	s.clipboard.Copy(block.Content())
	return true
}

// Paste schedules the clipboard content at the given position as a new block.
// The clipboard keeps its content either way.
func (s *Store) Paste(day timetable.Day, slot int) (*timetable.ClassBlock, *timetable.Conflict) {
	content, ok := s.clipboard.Content()
	if !ok {
		return nil, &timetable.Conflict{Kind: timetable.ConflictLogic, Message: "Clipboard is empty"}
	}
	return s.Place(content, day, slot)
}

// CanPaste reports whether the clipboard holds content.
func (s *Store) CanPaste() bool {
	return s.clipboard.HasContent()
}

// Undo restores the most recent snapshot. Returns false when there is
// nothing to undo.
func (s *Store) Undo() bool {
	restored, ok := s.history.Undo(s.grid)
	if !ok {
		return false
	}
	s.grid = restored
	s.dirty = true
	return true
}

// Redo re-applies the most recently undone change. Returns false when there
// is nothing to redo.
func (s *Store) Redo() bool {
	restored, ok := s.history.Redo(s.grid)
	if !ok {
		return false
	}
	s.grid = restored
	s.dirty = true
	return true
}

// CanUndo reports whether an undo is available.
func (s *Store) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether a redo is available.
func (s *Store) CanRedo() bool {
	return s.history.CanRedo()
}

// Dirty reports whether the grid diverges from the last loaded or saved
// state. Undo and redo count as divergence.
func (s *Store) Dirty() bool {
	return s.dirty
}

// MarkSaved clears the dirty flag after a successful export or save.
func (s *Store) MarkSaved() {
	s.dirty = false
}

// Load replaces the store's state wholesale with a freshly decoded grid.
// History and the dirty flag reset; the clipboard survives, its content is
// placement-free.
func (s *Store) Load(batch timetable.Batch, grid *Grid) {
	if !timetable.ValidBatch(batch) {
		batch = timetable.DefaultBatch
	}
	if grid == nil {
		grid = NewGrid()
	}
	s.batch = batch
	s.grid = grid
	s.history.Reset()
	s.dirty = false
}

// positionConflict rejects an out-of-range target position.
func positionConflict(day timetable.Day, slot int) *timetable.Conflict {
	if !timetable.ValidDay(day) {
		return &timetable.Conflict{Kind: timetable.ConflictLogic, Message: timetable.ErrInvalidDay.Error()}
	}
	if !timetable.ValidSlot(slot) {
		return &timetable.Conflict{Kind: timetable.ConflictLogic, Message: timetable.ErrInvalidSlot.Error()}
	}
	return nil
}
