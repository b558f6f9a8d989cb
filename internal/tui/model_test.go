package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AmanVerma1067/TTeditor/internal/api"
	"github.com/AmanVerma1067/TTeditor/internal/config"
	"github.com/AmanVerma1067/TTeditor/internal/engine"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.Default()
	store := engine.NewStore(timetable.BatchE16)
	client := api.New("http://127.0.0.1:1", 0)
	return New(store, client, cfg)
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNew_Defaults(t *testing.T) {
	m := newTestModel(t)

	if m.mode != ModeNormal {
		t.Errorf("mode = %v, want ModeNormal", m.mode)
	}
	if m.modalType != ModalNone {
		t.Errorf("modalType = %v, want ModalNone", m.modalType)
	}
	if m.cursor != (Position{Day: 0, Slot: 0}) {
		t.Errorf("cursor = %+v, want origin", m.cursor)
	}
	if !m.loading {
		t.Error("new model should start in loading state")
	}
	if m.store.Batch() != timetable.BatchE16 {
		t.Errorf("batch = %q, want E16", m.store.Batch())
	}
}

func TestCursorNavigation(t *testing.T) {
	m := newTestModel(t)

	model, _ := m.Update(keyRunes('j'))
	model, _ = model.Update(keyRunes('l'))
	got := model.(Model)

	if got.cursor.Day != 1 || got.cursor.Slot != 1 {
		t.Errorf("cursor = %+v, want {Day:1 Slot:1}", got.cursor)
	}

	// Clamp at the grid edges.
	model, _ = got.Update(keyRunes('k'))
	model, _ = model.(Model).Update(keyRunes('k'))
	model, _ = model.(Model).Update(keyRunes('h'))
	model, _ = model.(Model).Update(keyRunes('h'))
	got = model.(Model)

	if got.cursor.Day != 0 || got.cursor.Slot != 0 {
		t.Errorf("cursor = %+v, want clamped to origin", got.cursor)
	}
}

func TestCursorJumpKeys(t *testing.T) {
	m := newTestModel(t)

	model, _ := m.Update(keyRunes('G'))
	got := model.(Model)
	if got.cursor.Slot != timetable.SlotCount-1 {
		t.Errorf("G: cursor.Slot = %d, want %d", got.cursor.Slot, timetable.SlotCount-1)
	}

	model, _ = got.Update(keyRunes('g'))
	got = model.(Model)
	if got.cursor.Slot != 0 {
		t.Errorf("g: cursor.Slot = %d, want 0", got.cursor.Slot)
	}
}

func TestBlockAtCursor_FollowsContinuation(t *testing.T) {
	m := newTestModel(t)

	content := timetable.BlockContent{
		Subject:  "Physics Lab",
		Type:     timetable.TypeLab,
		Duration: 2,
	}
	block, conflict := m.store.Place(content, timetable.Monday, 2)
	if conflict != nil {
		t.Fatalf("Place returned conflict: %v", conflict)
	}

	m.cursor = Position{Day: 0, Slot: 3} // the lab's continuation cell
	got := m.blockAtCursor()
	if got == nil || got.ID != block.ID {
		t.Fatalf("blockAtCursor on continuation cell = %v, want block %s", got, block.ID)
	}
}

func TestQuitWarnsWhenDirty(t *testing.T) {
	m := newTestModel(t)
	_, conflict := m.store.Place(timetable.BlockContent{Subject: "Maths"}, timetable.Monday, 0)
	if conflict != nil {
		t.Fatalf("Place returned conflict: %v", conflict)
	}

	model, cmd := m.Update(keyRunes('q'))
	got := model.(Model)
	if got.statusMsg != quitWarning {
		t.Errorf("statusMsg = %q, want quit warning", got.statusMsg)
	}
	if cmd == nil {
		t.Error("expected a status-clear command, got nil")
	}

	// Second q while the warning is showing quits.
	_, cmd = got.Update(keyRunes('q'))
	if cmd == nil {
		t.Fatal("expected quit command, got nil")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("cmd() = %v, want tea.Quit", msg)
	}
}

func TestUndoRedoKeys(t *testing.T) {
	m := newTestModel(t)
	_, conflict := m.store.Place(timetable.BlockContent{Subject: "Maths"}, timetable.Monday, 0)
	if conflict != nil {
		t.Fatalf("Place returned conflict: %v", conflict)
	}

	model, _ := m.Update(keyRunes('u'))
	got := model.(Model)
	if got.store.BlockAt(timetable.Monday, 0) != nil {
		t.Error("undo should have removed the block")
	}

	model, _ = got.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	got = model.(Model)
	if got.store.BlockAt(timetable.Monday, 0) == nil {
		t.Error("redo should have restored the block")
	}
}

func TestCopyPasteKeys(t *testing.T) {
	m := newTestModel(t)
	_, conflict := m.store.Place(timetable.BlockContent{Subject: "Maths", Room: "C1"}, timetable.Monday, 0)
	if conflict != nil {
		t.Fatalf("Place returned conflict: %v", conflict)
	}

	model, _ := m.Update(keyRunes('c'))
	got := model.(Model)
	if !got.store.CanPaste() {
		t.Fatal("copy at cursor should fill the clipboard")
	}

	got.cursor = Position{Day: 2, Slot: 4}
	model, _ = got.Update(keyRunes('v'))
	got = model.(Model)

	pasted := got.store.BlockAt(timetable.Wednesday, 4)
	if pasted == nil {
		t.Fatal("paste should place a block at the cursor")
	}
	if pasted.Subject != "Maths" || pasted.Room != "C1" {
		t.Errorf("pasted block = %+v, want copied content", pasted)
	}
}

func TestBatchCycleKey(t *testing.T) {
	m := newTestModel(t)

	model, _ := m.Update(keyRunes('b'))
	got := model.(Model)
	if got.store.Batch() != timetable.BatchE17 {
		t.Errorf("batch after cycle = %q, want E17", got.store.Batch())
	}

	model, _ = got.Update(keyRunes('b'))
	got = model.(Model)
	if got.store.Batch() != timetable.BatchE15 {
		t.Errorf("batch after second cycle = %q, want E15 (wrap)", got.store.Batch())
	}
}
