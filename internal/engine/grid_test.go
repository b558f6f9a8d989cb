package engine

import (
	"testing"

	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

func testBlock(id, subject string, typ timetable.ClassType, room, faculty string, duration int, day timetable.Day, slot int) *timetable.ClassBlock {
	return &timetable.ClassBlock{
		ID:       id,
		Subject:  subject,
		Type:     typ,
		Room:     room,
		Faculty:  faculty,
		Duration: duration,
		Day:      day,
		Slot:     slot,
	}
}

func TestGrid_PutAndLookup(t *testing.T) {
	g := NewGrid()
	b := testBlock("b1", "Maths", timetable.TypeLecture, "G4", "ABC", 1, timetable.Monday, 2)
	g.Put(b)

	if got := g.BlockAt(timetable.Monday, 2); got != b {
		t.Errorf("BlockAt(Monday, 2) = %v, want the placed block", got)
	}
	if got := g.BlockAt(timetable.Monday, 3); got != nil {
		t.Errorf("BlockAt(Monday, 3) = %v, want nil", got)
	}
	if got := g.BlockAt(timetable.Tuesday, 2); got != nil {
		t.Errorf("BlockAt(Tuesday, 2) = %v, want nil", got)
	}
}

func TestGrid_LabMarksContinuation(t *testing.T) {
	g := NewGrid()
	lab := testBlock("b1", "P-Physics", timetable.TypeLab, "LAB1", "XYZ", 2, timetable.Wednesday, 3)
	g.Put(lab)

	if !g.IsContinuation(timetable.Wednesday, 4) {
		t.Error("slot after a 2-slot lab should be marked as continuation")
	}
	if g.BlockAt(timetable.Wednesday, 4) != nil {
		t.Error("continuation cell should not hold a starting block")
	}
	if g.IsContinuation(timetable.Wednesday, 3) {
		t.Error("the lab's own starting cell should not be a continuation")
	}
}

func TestGrid_RemoveClearsContinuation(t *testing.T) {
	g := NewGrid()
	lab := testBlock("b1", "P-Physics", timetable.TypeLab, "LAB1", "XYZ", 2, timetable.Friday, 5)
	g.Put(lab)
	g.Remove(lab)

	if g.BlockAt(timetable.Friday, 5) != nil {
		t.Error("starting cell should be empty after removal")
	}
	if g.IsContinuation(timetable.Friday, 6) {
		t.Error("continuation cell should be cleared together with the block")
	}
}

func TestGrid_Find(t *testing.T) {
	g := NewGrid()
	g.Put(testBlock("a", "Maths", timetable.TypeLecture, "G4", "ABC", 1, timetable.Monday, 0))
	g.Put(testBlock("b", "Physics", timetable.TypeLecture, "G5", "DEF", 1, timetable.Saturday, 7))

	if got := g.Find("b"); got == nil || got.Subject != "Physics" {
		t.Errorf("Find(b) = %v, want the Physics block", got)
	}
	if got := g.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}
}

func TestGrid_AllBlocksOrder(t *testing.T) {
	g := NewGrid()
	g.Put(testBlock("late", "Chem", timetable.TypeLecture, "G1", "A", 1, timetable.Monday, 5))
	g.Put(testBlock("early", "Bio", timetable.TypeLecture, "G2", "B", 1, timetable.Saturday, 0))
	g.Put(testBlock("mid", "Eng", timetable.TypeLecture, "G3", "C", 1, timetable.Tuesday, 0))

	blocks := g.AllBlocks()
	if len(blocks) != 3 {
		t.Fatalf("AllBlocks() returned %d blocks, want 3", len(blocks))
	}
	// Slot-major order: slot 0 Tuesday, slot 0 Saturday, slot 5 Monday.
	want := []string{"mid", "early", "late"}
	for i, id := range want {
		if blocks[i].ID != id {
			t.Errorf("blocks[%d].ID = %s, want %s", i, blocks[i].ID, id)
		}
	}
}

func TestGrid_CloneIsDeep(t *testing.T) {
	g := NewGrid()
	b := testBlock("b1", "Maths", timetable.TypeLecture, "G4", "ABC", 1, timetable.Monday, 2)
	g.Put(b)

	clone := g.Clone()
	b.Subject = "Changed"
	g.Remove(b)

	got := clone.BlockAt(timetable.Monday, 2)
	if got == nil {
		t.Fatal("clone lost its block after the original was mutated")
	}
	if got.Subject != "Maths" {
		t.Errorf("clone block subject = %q, want %q", got.Subject, "Maths")
	}
}

func TestGrid_OutOfRangeIsSafe(t *testing.T) {
	g := NewGrid()
	if g.BlockAt("Sunday", 0) != nil {
		t.Error("unknown day should return nil")
	}
	if g.BlockAt(timetable.Monday, -1) != nil {
		t.Error("negative slot should return nil")
	}
	if g.BlockAt(timetable.Monday, timetable.SlotCount) != nil {
		t.Error("slot past the end should return nil")
	}
	if g.IsContinuation(timetable.Monday, 99) {
		t.Error("out-of-range slot should not be a continuation")
	}
}
