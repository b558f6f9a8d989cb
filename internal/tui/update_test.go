package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AmanVerma1067/TTeditor/internal/codec"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
	"github.com/AmanVerma1067/TTeditor/internal/tui/commands"
)

func TestUpdate_TimetableLoaded(t *testing.T) {
	m := newTestModel(t)

	data := &codec.TimetableData{
		Batch: "E16",
		Monday: []codec.RawEntry{
			{Time: "9:00 - 9:50", Subject: "Maths", Room: "CR-1", Teacher: "ABC"},
		},
	}
	model, _ := m.Update(commands.TimetableLoadedMsg{Batches: []*codec.TimetableData{data}})
	got := model.(Model)

	if got.loading {
		t.Error("loading should clear after a remote load")
	}
	block := got.store.BlockAt(timetable.Monday, 1)
	if block == nil {
		t.Fatal("expected the fetched class at Monday 9:00")
	}
	if block.Subject != "Maths" {
		t.Errorf("Subject = %q, want %q", block.Subject, "Maths")
	}
	if got.store.Dirty() {
		t.Error("a freshly loaded grid must not be dirty")
	}
}

func TestUpdate_TimetableLoaded_KeepsGridWhenBatchMissing(t *testing.T) {
	m := newTestModel(t)
	_, conflict := m.store.Place(timetable.BlockContent{Subject: "Local"}, timetable.Monday, 0)
	if conflict != nil {
		t.Fatalf("Place returned conflict: %v", conflict)
	}

	other := &codec.TimetableData{Batch: "E15"}
	model, _ := m.Update(commands.TimetableLoadedMsg{Batches: []*codec.TimetableData{other}})
	got := model.(Model)

	if got.store.BlockAt(timetable.Monday, 0) == nil {
		t.Error("load without matching batch data should keep local edits")
	}
}

func TestUpdate_Health(t *testing.T) {
	m := newTestModel(t)

	model, _ := m.Update(commands.HealthMsg{Online: true})
	got := model.(Model)
	if !got.online {
		t.Error("online flag should follow the health probe")
	}

	model, _ = got.Update(commands.HealthMsg{Online: false})
	got = model.(Model)
	if got.online {
		t.Error("online flag should clear when the probe fails")
	}
}

func TestUpdate_ExportedClearsDirty(t *testing.T) {
	m := newTestModel(t)
	_, conflict := m.store.Place(timetable.BlockContent{Subject: "Maths"}, timetable.Monday, 0)
	if conflict != nil {
		t.Fatalf("Place returned conflict: %v", conflict)
	}
	if !m.store.Dirty() {
		t.Fatal("store should be dirty after placing")
	}

	model, _ := m.Update(commands.ExportedMsg{Path: "/tmp/tt.json"})
	got := model.(Model)
	if got.store.Dirty() {
		t.Error("export should mark the store saved")
	}
	if got.statusMsg == "" {
		t.Error("export should set a status message")
	}
}

func TestUpdate_ErrAndClearStatus(t *testing.T) {
	m := newTestModel(t)

	model, _ := m.Update(commands.ErrMsg{Err: errors.New("boom")})
	got := model.(Model)
	if got.statusMsg != "boom" || !got.statusIsErr {
		t.Errorf("status = %q (err=%t), want error status", got.statusMsg, got.statusIsErr)
	}

	model, _ = got.Update(commands.ClearStatusMsg{})
	got = model.(Model)
	if got.statusMsg != "" || got.statusIsErr {
		t.Error("clear message should reset the status line")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := newTestModel(t)

	model, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	got := model.(Model)
	if got.width != 140 || got.height != 40 {
		t.Errorf("size = %dx%d, want 140x40", got.width, got.height)
	}
	if got.colWidth < 10 || got.colWidth > 24 {
		t.Errorf("colWidth = %d, want within [10, 24]", got.colWidth)
	}
}
