package ui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/AmanVerma1067/TTeditor/internal/codec"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

func TestUnmatchedEntries(t *testing.T) {
	data := &codec.TimetableData{
		Batch: timetable.BatchE16,
		Monday: []codec.RawEntry{
			{Time: "9:00", Subject: "Maths"},
			{Time: "6:30", Subject: "Yoga"}, // no slot starts at 6
		},
		Friday: []codec.RawEntry{
			{Time: "??", Subject: "Broken"},
		},
	}

	dropped := unmatchedEntries(data)
	if len(dropped) != 2 {
		t.Fatalf("unmatchedEntries returned %d entries, want 2: %v", len(dropped), dropped)
	}
	if !strings.Contains(dropped[0], "Yoga") {
		t.Errorf("dropped[0] = %q, want the 6:30 entry", dropped[0])
	}
	if !strings.Contains(dropped[1], "Broken") {
		t.Errorf("dropped[1] = %q, want the unparseable entry", dropped[1])
	}
}

func TestResolvePath(t *testing.T) {
	got, err := resolvePath("some/relative.json")
	if err != nil {
		t.Fatalf("resolvePath failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("resolvePath = %q, want absolute path", got)
	}

	if _, err := resolvePath("   "); err == nil {
		t.Error("resolvePath on blank input should fail")
	}
}
