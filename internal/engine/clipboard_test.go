package engine

import (
	"testing"

	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

func TestClipboard_CopyOverwrites(t *testing.T) {
	c := NewClipboard()
	if c.HasContent() {
		t.Error("fresh clipboard should be empty")
	}

	c.Copy(timetable.BlockContent{Subject: "Maths", Type: timetable.TypeLecture, Duration: 1})
	c.Copy(timetable.BlockContent{Subject: "Physics", Type: timetable.TypeLab, Duration: 2})

	got, ok := c.Content()
	if !ok {
		t.Fatal("clipboard should hold content after copy")
	}
	if got.Subject != "Physics" {
		t.Errorf("subject = %q, want the most recent copy", got.Subject)
	}
}

func TestClipboard_ContentIsACopy(t *testing.T) {
	c := NewClipboard()
	c.Copy(timetable.BlockContent{Subject: "Maths", Type: timetable.TypeLecture, Duration: 1})

	got, _ := c.Content()
	got.Subject = "Changed"

	again, _ := c.Content()
	if again.Subject != "Maths" {
		t.Error("mutating a returned content must not touch the clipboard")
	}
}

func TestClipboard_Clear(t *testing.T) {
	c := NewClipboard()
	c.Copy(timetable.BlockContent{Subject: "Maths"})
	c.Clear()

	if c.HasContent() {
		t.Error("clipboard should be empty after Clear")
	}
	if _, ok := c.Content(); ok {
		t.Error("Content should report false after Clear")
	}
}
