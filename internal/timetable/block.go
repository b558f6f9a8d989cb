package timetable

import (
	"errors"
	"strings"
)

// Validation errors.
var (
	ErrEmptySubject    = errors.New("subject cannot be empty")
	ErrInvalidType     = errors.New("type must be lecture, lab or tutorial")
	ErrInvalidDuration = errors.New("duration must be 1 or 2 slots")
	ErrInvalidSlot     = errors.New("slot index out of range")
	ErrInvalidDay      = errors.New("unknown day")
)

// ClassType represents the kind of class session.
type ClassType string

const (
	TypeLecture  ClassType = "L"
	TypeLab      ClassType = "P"
	TypeTutorial ClassType = "T"
)

// Valid returns true if the class type is a known value.
func (t ClassType) Valid() bool {
	switch t {
	case TypeLecture, TypeLab, TypeTutorial:
		return true
	default:
		return false
	}
}

// Label returns the human-readable name of the class type.
func (t ClassType) Label() string {
	switch t {
	case TypeLab:
		return "Lab/Practical"
	case TypeTutorial:
		return "Tutorial"
	default:
		return "Lecture"
	}
}

// BlockContent holds the attributes of a class session without identity or
// placement. It is what the clipboard stages and what the edit form edits.
type BlockContent struct {
	Subject  string
	Type     ClassType
	Room     string
	Faculty  string
	Duration int // slots, 1 or 2
}

// Normalize canonicalizes free-text fields: faculty is uppercased, subject is
// trimmed, a missing type defaults to lecture, a missing duration to 1.
func (c BlockContent) Normalize() BlockContent {
	c.Subject = strings.TrimSpace(c.Subject)
	c.Room = strings.TrimSpace(c.Room)
	c.Faculty = strings.ToUpper(strings.TrimSpace(c.Faculty))
	if !c.Type.Valid() {
		c.Type = TypeLecture
	}
	if c.Duration == 0 {
		c.Duration = 1
	}
	return c
}

// Validate checks the content fields.
func (c BlockContent) Validate() error {
	if c.Subject == "" {
		return ErrEmptySubject
	}
	if !c.Type.Valid() {
		return ErrInvalidType
	}
	if c.Duration != 1 && c.Duration != 2 {
		return ErrInvalidDuration
	}
	return nil
}

// ClassBlock is a single scheduled class session placed on the grid.
type ClassBlock struct {
	ID       string // opaque, stable for the block's lifetime
	Subject  string // free text, may carry an "L-"/"P-"/"T-" prefix
	Type     ClassType
	Room     string
	Faculty  string // normalized to uppercase
	Duration int    // slots, 1 or 2
	Day      Day
	Slot     int // starting slot index
}

// Content returns the block's attributes without identity or placement.
func (b *ClassBlock) Content() BlockContent {
	return BlockContent{
		Subject:  b.Subject,
		Type:     b.Type,
		Room:     b.Room,
		Faculty:  b.Faculty,
		Duration: b.Duration,
	}
}

// OccupiedSlots returns the slot indices the block covers: its starting slot,
// plus the following slot for a 2-slot session.
func (b *ClassBlock) OccupiedSlots() []int {
	if b.Duration == 2 {
		return []int{b.Slot, b.Slot + 1}
	}
	return []int{b.Slot}
}

// Overlaps returns true if this block and other share a day and at least one
// occupied slot.
func (b *ClassBlock) Overlaps(other *ClassBlock) bool {
	if other == nil || b.Day != other.Day {
		return false
	}
	for _, s := range b.OccupiedSlots() {
		for _, o := range other.OccupiedSlots() {
			if s == o {
				return true
			}
		}
	}
	return false
}

// BareSubject returns the subject with any leading type prefix removed.
func (b *ClassBlock) BareSubject() string {
	return StripTypePrefix(b.Subject)
}

// CanonicalSubject returns the subject re-prefixed with the block's type,
// the form used by the external schedule format.
func (b *ClassBlock) CanonicalSubject() string {
	return string(b.Type) + "-" + StripTypePrefix(b.Subject)
}

// TimeRange returns the external "start-end" label for the block, spanning
// its full duration.
func (b *ClassBlock) TimeRange() string {
	start := TimeSlots[b.Slot]
	end := TimeSlots[b.Slot+b.Duration-1]
	return start.Start + "-" + end.End
}

// SplitTypePrefix inspects a subject for a leading "L-", "P-" or "T-" prefix.
// It returns the indicated type and the bare subject; subjects without a
// recognized prefix default to lecture.
func SplitTypePrefix(subject string) (ClassType, string) {
	if len(subject) >= 2 && subject[1] == '-' {
		switch t := ClassType(subject[:1]); t {
		case TypeLecture, TypeLab, TypeTutorial:
			return t, subject[2:]
		}
	}
	return TypeLecture, subject
}

// StripTypePrefix removes a leading "L-", "P-" or "T-" prefix if present.
func StripTypePrefix(subject string) string {
	_, bare := SplitTypePrefix(subject)
	return bare
}
