package timetable

import (
	"errors"
	"testing"
)

func TestBlockContent_Normalize(t *testing.T) {
	c := BlockContent{Subject: "  Maths ", Room: " G4 ", Faculty: " abc "}
	n := c.Normalize()

	if n.Subject != "Maths" {
		t.Errorf("subject = %q, want trimmed", n.Subject)
	}
	if n.Faculty != "ABC" {
		t.Errorf("faculty = %q, want trimmed and uppercased", n.Faculty)
	}
	if n.Type != TypeLecture {
		t.Errorf("type = %q, want lecture default", n.Type)
	}
	if n.Duration != 1 {
		t.Errorf("duration = %d, want 1 default", n.Duration)
	}
}

func TestBlockContent_Validate(t *testing.T) {
	tests := []struct {
		name    string
		content BlockContent
		wantErr error
	}{
		{name: "valid", content: BlockContent{Subject: "Maths", Type: TypeLecture, Duration: 1}},
		{name: "valid lab", content: BlockContent{Subject: "Physics", Type: TypeLab, Duration: 2}},
		{name: "empty subject", content: BlockContent{Type: TypeLecture, Duration: 1}, wantErr: ErrEmptySubject},
		{name: "bad type", content: BlockContent{Subject: "X", Type: "Q", Duration: 1}, wantErr: ErrInvalidType},
		{name: "zero duration", content: BlockContent{Subject: "X", Type: TypeLecture}, wantErr: ErrInvalidDuration},
		{name: "triple duration", content: BlockContent{Subject: "X", Type: TypeLab, Duration: 3}, wantErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.content.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSplitTypePrefix(t *testing.T) {
	tests := []struct {
		in       string
		wantType ClassType
		wantBare string
	}{
		{"L-Maths", TypeLecture, "Maths"},
		{"P-Physics Lab", TypeLab, "Physics Lab"},
		{"T-Maths", TypeTutorial, "Maths"},
		{"Maths", TypeLecture, "Maths"},
		{"X-Weird", TypeLecture, "X-Weird"},
		{"L-", TypeLecture, ""},
		{"", TypeLecture, ""},
	}
	for _, tt := range tests {
		typ, bare := SplitTypePrefix(tt.in)
		if typ != tt.wantType || bare != tt.wantBare {
			t.Errorf("SplitTypePrefix(%q) = (%s, %q), want (%s, %q)",
				tt.in, typ, bare, tt.wantType, tt.wantBare)
		}
	}
}

func TestClassBlock_CanonicalSubject(t *testing.T) {
	b := &ClassBlock{Subject: "L-Maths", Type: TypeLab}
	if got := b.CanonicalSubject(); got != "P-Maths" {
		t.Errorf("CanonicalSubject() = %q, want the block type to win over the old prefix", got)
	}
}

func TestClassBlock_TimeRange(t *testing.T) {
	single := &ClassBlock{Slot: 0, Duration: 1}
	if got := single.TimeRange(); got != "8:00-8:50" {
		t.Errorf("single TimeRange() = %q, want 8:00-8:50", got)
	}
	lab := &ClassBlock{Slot: 2, Duration: 2}
	if got := lab.TimeRange(); got != "10:00-11:50" {
		t.Errorf("lab TimeRange() = %q, want 10:00-11:50", got)
	}
}

func TestClassBlock_Overlaps(t *testing.T) {
	lab := &ClassBlock{Day: Monday, Slot: 2, Duration: 2}
	tests := []struct {
		name  string
		other *ClassBlock
		want  bool
	}{
		{name: "same start", other: &ClassBlock{Day: Monday, Slot: 2, Duration: 1}, want: true},
		{name: "second slot", other: &ClassBlock{Day: Monday, Slot: 3, Duration: 1}, want: true},
		{name: "adjacent after", other: &ClassBlock{Day: Monday, Slot: 4, Duration: 1}, want: false},
		{name: "adjacent before", other: &ClassBlock{Day: Monday, Slot: 1, Duration: 1}, want: false},
		{name: "lab ending into", other: &ClassBlock{Day: Monday, Slot: 1, Duration: 2}, want: true},
		{name: "other day", other: &ClassBlock{Day: Tuesday, Slot: 2, Duration: 2}, want: false},
		{name: "nil", other: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lab.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}
