package codec

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

func TestParseFile_Valid(t *testing.T) {
	raw := []byte(`{
		"batch": "E16",
		"Monday": [{"time": "8:00-8:50", "subject": "L-CNS", "room": "201", "teacher": "ABK"}],
		"Tuesday": []
	}`)

	data, err := ParseFile(raw)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if data.Batch != timetable.BatchE16 {
		t.Errorf("batch = %s, want E16", data.Batch)
	}
	if len(data.Monday) != 1 || data.Monday[0].Subject != "L-CNS" {
		t.Errorf("Monday = %v, want the single CNS entry", data.Monday)
	}
	if data.Wednesday != nil {
		t.Error("missing day keys should read as empty, not invented")
	}
}

func TestParseFile_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `batch: E16`},
		{name: "missing batch", raw: `{"Monday": []}`},
		{name: "batch not a string", raw: `{"batch": 16}`},
		{name: "day not a list", raw: `{"batch": "E16", "Monday": {"time": "8:00"}}`},
		{name: "entry not an object", raw: `{"batch": "E16", "Monday": ["8:00"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile([]byte(tt.raw))
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("ParseFile() error = %v, want ErrBadFormat", err)
			}
		})
	}
}

func TestMarshalFile_AlwaysEmitsAllDays(t *testing.T) {
	data := &TimetableData{Batch: timetable.BatchE15}

	out, err := MarshalFile(data)
	if err != nil {
		t.Fatalf("MarshalFile() error = %v", err)
	}
	for _, day := range timetable.Days {
		if !strings.Contains(string(out), `"`+string(day)+`": []`) {
			t.Errorf("output missing empty list for %s:\n%s", day, out)
		}
	}

	// Pretty-printed and parseable back.
	if !strings.Contains(string(out), "\n  ") {
		t.Error("output should be indented")
	}
	var round map[string]json.RawMessage
	if err := json.Unmarshal(out, &round); err != nil {
		t.Errorf("output is not valid JSON: %v", err)
	}
}

func TestMarshalFile_DoesNotMutateInput(t *testing.T) {
	data := &TimetableData{Batch: timetable.BatchE15}

	if _, err := MarshalFile(data); err != nil {
		t.Fatalf("MarshalFile() error = %v", err)
	}
	for _, day := range timetable.Days {
		if data.DayEntries(day) != nil {
			t.Errorf("%s list was filled in on the caller's value", day)
		}
	}
}

func TestFileRoundTrip(t *testing.T) {
	data := &TimetableData{
		Batch:    timetable.BatchE17,
		Thursday: []RawEntry{{Time: "2:00-2:50", Subject: "T-Maths", Room: "305", Teacher: "SRD"}},
	}

	out, err := MarshalFile(data)
	if err != nil {
		t.Fatalf("MarshalFile() error = %v", err)
	}
	parsed, err := ParseFile(out)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if parsed.Batch != data.Batch {
		t.Errorf("batch = %s, want %s", parsed.Batch, data.Batch)
	}
	if len(parsed.Thursday) != 1 || parsed.Thursday[0] != data.Thursday[0] {
		t.Errorf("Thursday = %v, want %v", parsed.Thursday, data.Thursday)
	}
}
