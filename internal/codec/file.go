package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

// ErrBadFormat marks a structurally invalid transfer file.
var ErrBadFormat = errors.New("invalid timetable file format")

// ParseFile validates and decodes a transfer file. It requires a "batch"
// string field and, for each day key present, an array value; anything else
// is rejected without touching existing state. Missing day keys read as
// empty days.
func ParseFile(raw []byte) (*TimetableData, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
	}

	batchRaw, ok := fields["batch"]
	if !ok {
		return nil, fmt.Errorf("%w: missing batch field", ErrBadFormat)
	}
	var batch timetable.Batch
	if err := json.Unmarshal(batchRaw, &batch); err != nil {
		return nil, fmt.Errorf("%w: batch must be a string", ErrBadFormat)
	}

	data := &TimetableData{Batch: batch}
	for _, day := range timetable.Days {
		dayRaw, ok := fields[string(day)]
		if !ok {
			continue
		}
		var entries []RawEntry
		if err := json.Unmarshal(dayRaw, &entries); err != nil {
			return nil, fmt.Errorf("%w: %s must be a list of entries", ErrBadFormat, day)
		}
		data.setDayEntries(day, entries)
	}
	return data, nil
}

// MarshalFile renders external data as a pretty-printed transfer file. All
// six day keys are always present, as lists.
func MarshalFile(data *TimetableData) ([]byte, error) {
	// Nil day lists would render as null instead of []. Normalize a copy so
	// the caller's value is left untouched.
	norm := *data
	for _, day := range timetable.Days {
		if norm.DayEntries(day) == nil {
			norm.setDayEntries(day, []RawEntry{})
		}
	}
	out, err := json.MarshalIndent(&norm, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding timetable: %w", err)
	}
	return out, nil
}
