// Package codec converts between the grid's internal state and the external
// per-day time-range list format used by the remote schedule source and by
// file import/export.
package codec

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/AmanVerma1067/TTeditor/internal/engine"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

// RawEntry is one class session in the external format. The time field is
// "H:MM" or "H:MM-H:MM" in 12-hour institutional notation.
type RawEntry struct {
	Time    string `json:"time"`
	Subject string `json:"subject"`
	Room    string `json:"room"`
	Teacher string `json:"teacher"`
}

// TimetableData is one batch's full week in the external format.
type TimetableData struct {
	Batch     timetable.Batch              `json:"batch"`
	Monday    []RawEntry                   `json:"Monday"`
	Tuesday   []RawEntry                   `json:"Tuesday"`
	Wednesday []RawEntry                   `json:"Wednesday"`
	Thursday  []RawEntry                   `json:"Thursday"`
	Friday    []RawEntry                   `json:"Friday"`
	Saturday  []RawEntry                   `json:"Saturday"`
}

// DayEntries returns the entry list for a day.
func (d *TimetableData) DayEntries(day timetable.Day) []RawEntry {
	switch day {
	case timetable.Monday:
		return d.Monday
	case timetable.Tuesday:
		return d.Tuesday
	case timetable.Wednesday:
		return d.Wednesday
	case timetable.Thursday:
		return d.Thursday
	case timetable.Friday:
		return d.Friday
	case timetable.Saturday:
		return d.Saturday
	default:
		return nil
	}
}

func (d *TimetableData) setDayEntries(day timetable.Day, entries []RawEntry) {
	switch day {
	case timetable.Monday:
		d.Monday = entries
	case timetable.Tuesday:
		d.Tuesday = entries
	case timetable.Wednesday:
		d.Wednesday = entries
	case timetable.Thursday:
		d.Thursday = entries
	case timetable.Friday:
		d.Friday = entries
	case timetable.Saturday:
		d.Saturday = entries
	}
}

// newID generates block ids during decode. Swappable in tests.
var newID = uuid.NewString

// Decode builds a grid from external data. The source is trusted: entries
// whose time matches no slot are silently dropped, and no conflict checking
// runs; duplicate entries simply overwrite.
func Decode(data *TimetableData) *engine.Grid {
	grid := engine.NewGrid()
	if data == nil {
		return grid
	}

	for _, day := range timetable.Days {
		for _, entry := range data.DayEntries(day) {
			if block := decodeEntry(day, entry); block != nil {
				grid.Put(block)
			}
		}
	}
	return grid
}

// decodeEntry converts one external entry into a block, or nil when its time
// matches no slot.
func decodeEntry(day timetable.Day, entry RawEntry) *timetable.ClassBlock {
	startHour := timetable.LeadingHour(entry.Time)
	slot := timetable.SlotByStartHour(startHour)
	if slot < 0 {
		return nil
	}

	typ, subject := timetable.SplitTypePrefix(strings.TrimSpace(entry.Subject))

	// Labs default to a double slot. A parsed end time spanning two or more
	// hours upgrades any entry to a double slot; it never shrinks a lab,
	// since a double slot's own range ("10:00-11:50") reads as one raw hour.
	duration := 1
	if typ == timetable.TypeLab {
		duration = 2
	}
	if endHour := rangeEndHour(entry.Time); endHour >= 0 {
		if timetable.Hour24(endHour)-timetable.Hour24(startHour) >= 2 {
			duration = 2
		}
	}

	return &timetable.ClassBlock{
		ID:       newID(),
		Subject:  subject,
		Type:     typ,
		Room:     strings.TrimSpace(entry.Room),
		Faculty:  strings.ToUpper(strings.TrimSpace(entry.Teacher)),
		Duration: duration,
		Day:      day,
		Slot:     slot,
	}
}

// rangeEndHour parses the hour after the '-' in a "H:MM-H:MM" time, or -1
// when the time carries no end part.
func rangeEndHour(time string) int {
	i := strings.IndexByte(time, '-')
	if i < 0 {
		return -1
	}
	return timetable.LeadingHour(time[i+1:])
}

// Encode flattens a grid into the external format. Every day key is present,
// holding a list sorted by the raw leading hour of each entry.
func Encode(batch timetable.Batch, grid *engine.Grid) *TimetableData {
	data := &TimetableData{Batch: batch}
	for _, day := range timetable.Days {
		data.setDayEntries(day, []RawEntry{})
	}
	if grid == nil {
		return data
	}

	for _, block := range grid.AllBlocks() {
		entry := RawEntry{
			Time:    block.TimeRange(),
			Subject: block.CanonicalSubject(),
			Room:    block.Room,
			Teacher: block.Faculty,
		}
		data.setDayEntries(block.Day, append(data.DayEntries(block.Day), entry))
	}

	for _, day := range timetable.Days {
		entries := data.DayEntries(day)
		sort.SliceStable(entries, func(i, j int) bool {
			return timetable.LeadingHour(entries[i].Time) < timetable.LeadingHour(entries[j].Time)
		})
	}
	return data
}
