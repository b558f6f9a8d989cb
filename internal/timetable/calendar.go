// Package timetable defines the core domain types for TTeditor.
package timetable

// SlotCount is the number of daily teaching slots.
const SlotCount = 8

// DayCount is the number of teaching days per week.
const DayCount = 6

// TimeSlot is one fixed daily time interval, identified by its index.
type TimeSlot struct {
	Start string // e.g. "8:00"
	End   string // e.g. "8:50"
	Index int
}

// Label returns the display label for the slot, e.g. "8:00 - 8:50".
func (s TimeSlot) Label() string {
	return s.Start + " - " + s.End
}

// StartHour returns the raw leading hour of the slot start, e.g. 8 for "8:00".
// Afternoon slots keep their institutional 12-hour form (1, 2, 3).
func (s TimeSlot) StartHour() int {
	return LeadingHour(s.Start)
}

// TimeSlots is the fixed slot calendar. The start/end labels must match the
// external schedule format exactly; afternoon hours are written in 12-hour
// form per institutional convention.
var TimeSlots = [SlotCount]TimeSlot{
	{Start: "8:00", End: "8:50", Index: 0},
	{Start: "9:00", End: "9:50", Index: 1},
	{Start: "10:00", End: "10:50", Index: 2},
	{Start: "11:00", End: "11:50", Index: 3},
	{Start: "12:00", End: "12:50", Index: 4},
	{Start: "1:00", End: "1:50", Index: 5},
	{Start: "2:00", End: "2:50", Index: 6},
	{Start: "3:00", End: "3:50", Index: 7},
}

// SlotByStartHour returns the index of the slot whose raw start hour matches,
// or -1 if no slot starts at that hour. Raw hours are compared without AM/PM
// conversion; the 8 fixed slots have distinct raw hours {8,9,10,11,12,1,2,3},
// so the lookup is unambiguous within institutional hours.
func SlotByStartHour(hour int) int {
	for _, s := range TimeSlots {
		if s.StartHour() == hour {
			return s.Index
		}
	}
	return -1
}

// ValidSlot reports whether idx is a valid slot index.
func ValidSlot(idx int) bool {
	return idx >= 0 && idx < SlotCount
}

// LeadingHour parses the leading hour of a "H:MM" or "H:MM-H:MM" string.
// Returns -1 if the string does not start with digits.
func LeadingHour(t string) int {
	hour := -1
	for i := 0; i < len(t) && t[i] >= '0' && t[i] <= '9'; i++ {
		if hour < 0 {
			hour = 0
		}
		hour = hour*10 + int(t[i]-'0')
	}
	return hour
}

// Hour24 converts a raw institutional hour to 24-hour form. Hours below 8 are
// afternoon within institutional hours (1:00 means 13:00, never 1 AM).
func Hour24(hour int) int {
	if hour < 8 {
		return hour + 12
	}
	return hour
}

// Day is one of the six fixed teaching weekdays.
type Day string

// Teaching days, Monday through Saturday.
const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
	Saturday  Day = "Saturday"
)

// Days is the ordered list of teaching days.
var Days = [DayCount]Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// DayIndex returns the ordinal of a day (Monday=0), or -1 if unknown.
func DayIndex(d Day) int {
	for i, day := range Days {
		if day == d {
			return i
		}
	}
	return -1
}

// ValidDay reports whether d is one of the six teaching days.
func ValidDay(d Day) bool {
	return DayIndex(d) >= 0
}

// Batch identifies which cohort's timetable is being edited.
type Batch string

// Known batches.
const (
	BatchE15 Batch = "E15"
	BatchE16 Batch = "E16"
	BatchE17 Batch = "E17"
)

// DefaultBatch is the batch selected at startup.
const DefaultBatch = BatchE16

// Batches is the ordered list of known batches.
var Batches = []Batch{BatchE15, BatchE16, BatchE17}

// ValidBatch reports whether b is a known batch identifier.
func ValidBatch(b Batch) bool {
	for _, batch := range Batches {
		if batch == b {
			return true
		}
	}
	return false
}

// NextBatch returns the batch after b in display order, wrapping around.
func NextBatch(b Batch) Batch {
	for i, batch := range Batches {
		if batch == b {
			return Batches[(i+1)%len(Batches)]
		}
	}
	return DefaultBatch
}
