package ui

import (
	"fmt"
	"strings"

	"github.com/AmanVerma1067/TTeditor/internal/codec"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

// Stats holds aggregated statistics for a timetable.
type Stats struct {
	Lectures  int
	Labs      int
	Tutorials int
	DayCounts map[timetable.Day]int
}

// TotalClasses returns the total number of classes.
func (s Stats) TotalClasses() int {
	return s.Lectures + s.Labs + s.Tutorials
}

// BusiestDay returns the day with the most classes.
func (s Stats) BusiestDay() (day timetable.Day, count int) {
	for _, d := range timetable.Days {
		if c := s.DayCounts[d]; c > count {
			count = c
			day = d
		}
	}
	return day, count
}

// AccumulateStats updates stats with one timetable entry.
func AccumulateStats(stats *Stats, day timetable.Day, entry codec.RawEntry) {
	if stats.DayCounts == nil {
		stats.DayCounts = make(map[timetable.Day]int)
	}
	stats.DayCounts[day]++

	typ, _ := timetable.SplitTypePrefix(entry.Subject)
	switch typ {
	case timetable.TypeLab:
		stats.Labs++
	case timetable.TypeTutorial:
		stats.Tutorials++
	default:
		stats.Lectures++
	}
}

// PrintEntryRow prints a single class row with consistent formatting.
func PrintEntryRow(entry codec.RawEntry, maxSubjWidth int) {
	typ, subject := timetable.SplitTypePrefix(entry.Subject)
	if len(subject) > maxSubjWidth {
		subject = subject[:maxSubjWidth-3] + "..."
	}

	label := formatType(string(typ), fmt.Sprintf("[%s]", typ))
	meta := ""
	if entry.Room != "" {
		meta += "  " + entry.Room
	}
	if entry.Teacher != "" {
		meta += "  " + formatMuted(entry.Teacher)
	}

	fmt.Printf("    %-13s %s  %-*s%s\n", entry.Time, label, maxSubjWidth, subject, meta)
}

// PrintDay prints one day's classes with a header.
func PrintDay(day timetable.Day, entries []codec.RawEntry, maxSubjWidth int) {
	fmt.Printf("%s\n", formatHeader(string(day)))
	if len(entries) == 0 {
		fmt.Println(formatMuted("    (no classes)"))
		return
	}
	for _, entry := range entries {
		PrintEntryRow(entry, maxSubjWidth)
	}
}

// PrintStats prints the summary line for a timetable.
func PrintStats(stats Stats) {
	fmt.Printf("%s | %s | %s | Total: %d classes\n",
		formatType("L", fmt.Sprintf("Lectures: %d", stats.Lectures)),
		formatType("P", fmt.Sprintf("Labs: %d", stats.Labs)),
		formatType("T", fmt.Sprintf("Tutorials: %d", stats.Tutorials)),
		stats.TotalClasses())

	if day, count := stats.BusiestDay(); count > 0 {
		fmt.Printf("Busiest day: %s (%s classes)\n", day, formatStatsInt(count))
	}
}

func formatStatsInt(n int) string {
	return formatStats(fmt.Sprintf("%d", n))
}

// UtilizationBar creates an ASCII bar showing how full the weekly grid is.
func UtilizationBar(classes, width int) string {
	capacity := timetable.SlotCount * timetable.DayCount
	if classes > capacity {
		classes = capacity
	}
	filled := (classes * width) / capacity
	pct := (classes * 100) / capacity

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", bar, formatStats(fmt.Sprintf("(%d%% full)", pct)))
}

// calcMaxSubjWidth derives the subject column width from the terminal width.
func calcMaxSubjWidth(defaultWidth int) int {
	// Overhead: "    HH:MM-HH:MM  [X]  " plus room and teacher columns.
	available := termWidth() - 40
	if available > defaultWidth {
		return defaultWidth
	}
	if available < 16 {
		return 16
	}
	return available
}
