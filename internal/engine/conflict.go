package engine

import (
	"fmt"

	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

// CheckPlacement decides whether a prospective block can occupy its target
// cells. excludeID names an existing block to skip during comparison, so an
// in-place edit does not conflict with itself. It returns nil when the
// placement is legal, otherwise a typed conflict referencing the blocking
// block where one exists. The grid is never touched.
//
// Two complementary checks must both pass: the same-day block scan (which
// sees room, faculty and type but not continuation marks) and the raw target
// cell check (which sees continuation marks but not categories).
func CheckPlacement(g *Grid, candidate *timetable.ClassBlock, excludeID string) *timetable.Conflict {
	// Bounds: a 2-slot session starting at the last slot has nowhere to
	// extend, regardless of occupancy.
	if candidate.Duration == 2 && candidate.Slot >= timetable.SlotCount-1 {
		return &timetable.Conflict{
			Kind:    timetable.ConflictLogic,
			Message: "Lab sessions cannot extend beyond the last slot",
		}
	}

	for _, existing := range g.AllBlocks() {
		if existing.ID == excludeID {
			continue
		}
		if !candidate.Overlaps(existing) {
			continue
		}

		// Priority order: room, faculty, then lab/lecture exclusion.
		if existing.Room == candidate.Room {
			return &timetable.Conflict{
				Kind:     timetable.ConflictRoom,
				Message:  fmt.Sprintf("Room %s is already booked at this time", candidate.Room),
				Blocking: existing,
			}
		}
		if existing.Faculty == candidate.Faculty {
			return &timetable.Conflict{
				Kind:     timetable.ConflictFaculty,
				Message:  fmt.Sprintf("Faculty %s is already scheduled at this time", candidate.Faculty),
				Blocking: existing,
			}
		}
		if labLectureClash(candidate.Type, existing.Type) {
			return &timetable.Conflict{
				Kind:     timetable.ConflictLogic,
				Message:  "Labs cannot overlap with Lectures in the same time slot",
				Blocking: existing,
			}
		}
	}

	// Raw cell check: the scan above only compares same-day block overlap,
	// so it cannot see a continuation mark with no block of its own.
	for _, slot := range candidate.OccupiedSlots() {
		if b := g.BlockAt(candidate.Day, slot); b != nil && b.ID != excludeID {
			return &timetable.Conflict{
				Kind:     timetable.ConflictLogic,
				Message:  "This slot is already occupied",
				Blocking: b,
			}
		}
		if g.IsContinuation(candidate.Day, slot) {
			return &timetable.Conflict{
				Kind:    timetable.ConflictLogic,
				Message: "This slot is occupied by a lab session from the previous slot",
			}
		}
	}

	return nil
}

// labLectureClash reports whether one type is a lab and the other a lecture.
// Same-type overlaps and any pairing involving a tutorial are not flagged by
// this rule.
func labLectureClash(a, b timetable.ClassType) bool {
	return (a == timetable.TypeLab && b == timetable.TypeLecture) ||
		(a == timetable.TypeLecture && b == timetable.TypeLab)
}
