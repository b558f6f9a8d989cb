package timetable

// ConflictKind classifies why a placement was rejected.
type ConflictKind string

const (
	// ConflictRoom: same room, overlapping slots, same day.
	ConflictRoom ConflictKind = "room"
	// ConflictFaculty: same faculty, overlapping slots, same day.
	ConflictFaculty ConflictKind = "faculty"
	// ConflictLogic: structural violations such as lab/lecture overlap,
	// bounds, occupied target cell, continuation cell, unknown block id.
	ConflictLogic ConflictKind = "logic"
)

// Conflict is a typed placement rejection. Conflicts are returned as values,
// never raised as errors: a rejected operation leaves the grid untouched and
// the caller decides how to present the message.
type Conflict struct {
	Kind     ConflictKind
	Message  string
	Blocking *ClassBlock // the block that blocks the placement, when one exists
}

// String returns the human-readable rejection message.
func (c *Conflict) String() string {
	if c == nil {
		return ""
	}
	return c.Message
}
