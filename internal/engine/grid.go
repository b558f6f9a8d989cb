// Package engine implements the scheduling state engine: the cell grid, the
// conflict detector, the undo/redo history and the clipboard, behind a single
// Store that owns every mutation path.
package engine

import (
	"strings"

	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

// Cell is one grid position. It holds at most one of: nothing, a block whose
// placement starts here, or a continuation marker for the 2-slot block in the
// previous slot. A cell never holds a starting block and a continuation mark
// at the same time.
type Cell struct {
	Block        *timetable.ClassBlock
	Continuation bool
}

// Grid is the full slot-by-day cell matrix. It is the single source of truth
// for what is scheduled; blocks are reachable only by scanning it.
type Grid struct {
	cells [timetable.SlotCount][timetable.DayCount]Cell
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{}
}

// validPosition checks that day and slot address a cell.
func validPosition(dayIdx, slot int) bool {
	return dayIdx >= 0 && dayIdx < timetable.DayCount && timetable.ValidSlot(slot)
}

// BlockAt returns the block starting at the given position, or nil.
func (g *Grid) BlockAt(day timetable.Day, slot int) *timetable.ClassBlock {
	d := timetable.DayIndex(day)
	if !validPosition(d, slot) {
		return nil
	}
	return g.cells[slot][d].Block
}

// IsContinuation reports whether the cell is the tail of a 2-slot block.
func (g *Grid) IsContinuation(day timetable.Day, slot int) bool {
	d := timetable.DayIndex(day)
	if !validPosition(d, slot) {
		return false
	}
	return g.cells[slot][d].Continuation
}

// Put writes a block into its starting cell and marks the continuation cell
// for a 2-slot block. It performs no conflict checking: load paths (decode,
// import) trust their source, and the Store only calls it after the detector
// has accepted the placement.
func (g *Grid) Put(b *timetable.ClassBlock) {
	d := timetable.DayIndex(b.Day)
	if !validPosition(d, b.Slot) {
		return
	}
	g.cells[b.Slot][d].Block = b
	if b.Duration == 2 && b.Slot < timetable.SlotCount-1 {
		g.cells[b.Slot+1][d].Continuation = true
	}
}

// Remove clears a block's starting cell and its continuation cell, if any.
// Both cells are cleared together; a 2-slot block never leaves a stale mark.
func (g *Grid) Remove(b *timetable.ClassBlock) {
	d := timetable.DayIndex(b.Day)
	if !validPosition(d, b.Slot) {
		return
	}
	g.cells[b.Slot][d].Block = nil
	if b.Duration == 2 && b.Slot < timetable.SlotCount-1 {
		g.cells[b.Slot+1][d].Continuation = false
	}
}

// Find returns the block with the given id, or nil. Lookup is a linear scan;
// the grid has 48 cells.
func (g *Grid) Find(id string) *timetable.ClassBlock {
	for slot := 0; slot < timetable.SlotCount; slot++ {
		for d := 0; d < timetable.DayCount; d++ {
			if b := g.cells[slot][d].Block; b != nil && b.ID == id {
				return b
			}
		}
	}
	return nil
}

// AllBlocks returns every starting block, slot-major then day order.
func (g *Grid) AllBlocks() []*timetable.ClassBlock {
	var blocks []*timetable.ClassBlock
	for slot := 0; slot < timetable.SlotCount; slot++ {
		for d := 0; d < timetable.DayCount; d++ {
			if b := g.cells[slot][d].Block; b != nil {
				blocks = append(blocks, b)
			}
		}
	}
	return blocks
}

// Clone returns a deep copy of the grid. Block structs are copied, so a clone
// is immune to later edits of the original.
func (g *Grid) Clone() *Grid {
	clone := &Grid{}
	for slot := 0; slot < timetable.SlotCount; slot++ {
		for d := 0; d < timetable.DayCount; d++ {
			cell := g.cells[slot][d]
			if cell.Block != nil {
				b := *cell.Block
				cell.Block = &b
			}
			clone.cells[slot][d] = cell
		}
	}
	return clone
}

// String returns a compact visualization of the grid for debugging. Starting
// blocks render as the first letter of their bare subject, continuations as
// '=', empty cells as '-'.
func (g *Grid) String() string {
	var sb strings.Builder
	for slot := 0; slot < timetable.SlotCount; slot++ {
		for d := 0; d < timetable.DayCount; d++ {
			cell := g.cells[slot][d]
			switch {
			case cell.Block != nil:
				bare := timetable.StripTypePrefix(cell.Block.Subject)
				if bare == "" {
					sb.WriteRune('?')
				} else {
					sb.WriteByte(bare[0])
				}
			case cell.Continuation:
				sb.WriteRune('=')
			default:
				sb.WriteRune('-')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}
