package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AmanVerma1067/TTeditor/internal/codec"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
	"github.com/AmanVerma1067/TTeditor/internal/tui/commands"
)

// handleKeyMsg dispatches key events based on the current mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// ctrl+c always quits, even mid-modal
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode == ModeModal {
		return m.handleModalKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys in normal (grid) mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		if m.store.Dirty() && m.statusMsg != quitWarning {
			m.setStatus(quitWarning)
			return m, commands.ClearStatusAfter(statusTimeout)
		}
		return m, tea.Quit

	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
			LogCursorMove(m.cursor.Day, m.cursor.Slot, "left")
		}
		return m, nil

	case "l", "right":
		if m.cursor.Day < timetable.DayCount-1 {
			m.cursor.Day++
			LogCursorMove(m.cursor.Day, m.cursor.Slot, "right")
		}
		return m, nil

	case "k", "up":
		if m.cursor.Slot > 0 {
			m.cursor.Slot--
			LogCursorMove(m.cursor.Day, m.cursor.Slot, "up")
		}
		return m, nil

	case "j", "down":
		if m.cursor.Slot < timetable.SlotCount-1 {
			m.cursor.Slot++
			LogCursorMove(m.cursor.Day, m.cursor.Slot, "down")
		}
		return m, nil

	case "g":
		m.cursor.Slot = 0
		return m, nil

	case "G":
		m.cursor.Slot = timetable.SlotCount - 1
		return m, nil

	case "enter":
		if block := m.blockAtCursor(); block != nil {
			m.openDetailModal(block)
			return m, nil
		}
		m.openFormModal(nil)
		return m, nil

	case "a":
		m.openFormModal(nil)
		return m, nil

	case "e":
		if block := m.blockAtCursor(); block != nil {
			m.openFormModal(block)
		}
		return m, nil

	case "x", "delete":
		if block := m.blockAtCursor(); block != nil {
			m.openConfirmDelete(block)
		}
		return m, nil

	case "c":
		if block := m.blockAtCursor(); block != nil {
			m.store.CopyBlock(block.ID)
			m.setStatus("Copied " + block.BareSubject())
			return m, commands.ClearStatusAfter(statusTimeout)
		}
		return m, nil

	case "v":
		return m.pasteAtCursor()

	case "u":
		if m.store.Undo() {
			m.setStatus("Undone")
			LogGridState(m.store, "undo")
		} else {
			m.setStatus("Nothing to undo")
		}
		return m, commands.ClearStatusAfter(statusTimeout)

	case "ctrl+r":
		if m.store.Redo() {
			m.setStatus("Redone")
			LogGridState(m.store, "redo")
		} else {
			m.setStatus("Nothing to redo")
		}
		return m, commands.ClearStatusAfter(statusTimeout)

	case "b":
		return m.cycleBatch()

	case "f":
		m.loading = true
		m.setStatus("Fetching timetable...")
		return m, tea.Batch(
			commands.FetchTimetable(m.client),
			commands.CheckHealth(m.client),
		)

	case "E":
		m.setStatus("Exporting...")
		return m, commands.ExportFile(m.config.Timetable.ExportDir, m.currentData())

	case "Y":
		return m, commands.CopyToClipboard(m.currentData())
	}

	return m, nil
}

// pasteAtCursor places the clipboard content at the cursor position.
func (m Model) pasteAtCursor() (tea.Model, tea.Cmd) {
	day := timetable.Days[m.cursor.Day]
	block, conflict := m.store.Paste(day, m.cursor.Slot)
	LogStoreOp("paste", block, conflict)
	if conflict != nil {
		m.setConflict(conflict)
		return m, commands.ClearStatusAfter(statusTimeout)
	}
	m.setStatus("Pasted " + block.BareSubject())
	return m, commands.ClearStatusAfter(statusTimeout)
}

// cycleBatch switches to the next batch, loading its cached remote data
// when available. Unsaved edits to the current batch are discarded.
func (m Model) cycleBatch() (tea.Model, tea.Cmd) {
	next := timetable.NextBatch(m.store.Batch())
	if data := commands.BatchFor(m.batches, next); data != nil {
		m.store.Load(next, codec.Decode(data))
	} else {
		m.store.Load(next, nil)
	}
	m.cursor = Position{}
	m.setStatus("Batch " + string(next))
	LogGridState(m.store, "batch_switch")
	return m, commands.ClearStatusAfter(statusTimeout)
}
