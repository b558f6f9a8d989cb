package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AmanVerma1067/TTeditor/internal/codec"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
	"github.com/AmanVerma1067/TTeditor/internal/tui/commands"
)

const statusTimeout = 4 * time.Second

const quitWarning = "Unsaved changes. Press q again to quit"

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.colWidth = m.calculateColWidth()
		return m, nil

	case commands.TimetableLoadedMsg:
		m.batches = msg.Batches
		m.loading = false
		if data := commands.BatchFor(m.batches, m.store.Batch()); data != nil {
			m.store.Load(m.store.Batch(), codec.Decode(data))
		}
		m.setStatus("Timetable loaded")
		LogGridState(m.store, "remote_load")
		return m, commands.ClearStatusAfter(statusTimeout)

	case commands.HealthMsg:
		m.online = msg.Online
		return m, nil

	case commands.ExportedMsg:
		m.store.MarkSaved()
		m.setStatus("Exported to " + msg.Path)
		return m, commands.ClearStatusAfter(statusTimeout)

	case commands.CopiedMsg:
		m.setStatus("Copied JSON to clipboard")
		return m, commands.ClearStatusAfter(statusTimeout)

	case commands.ErrMsg:
		m.loading = false
		m.err = msg.Err
		m.statusMsg = msg.Err.Error()
		m.statusIsErr = true
		LogError("update", msg.Err)
		return m, commands.ClearStatusAfter(statusTimeout)

	case commands.ClearStatusMsg:
		m.statusMsg = ""
		m.statusIsErr = false
		return m, nil
	}

	return m, nil
}

// calculateColWidth derives the class column width from the terminal width,
// leaving room for the time column and table chrome.
func (m Model) calculateColWidth() int {
	if m.width <= 0 {
		return defaultColWidth
	}
	avail := m.width - 14 - 6 // time column + borders and padding
	w := avail / timetable.DayCount
	if w < 10 {
		w = 10
	}
	if w > 24 {
		w = 24
	}
	return w
}
