package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

// View renders the TUI.
func (m Model) View() string {
	base := m.renderAppContent()
	if m.mode == ModeModal && m.modalType != ModalNone && m.width > 0 && m.height > 0 {
		overlay := m.overlay
		overlay.Show()
		return overlay.Render(base, m.width, m.height, m.renderModal())
	}
	return base
}

func (m Model) renderAppContent() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return m.styles.AppStyle.Render(b.String())
}

// renderHeader renders the title bar: app name, batch, dirty and link state.
func (m Model) renderHeader() string {
	parts := []string{
		m.styles.TitleStyle.Render("TTeditor"),
		" ",
		m.styles.BatchStyle.Render(string(m.store.Batch())),
	}

	if m.store.Dirty() {
		parts = append(parts, " ", m.styles.DirtyStyle.Render("*modified"))
	}

	switch {
	case m.loading:
		parts = append(parts, " ", m.styles.OfflineStyle.Render("fetching..."))
	case m.online:
		parts = append(parts, " ", m.styles.OnlineStyle.Render("online"))
	default:
		parts = append(parts, " ", m.styles.OfflineStyle.Render("offline"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

// renderGrid renders the weekly table: one row per slot, one column per day.
func (m Model) renderGrid() string {
	var rows []string

	// Header row: empty time corner + day names
	headerCells := []string{m.styles.TimeColumnStyle.Render("")}
	for _, day := range timetable.Days {
		headerCells = append(headerCells, m.styles.DayHeaderStyleWidth(m.colWidth).Render(string(day)))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, headerCells...))

	for slot := 0; slot < timetable.SlotCount; slot++ {
		cells := []string{m.styles.TimeColumnStyle.Render(timetable.TimeSlots[slot].Label())}
		for dayIdx, day := range timetable.Days {
			cells = append(cells, m.renderCell(day, dayIdx, slot))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return m.styles.TableStyle.Render(strings.Join(rows, "\n"))
}

// renderCell renders a single grid cell.
func (m Model) renderCell(day timetable.Day, dayIdx, slot int) string {
	isCursor := m.cursor.Day == dayIdx && m.cursor.Slot == slot

	if block := m.store.BlockAt(day, slot); block != nil {
		text := cellText(block, m.colWidth)
		if isCursor {
			return m.styles.CursorStyleWidth(m.colWidth).Render(text)
		}
		// Alternate the shade on odd slots so adjacent same-type blocks
		// stay visually distinct.
		return m.styles.BlockStyleWidth(string(block.Type), slot%2 == 1, m.colWidth).Render(text)
	}

	if m.store.IsContinuation(day, slot) {
		text := truncateStr("  ⤷ lab cont.", m.colWidth)
		if isCursor {
			return m.styles.CursorStyleWidth(m.colWidth).Render(text)
		}
		return m.styles.LabTailStyleWidth(m.colWidth).Render(text)
	}

	if isCursor {
		return m.styles.CursorStyleWidth(m.colWidth).Render(" ·")
	}
	return m.styles.EmptyCellStyleWidth(m.colWidth).Render("")
}

// cellText builds the one-line cell label: subject, then room if it fits.
func cellText(block *timetable.ClassBlock, width int) string {
	text := " " + block.BareSubject()
	if block.Room != "" {
		text += " @" + block.Room
	}
	return truncateStr(text, width)
}

// renderFooter renders the status line and key hints.
func (m Model) renderFooter() string {
	var b strings.Builder

	if m.statusMsg != "" {
		if m.statusIsErr {
			b.WriteString(m.styles.ConflictStyle.Render(m.statusMsg))
		} else {
			b.WriteString(m.styles.StatusStyle.Render(m.statusMsg))
		}
		b.WriteString("\n")
	}

	hints := "hjkl: move  enter: add/view  e: edit  x: delete  c/v: copy/paste  " +
		"u: undo  ctrl+r: redo  b: batch  f: fetch  E: export  Y: copy json  q: quit"
	b.WriteString(m.styles.HelpStyle.Render(hints))
	return b.String()
}
