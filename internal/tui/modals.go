package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AmanVerma1067/TTeditor/internal/timetable"
	"github.com/AmanVerma1067/TTeditor/internal/tui/commands"
)

const formFieldCount = 5 // subject, room, faculty, type, duration

var classTypes = []timetable.ClassType{
	timetable.TypeLecture,
	timetable.TypeLab,
	timetable.TypeTutorial,
}

// openFormModal prepares the class form for a new block (nil) or an edit.
func (m *Model) openFormModal(block *timetable.ClassBlock) {
	m.modalBlock = block
	m.formSubject.SetValue("")
	m.formRoom.SetValue("")
	m.formFaculty.SetValue("")
	m.formType = 0
	m.formDuration = 0

	if block != nil {
		m.formSubject.SetValue(block.BareSubject())
		m.formRoom.SetValue(block.Room)
		m.formFaculty.SetValue(block.Faculty)
		for i, ct := range classTypes {
			if ct == block.Type {
				m.formType = i
			}
		}
		if block.Duration == 2 {
			m.formDuration = 1
		}
	}

	m.formFocus = 0
	m.formSubject.Focus()
	m.formRoom.Blur()
	m.formFaculty.Blur()

	LogModeChange(m.mode, ModeModal, "class_form")
	m.mode = ModeModal
	m.modalType = ModalClassForm
	m.overlay.Show()
}

// openDetailModal shows the detail popup for an existing block.
func (m *Model) openDetailModal(block *timetable.ClassBlock) {
	m.modalBlock = block
	LogModeChange(m.mode, ModeModal, "class_detail")
	m.mode = ModeModal
	m.modalType = ModalClassDetail
	m.overlay.Show()
}

// openConfirmDelete shows the delete confirmation for a block.
func (m *Model) openConfirmDelete(block *timetable.ClassBlock) {
	m.modalBlock = block
	m.confirmMessage = fmt.Sprintf("Delete %s (%s, %s)?", block.BareSubject(), block.Day, block.TimeRange())
	LogModeChange(m.mode, ModeModal, "confirm_delete")
	m.mode = ModeModal
	m.modalType = ModalConfirmDelete
	m.overlay.Show()
}

// closeModal returns to normal mode.
func (m *Model) closeModal() {
	LogModeChange(m.mode, ModeNormal, "modal_close")
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.modalBlock = nil
	m.confirmMessage = ""
	m.formSubject.Blur()
	m.formRoom.Blur()
	m.formFaculty.Blur()
	m.overlay.Hide()
}

// handleModalKeys dispatches keys to the active modal.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalClassForm:
		return m.handleClassFormKeys(msg)
	case ModalClassDetail:
		return m.handleClassDetailKeys(msg)
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	default:
		m.closeModal()
		return m, nil
	}
}

// handleClassFormKeys handles keys in the class form modal.
func (m Model) handleClassFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil

	case "tab", "down":
		m.setFormFocus((m.formFocus + 1) % formFieldCount)
		return m, nil

	case "shift+tab", "up":
		m.setFormFocus((m.formFocus + formFieldCount - 1) % formFieldCount)
		return m, nil

	case "enter":
		return m.saveBlockFromForm()

	case "left", "right":
		switch m.formFocus {
		case 3:
			if msg.String() == "right" {
				m.formType = (m.formType + 1) % len(classTypes)
			} else {
				m.formType = (m.formType + len(classTypes) - 1) % len(classTypes)
			}
			// tutorials and lectures are single-slot
			if classTypes[m.formType] != timetable.TypeLab {
				m.formDuration = 0
			}
			return m, nil
		case 4:
			if classTypes[m.formType] == timetable.TypeLab {
				m.formDuration = (m.formDuration + 1) % len(durationOptions)
			}
			return m, nil
		}
	}

	// Text fields receive everything else.
	var cmd tea.Cmd
	switch m.formFocus {
	case 0:
		m.formSubject, cmd = m.formSubject.Update(msg)
	case 1:
		m.formRoom, cmd = m.formRoom.Update(msg)
	case 2:
		m.formFaculty, cmd = m.formFaculty.Update(msg)
	}
	return m, cmd
}

// setFormFocus moves textinput focus to the given field.
func (m *Model) setFormFocus(focus int) {
	m.formFocus = focus
	m.formSubject.Blur()
	m.formRoom.Blur()
	m.formFaculty.Blur()
	switch focus {
	case 0:
		m.formSubject.Focus()
	case 1:
		m.formRoom.Focus()
	case 2:
		m.formFaculty.Focus()
	}
}

// saveBlockFromForm validates the form and places or updates the block.
func (m Model) saveBlockFromForm() (tea.Model, tea.Cmd) {
	content := timetable.BlockContent{
		Subject:  strings.TrimSpace(m.formSubject.Value()),
		Type:     classTypes[m.formType],
		Room:     strings.TrimSpace(m.formRoom.Value()),
		Faculty:  strings.TrimSpace(m.formFaculty.Value()),
		Duration: durationOptions[m.formDuration],
	}

	day := timetable.Days[m.cursor.Day]
	slot := m.cursor.Slot

	var block *timetable.ClassBlock
	var conflict *timetable.Conflict
	if m.modalBlock != nil {
		block, conflict = m.store.Update(m.modalBlock.ID, content, m.modalBlock.Day, m.modalBlock.Slot)
		LogStoreOp("update", block, conflict)
	} else {
		block, conflict = m.store.Place(content, day, slot)
		LogStoreOp("place", block, conflict)
	}

	if conflict != nil {
		m.setConflict(conflict)
		return m, commands.ClearStatusAfter(statusTimeout)
	}

	m.closeModal()
	m.setStatus("Saved " + block.BareSubject())
	LogGridState(m.store, "save")
	return m, commands.ClearStatusAfter(statusTimeout)
}

// handleClassDetailKeys handles keys in the detail modal.
func (m Model) handleClassDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q":
		m.closeModal()
		return m, nil

	case "e":
		block := m.modalBlock
		m.closeModal()
		if block != nil {
			m.openFormModal(block)
		}
		return m, nil

	case "x":
		block := m.modalBlock
		m.closeModal()
		if block != nil {
			m.openConfirmDelete(block)
		}
		return m, nil
	}
	return m, nil
}

// handleConfirmDeleteKeys handles keys in the delete confirmation modal.
func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		block := m.modalBlock
		m.closeModal()
		if block != nil && m.store.Remove(block.ID) {
			m.setStatus("Deleted " + block.BareSubject())
			LogGridState(m.store, "delete")
			return m, commands.ClearStatusAfter(statusTimeout)
		}
		return m, nil

	case "n", "esc":
		m.closeModal()
		return m, nil
	}
	return m, nil
}

// renderModal renders the active modal's content.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalClassForm:
		return m.renderClassFormModal()
	case ModalClassDetail:
		return m.renderClassDetailModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	default:
		return ""
	}
}

// renderClassFormModal renders the class creation/edit form.
func (m Model) renderClassFormModal() string {
	title := "New Class"
	if m.modalBlock != nil {
		title = "Edit Class"
	}
	day := timetable.Days[m.cursor.Day]
	slotLabel := timetable.TimeSlots[m.cursor.Slot].Label()
	if m.modalBlock != nil {
		day = m.modalBlock.Day
		slotLabel = m.modalBlock.TimeRange()
	}

	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(m.styles.ModalMetaStyle.Render(fmt.Sprintf("%s  %s", day, slotLabel)))
	b.WriteString("\n\n")

	b.WriteString(m.renderFormInput("Subject", m.formSubject, m.formFocus == 0))
	b.WriteString("\n")
	b.WriteString(m.renderFormInput("Room", m.formRoom, m.formFocus == 1))
	b.WriteString("\n")
	b.WriteString(m.renderFormInput("Faculty", m.formFaculty, m.formFocus == 2))
	b.WriteString("\n\n")

	b.WriteString(m.styles.ModalLabelStyle.Render("Type"))
	for i, ct := range classTypes {
		style := m.styles.ToggleInactiveStyle
		if i == m.formType {
			style = m.styles.ToggleActiveStyle
		}
		b.WriteString(style.Render(ct.Label()))
		b.WriteString(" ")
	}
	if m.formFocus == 3 {
		b.WriteString(m.styles.ModalHintStyle.Render(" ←/→"))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.ModalLabelStyle.Render("Slots"))
	for i, d := range durationOptions {
		style := m.styles.ToggleInactiveStyle
		if i == m.formDuration {
			style = m.styles.ToggleActiveStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%d", d)))
		b.WriteString(" ")
	}
	if m.formFocus == 4 {
		b.WriteString(m.styles.ModalHintStyle.Render(" ←/→ (labs only)"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.ModalHintStyle.Render("tab: next field  enter: save  esc: cancel"))

	return m.styles.ModalStyle.Render(b.String())
}

func (m Model) renderFormInput(label string, ti textinput.Model, focused bool) string {
	inputStyle := m.styles.ModalInputStyle
	if focused {
		inputStyle = m.styles.ModalInputFocusedStyle
	}
	return m.styles.ModalLabelStyle.Render(label) + inputStyle.Render(ti.View())
}

// renderClassDetailModal renders the read-only block detail popup.
func (m Model) renderClassDetailModal() string {
	block := m.modalBlock
	if block == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render(block.BareSubject()))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(m.styles.ModalLabelStyle.Render(label))
		b.WriteString(m.styles.ModalBodyStyle.Render(value))
		b.WriteString("\n")
	}

	row("Type", block.Type.Label())
	row("Day", string(block.Day))
	row("Time", block.TimeRange())
	if block.Room != "" {
		row("Room", block.Room)
	}
	if block.Faculty != "" {
		row("Faculty", block.Faculty)
	}
	if block.Duration == 2 {
		row("Slots", "2 (double)")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.ModalHintStyle.Render("e: edit  x: delete  esc: close"))

	return m.styles.ModalStyle.Render(b.String())
}

// renderConfirmDeleteModal renders the delete confirmation modal.
func (m Model) renderConfirmDeleteModal() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitleStyle.Render("Confirm Delete"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.ModalBodyStyle.Render(m.confirmMessage))
	b.WriteString("\n\n")
	b.WriteString(m.styles.ModalHintStyle.Render("y: delete  n: keep"))
	return m.styles.ModalStyle.Render(b.String())
}
