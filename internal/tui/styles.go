// Package tui provides the terminal user interface for TTeditor.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/AmanVerma1067/TTeditor/internal/tui/theme"
)

// Default column width - will be recalculated dynamically.
const defaultColWidth = 16

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color
	colorDanger      lipgloss.Color

	palette *theme.Palette

	// Title and header styles
	TitleStyle     lipgloss.Style
	HeaderStyle    lipgloss.Style
	DayHeaderStyle lipgloss.Style
	BatchStyle     lipgloss.Style
	DirtyStyle     lipgloss.Style
	OnlineStyle    lipgloss.Style
	OfflineStyle   lipgloss.Style

	// Time column
	TimeColumnStyle lipgloss.Style

	// Class cell styles
	CellStyle        lipgloss.Style
	LectureStyle     lipgloss.Style
	LabStyle         lipgloss.Style
	TutorialStyle    lipgloss.Style
	LectureAltStyle  lipgloss.Style
	LabAltStyle      lipgloss.Style
	TutorialAltStyle lipgloss.Style
	LabTailStyle     lipgloss.Style // continuation half of a 2-slot lab

	// Empty cell and cursor
	EmptyCellStyle lipgloss.Style
	CursorStyle    lipgloss.Style

	// Status message
	StatusStyle   lipgloss.Style
	ConflictStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalInputStyle        lipgloss.Style
	ModalInputFocusedStyle lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalHintStyle         lipgloss.Style

	// Type and duration toggle styles
	ToggleActiveStyle   lipgloss.Style
	ToggleInactiveStyle lipgloss.Style

	// Containers
	TableStyle lipgloss.Style
	AppStyle   lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)
	s.palette = palette

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning
	s.colorDanger = palette.Danger

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.HeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg).
		Width(defaultColWidth)

	s.BatchStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnAccent).
		Background(s.colorAccent).
		Padding(0, 1)

	s.DirtyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorWarning).
		Background(s.colorBg)

	s.OnlineStyle = lipgloss.NewStyle().
		Foreground(palette.Lab).
		Background(s.colorBg)

	s.OfflineStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Width(14)

	s.CellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Align(lipgloss.Left)

	s.LectureStyle = s.CellStyle.
		Background(palette.LectureBg).
		Foreground(s.colorFg).
		Bold(true)

	s.LabStyle = s.CellStyle.
		Background(palette.LabBg).
		Foreground(s.colorFg).
		Bold(true)

	s.TutorialStyle = s.CellStyle.
		Background(palette.TutorialBg).
		Foreground(s.colorFg).
		Bold(true)

	s.LectureAltStyle = s.CellStyle.
		Background(palette.LectureBgAlt).
		Foreground(s.colorFg).
		Bold(true)

	s.LabAltStyle = s.CellStyle.
		Background(palette.LabBgAlt).
		Foreground(s.colorFg).
		Bold(true)

	s.TutorialAltStyle = s.CellStyle.
		Background(palette.TutorialBgAlt).
		Foreground(s.colorFg).
		Bold(true)

	s.LabTailStyle = s.CellStyle.
		Background(palette.LabTailBg).
		Foreground(s.colorFgMuted)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.CursorStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.ConflictStyle = lipgloss.NewStyle().
		Foreground(s.colorDanger).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	s.ModalBgColor = modal.Bg
	s.ModalBackdropColor = modal.Backdrop

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modal.Bg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(56).
		Align(lipgloss.Left)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Width(10).
		Background(modal.Bg)

	s.ModalInputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modal.Border).
		Background(modal.Bg).
		Foreground(modal.Text).
		Padding(0, 1).
		Width(40)

	s.ModalInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(modal.Highlight).
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 1).
		Width(40)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	s.ToggleActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Bold(true).
		Padding(0, 1)

	s.ToggleInactiveStyle = lipgloss.NewStyle().
		Background(modal.Bg).
		Foreground(modal.Muted).
		Padding(0, 1)

	s.TableStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(s.colorBg).
		Padding(0, 1)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	return s
}

// BlockStyle returns the cell style for a class type, with alternating shade.
func (s *Styles) BlockStyle(typeCode string, alt bool) lipgloss.Style {
	switch typeCode {
	case "P":
		if alt {
			return s.LabAltStyle
		}
		return s.LabStyle
	case "T":
		if alt {
			return s.TutorialAltStyle
		}
		return s.TutorialStyle
	default:
		if alt {
			return s.LectureAltStyle
		}
		return s.LectureStyle
	}
}

// BlockStyleWidth returns the block style with the specified width.
func (s *Styles) BlockStyleWidth(typeCode string, alt bool, width int) lipgloss.Style {
	return s.BlockStyle(typeCode, alt).Width(width)
}

// LabTailStyleWidth returns the continuation cell style with the specified width.
func (s *Styles) LabTailStyleWidth(width int) lipgloss.Style {
	return s.LabTailStyle.Width(width)
}

// EmptyCellStyleWidth returns the empty cell style with the specified width.
func (s *Styles) EmptyCellStyleWidth(width int) lipgloss.Style {
	return s.EmptyCellStyle.Width(width)
}

// CursorStyleWidth returns the cursor style with the specified width.
func (s *Styles) CursorStyleWidth(width int) lipgloss.Style {
	return s.CursorStyle.Width(width)
}

// DayHeaderStyleWidth returns the day header style with the specified width.
func (s *Styles) DayHeaderStyleWidth(width int) lipgloss.Style {
	return s.DayHeaderStyle.Width(width)
}
