package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayModel composites a modal box over the base view. The box is sized
// to its content and centered; everything behind it stays visible.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// Show makes the overlay visible.
func (o *OverlayModel) Show() {
	o.active = true
}

// Hide makes the overlay invisible.
func (o *OverlayModel) Hide() {
	o.active = false
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the overlay background color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws the modal content centered on top of base.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := o.contentLines(content)
	boxW, boxH := o.contentSize(contentLines)
	if boxW == 0 || boxH == 0 {
		return base
	}
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		boxH = height
	}

	top := (height - boxH) / 2
	left := (width - boxW) / 2
	if top < 0 {
		top = 0
	}
	if left < 0 {
		left = 0
	}

	baseLines := o.normalizeBase(base, width, height)
	bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH || row-top >= len(contentLines) {
			lines = append(lines, baseLines[row])
			continue
		}

		line := contentLines[row-top]
		lineWidth := lipgloss.Width(line)
		if lineWidth > boxW {
			line = ansi.Cut(line, 0, boxW)
			lineWidth = boxW
		}
		if lineWidth < boxW {
			line += bgSeq + strings.Repeat(" ", boxW-lineWidth) + ansi.ResetStyle
		}

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		lines = append(lines, leftSlice+line+rightSlice)
	}

	return strings.Join(lines, "\n")
}

func (o OverlayModel) contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (o OverlayModel) contentSize(lines []string) (int, int) {
	if len(lines) == 0 {
		return 0, 0
	}
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

func (o OverlayModel) normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
