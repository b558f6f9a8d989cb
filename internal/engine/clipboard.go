package engine

import "github.com/AmanVerma1067/TTeditor/internal/timetable"

// Clipboard stages one block's content for pasting. Copy overwrites the
// previous entry; pasting does not clear it, so one copy can seed many cells.
type Clipboard struct {
	content *timetable.BlockContent
}

// NewClipboard creates an empty clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{}
}

// Copy stages the given content, replacing whatever was held before.
func (c *Clipboard) Copy(content timetable.BlockContent) {
	c.content = &content
}

// Content returns a copy of the staged content and true, or a zero value and
// false when the clipboard is empty.
func (c *Clipboard) Content() (timetable.BlockContent, bool) {
	if c.content == nil {
		return timetable.BlockContent{}, false
	}
	return *c.content, true
}

// HasContent reports whether anything is staged.
func (c *Clipboard) HasContent() bool {
	return c.content != nil
}

// Clear empties the clipboard.
func (c *Clipboard) Clear() {
	c.content = nil
}
