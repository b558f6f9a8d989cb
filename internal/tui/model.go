// Package tui provides the terminal user interface for TTeditor.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AmanVerma1067/TTeditor/internal/api"
	"github.com/AmanVerma1067/TTeditor/internal/codec"
	"github.com/AmanVerma1067/TTeditor/internal/config"
	"github.com/AmanVerma1067/TTeditor/internal/engine"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
	"github.com/AmanVerma1067/TTeditor/internal/tui/commands"
	"github.com/AmanVerma1067/TTeditor/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalClassForm // New class creation or edit
	ModalClassDetail
	ModalConfirmDelete
)

// Duration options for the class form, in slots.
var durationOptions = []int{1, 2}

// Position represents a cursor position in the grid.
type Position struct {
	Day  int // 0=Monday, 5=Saturday
	Slot int // 0-based slot index
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  *engine.Store
	client *api.Client
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	cursor  Position
	mode    Mode
	loading bool // true while the initial fetch is in flight
	online  bool

	// Cached remote data, one entry per batch
	batches []*codec.TimetableData

	// Modal state
	modalType      ModalType
	modalBlock     *timetable.ClassBlock // block being viewed/edited (nil for new)
	formSubject    textinput.Model
	formRoom       textinput.Model
	formFaculty    textinput.Model
	formType       int // 0=lecture, 1=lab, 2=tutorial
	formDuration   int // index into durationOptions
	formFocus      int // 0=subject, 1=room, 2=faculty, 3=type, 4=duration
	confirmMessage string

	// Overlay state
	overlay OverlayModel

	// Terminal dimensions and layout
	width    int
	height   int
	colWidth int

	// Messages
	statusMsg   string
	statusIsErr bool

	// Error state
	err error
}

// New creates a new TUI model.
func New(store *engine.Store, client *api.Client, cfg *config.Config) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	newInput := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = 36
		ti.PlaceholderStyle = styles.ModalPlaceholderStyle
		ti.TextStyle = styles.ModalInputTextStyle
		ti.PromptStyle = styles.ModalInputTextStyle
		ti.Cursor.Style = styles.ModalInputCursorStyle
		ti.Cursor.TextStyle = styles.ModalInputTextStyle
		return ti
	}

	m := &Model{
		store:        store,
		client:       client,
		config:       cfg,
		theme:        t,
		styles:       styles,
		cursor:       Position{Day: 0, Slot: 0},
		mode:         ModeNormal,
		loading:      true,
		formSubject:  newInput("Subject", 64),
		formRoom:     newInput("Room", 16),
		formFaculty:  newInput("Faculty", 32),
		formDuration: 0, // 1 slot
		overlay:      NewOverlayModel(),
		colWidth:     defaultColWidth,
	}
	m.overlay.SetBackground(styles.ModalBackdropColor)

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		commands.FetchTimetable(m.client),
		commands.CheckHealth(m.client),
	)
}

// Run starts the TUI.
func Run(cfg *config.Config) error {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	store := engine.NewStore(cfg.Batch())
	client := api.New(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)

	model := New(store, client, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// currentData encodes the live grid for export or clipboard.
func (m *Model) currentData() *codec.TimetableData {
	return codec.Encode(m.store.Batch(), m.store.Grid())
}

// blockAtCursor resolves the cursor cell to its owning block, following a
// lab continuation cell back to the block's starting slot.
func (m *Model) blockAtCursor() *timetable.ClassBlock {
	day := timetable.Days[m.cursor.Day]
	if b := m.store.BlockAt(day, m.cursor.Slot); b != nil {
		return b
	}
	if m.store.IsContinuation(day, m.cursor.Slot) && m.cursor.Slot > 0 {
		return m.store.BlockAt(day, m.cursor.Slot-1)
	}
	return nil
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusIsErr = false
}

func (m *Model) setConflict(c *timetable.Conflict) {
	m.statusMsg = c.Message
	m.statusIsErr = true
	LogConflict(c)
}
