package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AmanVerma1067/TTeditor/internal/engine"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

// DebugLogger logs TUI state, keystrokes, and events to a file.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// DebugLogPath is the fixed path for debug logs
const DebugLogPath = "tteditor-debug.log"

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(DebugLogPath)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": DebugLogPath,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key":  msg.String(),
		"type": fmt.Sprintf("%T", msg.Type),
	})
}

// LogModeChange logs a mode change.
func LogModeChange(from, to Mode, reason string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("MODE_CHANGE", map[string]any{
		"from":   modeString(from),
		"to":     modeString(to),
		"reason": reason,
	})
}

// LogCursorMove logs cursor movement.
func LogCursorMove(day, slot int, reason string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("CURSOR_MOVE", map[string]any{
		"day":    day,
		"slot":   slot,
		"reason": reason,
	})
}

// LogStoreOp logs a grid mutation and its outcome.
func LogStoreOp(action string, block *timetable.ClassBlock, conflict *timetable.Conflict) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	data := map[string]any{
		"action":   action,
		"accepted": conflict == nil,
	}
	if block != nil {
		data["block"] = map[string]any{
			"id":       block.ID,
			"subject":  truncateStr(block.Subject, 30),
			"type":     string(block.Type),
			"day":      string(block.Day),
			"slot":     block.Slot,
			"duration": block.Duration,
		}
	}
	if conflict != nil {
		data["conflict_kind"] = string(conflict.Kind)
		data["conflict_msg"] = conflict.Message
	}
	debugLog.log("STORE_OP", data)
}

// LogConflict logs a rejected placement.
func LogConflict(c *timetable.Conflict) {
	if debugLog == nil || !debugLog.enabled || c == nil {
		return
	}
	data := map[string]any{
		"kind":    string(c.Kind),
		"message": c.Message,
	}
	if c.Blocking != nil {
		data["blocking"] = map[string]any{
			"id":      c.Blocking.ID,
			"subject": truncateStr(c.Blocking.Subject, 30),
			"day":     string(c.Blocking.Day),
			"slot":    c.Blocking.Slot,
		}
	}
	debugLog.log("CONFLICT", data)
}

// LogGridState logs all block positions in the grid.
func LogGridState(store *engine.Store, action string) {
	if debugLog == nil || !debugLog.enabled {
		return
	}

	blocks := store.AllBlocks()
	positions := make([]map[string]any, 0, len(blocks))
	for _, b := range blocks {
		positions = append(positions, map[string]any{
			"id":       b.ID,
			"subject":  truncateStr(b.Subject, 20),
			"day":      string(b.Day),
			"slot":     b.Slot,
			"duration": b.Duration,
		})
	}

	debugLog.log("GRID_STATE", map[string]any{
		"action": action,
		"batch":  string(store.Batch()),
		"dirty":  store.Dirty(),
		"blocks": positions,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if debugLog == nil || !debugLog.enabled {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

// modeString returns a string representation of a Mode.
func modeString(m Mode) string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeModal:
		return "Modal"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// truncateStr truncates a string to max runes, never splitting a rune.
func truncateStr(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
