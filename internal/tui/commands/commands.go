// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/AmanVerma1067/TTeditor/internal/api"
	"github.com/AmanVerma1067/TTeditor/internal/codec"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

// TimetableLoadedMsg is sent when remote timetable data arrives.
type TimetableLoadedMsg struct {
	Batches []*codec.TimetableData
}

// HealthMsg is sent after an endpoint health probe.
type HealthMsg struct {
	Online bool
}

// ExportedMsg is sent when a timetable file has been written.
type ExportedMsg struct {
	Path string
}

// CopiedMsg is sent when the exported JSON reached the system clipboard.
type CopiedMsg struct{}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

const fetchTimeout = 20 * time.Second

// FetchTimetable fetches all batches from the remote endpoint.
func FetchTimetable(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		batches, err := client.FetchTimetable(ctx)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("fetching timetable: %w", err)}
		}
		return TimetableLoadedMsg{Batches: batches}
	}
}

// CheckHealth probes the remote endpoint.
func CheckHealth(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		return HealthMsg{Online: client.CheckHealth(ctx)}
	}
}

// ExportFile writes the timetable to a timestamped JSON file in dir.
func ExportFile(dir string, data *codec.TimetableData) tea.Cmd {
	return func() tea.Msg {
		if data == nil {
			return ErrMsg{Err: fmt.Errorf("nothing to export")}
		}

		b, err := codec.MarshalFile(data)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("encoding timetable: %w", err)}
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return ErrMsg{Err: fmt.Errorf("creating export dir: %w", err)}
		}

		name := fmt.Sprintf("timetable-%s-%s.json", data.Batch, time.Now().Format("20060102-150405"))
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, b, 0o644); err != nil {
			return ErrMsg{Err: fmt.Errorf("writing export: %w", err)}
		}

		return ExportedMsg{Path: path}
	}
}

// CopyToClipboard puts the exported timetable JSON on the system clipboard.
func CopyToClipboard(data *codec.TimetableData) tea.Cmd {
	return func() tea.Msg {
		if data == nil {
			return ErrMsg{Err: fmt.Errorf("nothing to copy")}
		}

		b, err := codec.MarshalFile(data)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("encoding timetable: %w", err)}
		}

		if err := clipboard.WriteAll(string(b)); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}

		return CopiedMsg{}
	}
}

// ClearStatusAfter clears the status line after a delay.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// BatchFor returns the cached timetable for a batch, or nil.
func BatchFor(batches []*codec.TimetableData, batch timetable.Batch) *codec.TimetableData {
	for _, b := range batches {
		if b != nil && b.Batch == batch {
			return b
		}
	}
	return nil
}
