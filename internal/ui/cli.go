// Package ui implements the TTeditor command line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AmanVerma1067/TTeditor/internal/config"
	"github.com/AmanVerma1067/TTeditor/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "tteditor",
		Short: "A TUI editor for weekly class timetables",
		Long: `TTeditor is a terminal editor for weekly class timetables.

It fetches batch timetables from the shared schedule endpoint, lets you
edit them in a conflict-checked grid with undo/redo, and exports the
result as a JSON timetable file.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.config, a.debug)
		},
	}

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to tteditor-debug.log)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("tteditor %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
