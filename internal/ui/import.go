package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AmanVerma1067/TTeditor/internal/codec"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

func (a *App) importCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Validate and display a timetable JSON file",
		Long: `Validate a timetable JSON file and print its contents.

The file must carry a "batch" string field; each day key present must
hold a list of class entries. Entries whose time matches no slot are
reported.

Example:
  tteditor import e16.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor {
				DisableColor()
			}

			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}

			info, err := os.Stat(path)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("file does not exist: %s", path)
				}
				return fmt.Errorf("checking file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("path is a directory: %s", path)
			}

			raw, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading file: %w", err)
			}

			data, err := codec.ParseFile(raw)
			if err != nil {
				return err
			}

			if dropped := unmatchedEntries(data); len(dropped) > 0 {
				fmt.Println(formatMuted(fmt.Sprintf("Warning: %d entries match no slot and will be dropped:", len(dropped))))
				for _, d := range dropped {
					fmt.Println(formatMuted("  " + d))
				}
				fmt.Println()
			}

			printTimetable(data, "")
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// unmatchedEntries lists entries whose time matches no slot.
func unmatchedEntries(data *codec.TimetableData) []string {
	var out []string
	for _, day := range timetable.Days {
		for _, entry := range data.DayEntries(day) {
			if timetable.SlotByStartHour(timetable.LeadingHour(entry.Time)) < 0 {
				out = append(out, fmt.Sprintf("%s %s %s", day, entry.Time, entry.Subject))
			}
		}
	}
	return out
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
