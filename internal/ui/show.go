package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AmanVerma1067/TTeditor/internal/api"
	"github.com/AmanVerma1067/TTeditor/internal/codec"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

func (a *App) showCmd() *cobra.Command {
	var batchFlag string
	var dayFlag string
	var noColor bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a batch timetable from the remote endpoint",
		Long: `Fetch a batch timetable and print it without starting the editor.

Example:
  tteditor show
  tteditor show --batch E15 --day Monday`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			batch := a.config.Batch()
			if batchFlag != "" {
				batch = timetable.Batch(batchFlag)
				if !timetable.ValidBatch(batch) {
					return fmt.Errorf("unknown batch %q", batchFlag)
				}
			}

			var day timetable.Day
			if dayFlag != "" {
				day = timetable.Day(dayFlag)
				if !timetable.ValidDay(day) {
					return fmt.Errorf("unknown day %q", dayFlag)
				}
			}

			client := api.New(a.config.API.BaseURL, time.Duration(a.config.API.TimeoutSeconds)*time.Second)
			data, err := client.FetchBatch(context.Background(), batch)
			if err != nil {
				return fmt.Errorf("fetching timetable: %w", err)
			}

			printTimetable(data, day)
			return nil
		},
	}

	cmd.Flags().StringVarP(&batchFlag, "batch", "b", "", "Batch to show (E15, E16, E17)")
	cmd.Flags().StringVarP(&dayFlag, "day", "d", "", "Show a single day only")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// printTimetable prints a batch timetable, optionally restricted to one day.
func printTimetable(data *codec.TimetableData, only timetable.Day) {
	fmt.Printf("=== %s ===\n\n", formatHeader(fmt.Sprintf("Batch %s", data.Batch)))

	maxSubjWidth := calcMaxSubjWidth(40)
	var stats Stats
	for _, day := range timetable.Days {
		if only != "" && day != only {
			continue
		}
		entries := data.DayEntries(day)
		PrintDay(day, entries, maxSubjWidth)
		fmt.Println()
		for _, entry := range entries {
			AccumulateStats(&stats, day, entry)
		}
	}

	PrintStats(stats)
	if stats.TotalClasses() > 0 && only == "" {
		fmt.Printf("Load: %s\n", UtilizationBar(stats.TotalClasses(), 20))
	}
}
