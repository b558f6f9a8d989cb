package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/AmanVerma1067/TTeditor/internal/api"
	"github.com/AmanVerma1067/TTeditor/internal/codec"
	"github.com/AmanVerma1067/TTeditor/internal/timetable"
)

func (a *App) exportCmd() *cobra.Command {
	var batchFlag string
	var outFlag string
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a batch timetable as a JSON file",
		Long: `Fetch a batch timetable and write it as a JSON timetable file.

Example:
  tteditor export
  tteditor export --batch E17 --out e17.json
  tteditor export --clipboard`,
		RunE: func(_ *cobra.Command, _ []string) error {
			batch := a.config.Batch()
			if batchFlag != "" {
				batch = timetable.Batch(batchFlag)
				if !timetable.ValidBatch(batch) {
					return fmt.Errorf("unknown batch %q", batchFlag)
				}
			}

			client := api.New(a.config.API.BaseURL, time.Duration(a.config.API.TimeoutSeconds)*time.Second)
			data, err := client.FetchBatch(context.Background(), batch)
			if err != nil {
				return fmt.Errorf("fetching timetable: %w", err)
			}

			b, err := codec.MarshalFile(data)
			if err != nil {
				return err
			}

			if toClipboard {
				if err := clipboard.WriteAll(string(b)); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Printf("Copied batch %s timetable to clipboard\n", batch)
				return nil
			}

			path := outFlag
			if path == "" {
				name := fmt.Sprintf("timetable-%s-%s.json", batch, time.Now().Format("20060102-150405"))
				path = filepath.Join(a.config.Timetable.ExportDir, name)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("creating export dir: %w", err)
			}
			if err := os.WriteFile(path, b, 0o644); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			fmt.Printf("Exported batch %s timetable to %s\n", batch, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&batchFlag, "batch", "b", "", "Batch to export (E15, E16, E17)")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output file path")
	cmd.Flags().BoolVarP(&toClipboard, "clipboard", "c", false, "Copy JSON to the system clipboard instead of a file")
	return cmd
}
