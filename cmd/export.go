/*
Copyright © 2025 StudyWing Authors
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywing/studywing/internal/telemetry"
	"github.com/studywing/studywing/store"
)

var (
	exportFormat string
	exportOutput string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all study data as one snapshot",
	Long: `Export every collection of the current user into a single snapshot
document for backup or migration.

Examples:
  studywing export                               # JSON to stdout
  studywing export --format yaml -o backup.yaml  # YAML to a file`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", store.FormatJSON, "output format: json or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, closeCtx, err := OpenContext()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeCtx()

	data, err := ctx.Store.Export(currentUser(), exportFormat, time.Now())
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	tc := buildTelemetry()
	defer func() { _ = tc.Close() }()
	telemetry.TrackExport(tc, exportFormat)

	if exportOutput == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	fmt.Printf("✅ Exported to %s (%d bytes)\n", exportOutput, len(data))
	return nil
}
