/*
Copyright © 2025 StudyWing Authors
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywing/studywing/internal/ingest"
	"github.com/studywing/studywing/internal/telemetry"
	"github.com/studywing/studywing/models"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <file...>",
	Short: "Import generation payload files",
	Long: `Import one or more payload files produced by the generation service.

Each payload is validated against its kind's schema and stored as a history
item. Flashcards payloads additionally create a card set whose cards are due
for review immediately; path payloads replace the learning path.

Examples:
  studywing import inbox/result.json
  studywing import inbox/*.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx, closeCtx, err := OpenContext()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeCtx()

	tc := buildTelemetry()
	defer func() { _ = tc.Close() }()

	ingestor := ingest.New(ctx)
	user := currentUser()
	imported := 0

	for _, path := range args {
		res, err := ingestor.IngestFile(user, path, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Skipped %s: %v\n", path, err)
			continue
		}
		imported++
		telemetry.TrackImport(tc, string(res.Kind), res.Cards)
		printIngestResult(path, res)
	}

	if imported == 0 {
		return fmt.Errorf("no payloads imported")
	}
	fmt.Printf("\n✅ Imported %d of %d payload(s)\n", imported, len(args))
	return nil
}

func printIngestResult(path string, res ingest.Result) {
	switch res.Kind {
	case models.KindFlashcards:
		fmt.Printf("📥 %s: %s on %q, %d new cards due now (set %s)\n", path, res.Kind, res.Topic, res.Cards, res.SetID)
	case models.KindPath:
		fmt.Printf("📥 %s: learning path for %q, %d steps\n", path, res.Topic, res.Steps)
	default:
		fmt.Printf("📥 %s: %s on %q\n", path, res.Kind, res.Topic)
	}
}
