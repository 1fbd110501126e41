/*
Copyright © 2025 StudyWing Authors
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywing/studywing/internal/ingest"
	"github.com/studywing/studywing/internal/telemetry"
	"github.com/studywing/studywing/internal/ui"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the inbox and import payloads as they arrive",
	Long: `Watch the inbox directory for payload files from the generation
service and import each one as soon as its writes settle. Payloads already
sitting in the inbox are imported on startup.

Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, closeCtx, err := OpenContext()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeCtx()

	tc := buildTelemetry()
	defer func() { _ = tc.Close() }()

	ingestor := ingest.New(ctx)
	user := currentUser()

	handler := func(path string) {
		res, err := ingestor.IngestFile(user, path, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Skipped %s: %v\n", path, err)
			return
		}
		telemetry.TrackImport(tc, string(res.Kind), res.Cards)
		printIngestResult(path, res)
	}

	watcher, err := ingest.NewWatcher(GetInboxDir(), handler, isVerbose())
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}

	ui.RenderPageHeader("StudyWing Watch", fmt.Sprintf("Inbox: %s (Ctrl+C to stop)", GetInboxDir()))

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	fmt.Printf("\n⏹️  Received %v, shutting down...\n", sig)

	watcher.Stop()
	return nil
}
