/*
Copyright © 2025 StudyWing Authors
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywing/studywing/internal/ui"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show study statistics",
	Long: `Recompute study statistics from the current cards, quiz results and
review log, store the snapshot, and render it.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx, closeCtx, err := OpenContext()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeCtx()

	snap, err := ctx.RefreshStats(currentUser(), time.Now())
	if err != nil {
		return fmt.Errorf("compute stats: %w", err)
	}

	fmt.Println(ui.RenderStats(snap))
	return nil
}
