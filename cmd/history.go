/*
Copyright © 2025 StudyWing Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studywing/studywing/internal/ui"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List generated study material, newest first",
	Long: `List the user's generation history, newest first.

Examples:
  studywing history              # everything
  studywing history --limit 10   # the ten most recent items
  studywing history clear        # wipe the history`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the generation history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, closeCtx, err := OpenContext()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer closeCtx()

		if err := ctx.History.Clear(currentUser()); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Println("✅ History cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "show at most this many items (0 = all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx, closeCtx, err := OpenContext()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeCtx()

	items, err := ctx.History.All(currentUser())
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	if historyLimit > 0 && len(items) > historyLimit {
		items = items[:historyLimit]
	}

	fmt.Println(ui.RenderHistoryTable(items))
	return nil
}
