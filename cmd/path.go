/*
Copyright © 2025 StudyWing Authors
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywing/studywing/internal/ui"
	"github.com/studywing/studywing/internal/util"
)

// pathCmd represents the path command
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the learning path",
	Long: `Show the user's learning path: the ordered steps toward a study goal.

Mark progress with 'studywing path done <step-id>'.`,
	Args: cobra.NoArgs,
	RunE: runPath,
}

var pathDoneCmd = &cobra.Command{
	Use:   "done <step-id>",
	Short: "Mark a learning path step as completed",
	Long: `Mark a learning path step as completed.

The step may be given by full ID or any unique prefix.`,
	Args: cobra.ExactArgs(1),
	RunE: runPathDone,
}

func init() {
	rootCmd.AddCommand(pathCmd)
	pathCmd.AddCommand(pathDoneCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	ctx, closeCtx, err := OpenContext()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeCtx()

	path, ok, err := ctx.Path.Get(currentUser())
	if err != nil {
		return fmt.Errorf("load learning path: %w", err)
	}
	if !ok {
		fmt.Println("No learning path yet. Try: studywing generate path --topic \"...\"")
		return nil
	}

	fmt.Println(ui.RenderPath(path))
	return nil
}

func runPathDone(cmd *cobra.Command, args []string) error {
	ctx, closeCtx, err := OpenContext()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeCtx()

	user := currentUser()

	current, ok, err := ctx.Path.Get(user)
	if err != nil {
		return fmt.Errorf("load learning path: %w", err)
	}
	if !ok {
		return fmt.Errorf("no learning path yet; generate and import one first")
	}

	ids := make([]string, 0, len(current.Steps))
	for _, step := range current.Steps {
		ids = append(ids, step.ID)
	}
	stepID, err := util.ResolveID(args[0], ids, "step")
	if err != nil {
		return err
	}

	path, found, err := ctx.CompleteStep(user, stepID, time.Now())
	if err != nil {
		return fmt.Errorf("complete step: %w", err)
	}
	if !found {
		return fmt.Errorf("no step with id %q in the learning path", stepID)
	}

	fmt.Printf("✅ Step done. %d of %d steps completed.\n", path.CompletedSteps(), len(path.Steps))
	return nil
}
