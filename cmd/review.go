/*
Copyright © 2025 StudyWing Authors
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/studywing/studywing/internal/telemetry"
	"github.com/studywing/studywing/internal/ui"
	"github.com/studywing/studywing/models"
	"github.com/studywing/studywing/srs"
)

var reviewList bool

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Review due flashcards",
	Long: `Start an interactive review session over the cards that are due.

Each card is shown face down. Press space to reveal the answer, then rate
your recall from 1 (again) to 4 (easy); the rating reschedules the card.
Every rating is saved immediately, so quitting mid-session loses nothing.

Use --list to print the due cards without starting a session.`,
	Args: cobra.NoArgs,
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)

	reviewCmd.Flags().BoolVarP(&reviewList, "list", "l", false, "list due cards instead of starting a session")
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx, closeCtx, err := OpenContext()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeCtx()

	user := currentUser()
	now := time.Now()

	due, err := ctx.DueCards(user, now, GetConfig().Review.MaxCards)
	if err != nil {
		return fmt.Errorf("load due cards: %w", err)
	}

	if reviewList {
		fmt.Println(ui.RenderCardsTable(due, now))
		return nil
	}

	if len(due) == 0 {
		fmt.Println(ui.RenderSessionSummary(ui.SessionResult{}))
		return nil
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	if !interactive {
		return fmt.Errorf("review needs a terminal; use 'studywing review --list' to print the %d due card(s)", len(due))
	}

	record := func(card models.Flashcard, rating srs.Rating, at time.Time) (models.Flashcard, error) {
		return ctx.RecordReview(user, card, rating, at)
	}

	result, err := ui.RunReviewSession(due, record)
	if err != nil {
		return fmt.Errorf("review session: %w", err)
	}

	tc := buildTelemetry()
	defer func() { _ = tc.Close() }()
	telemetry.TrackReviewSession(tc, result.Reviewed, result.Duration.Milliseconds())

	fmt.Println(ui.RenderSessionSummary(result))
	return nil
}
