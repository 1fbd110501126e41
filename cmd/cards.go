/*
Copyright © 2025 StudyWing Authors
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywing/studywing/internal/ui"
	"github.com/studywing/studywing/srs"
)

var cardsDue bool

// cardsCmd represents the cards command
var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List flashcards",
	Long: `List the user's flashcards with their scheduling state.

Examples:
  studywing cards          # all cards
  studywing cards --due    # only cards due for review`,
	Args: cobra.NoArgs,
	RunE: runCards,
}

func init() {
	rootCmd.AddCommand(cardsCmd)

	cardsCmd.Flags().BoolVar(&cardsDue, "due", false, "show only cards due for review")
}

func runCards(cmd *cobra.Command, args []string) error {
	ctx, closeCtx, err := OpenContext()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeCtx()

	now := time.Now()
	cards, err := ctx.Cards.All(currentUser())
	if err != nil {
		return fmt.Errorf("load cards: %w", err)
	}
	if cardsDue {
		cards = srs.Due(cards, now)
	}

	if len(cards) == 0 {
		if cardsDue {
			fmt.Println("No cards due. Come back later! 🎉")
		} else {
			fmt.Println("No flashcards yet. Try: studywing generate flashcards --topic \"...\"")
		}
		return nil
	}

	fmt.Println(ui.RenderCardsTable(cards, now))
	return nil
}
