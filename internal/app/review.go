package app

import (
	"fmt"
	"time"

	"github.com/studywing/studywing/internal/archive"
	"github.com/studywing/studywing/models"
	"github.com/studywing/studywing/srs"
)

// DueCards returns the user's cards that are due at now, in stored
// (newest-first) order. A limit of 0 means no cap.
func (c *Context) DueCards(userID string, now time.Time, limit int) ([]models.Flashcard, error) {
	cards, err := c.Cards.All(userID)
	if err != nil {
		return nil, err
	}
	due := srs.Due(cards, now)
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

// RecordReview reschedules a card for the given rating and persists the
// outcome: the card is patched in the store and the rating event appended to
// the review log. A card that vanished from the store since it was loaded is
// skipped silently. The rescheduled card is returned either way.
func (c *Context) RecordReview(userID string, card models.Flashcard, rating srs.Rating, now time.Time) (models.Flashcard, error) {
	updated, err := srs.Schedule(card, rating, now)
	if err != nil {
		return models.Flashcard{}, err
	}

	found, err := c.Cards.Update(userID, card.ID, models.PatchFromReview(updated))
	if err != nil {
		return models.Flashcard{}, fmt.Errorf("persist review: %w", err)
	}
	if !found {
		return updated, nil
	}

	if err := c.Archive.Append(archive.EntryFromReview(userID, card, updated, rating, now)); err != nil {
		return models.Flashcard{}, fmt.Errorf("log review: %w", err)
	}
	return updated, nil
}
