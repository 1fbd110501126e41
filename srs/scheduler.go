package srs

import (
	"fmt"
	"math"
	"time"

	"github.com/studywing/studywing/models"
)

// Day is the fixed review-interval unit. Intervals are whole days on a
// 24-hour clock, independent of calendar or DST shifts.
const Day = 24 * time.Hour

// Tuning constants for the scheduling formulas.
const (
	AgainInterval      = 1    // days until a forgotten card comes back
	HardIntervalFactor = 1.2  // interval growth on a hard recall
	GoodIntervalFactor = 2.5  // interval growth on a good recall
	EasyIntervalFactor = 1.3  // multiplied by the ease factor on an easy recall
	EaseStep           = 0.15 // ease delta applied on hard (down) and easy (up)
)

// Schedule processes a review of the card at the given time. It returns the
// updated card; the input card is not mutated.
//
// Again resets the repetition streak and brings the card back in one day.
// Hard grows the interval slightly and lowers the ease factor. Good grows
// the interval by a fixed factor. Easy grows the interval proportionally to
// the ease factor and raises the ease. The ease factor never drops below
// models.MinEaseFactor; the interval after any review is at least one day.
func Schedule(card models.Flashcard, rating Rating, now time.Time) (models.Flashcard, error) {
	switch rating {
	case Again:
		card.Repetitions = 0
		card.Interval = AgainInterval

	case Hard:
		card.Interval = scaleInterval(card.Interval, HardIntervalFactor)
		card.EaseFactor = math.Max(models.MinEaseFactor, card.EaseFactor-EaseStep)
		card.Repetitions++

	case Good:
		card.Interval = scaleInterval(card.Interval, GoodIntervalFactor)
		card.Repetitions++

	case Easy:
		card.Interval = scaleInterval(card.Interval, EasyIntervalFactor*card.EaseFactor)
		card.EaseFactor += EaseStep
		card.Repetitions++

	default:
		return models.Flashcard{}, fmt.Errorf("%w: %d", ErrInvalidRating, int(rating))
	}

	card.NextReview = now.Add(time.Duration(card.Interval) * Day)
	card.LastReviewed = &now
	return card, nil
}

// scaleInterval multiplies an interval by a factor, rounding to whole days
// and never returning less than one day.
func scaleInterval(days int, factor float64) int {
	scaled := int(math.Round(float64(days) * factor))
	if scaled < 1 {
		return 1
	}
	return scaled
}

// Preview returns the result of reviewing the card with each possible rating.
// Useful for showing interval hints next to the rating choices.
func Preview(card models.Flashcard, now time.Time) map[Rating]models.Flashcard {
	result := make(map[Rating]models.Flashcard, len(ratingNames)-1)
	for _, r := range Ratings() {
		c, err := Schedule(card, r, now)
		if err != nil {
			continue
		}
		result[r] = c
	}
	return result
}

// Due returns the cards that should be reviewed at the given time, in the
// order they appear in the input. A card is due when its NextReview is at or
// before now. An empty result is a normal outcome, not an error.
func Due(cards []models.Flashcard, now time.Time) []models.Flashcard {
	due := make([]models.Flashcard, 0, len(cards))
	for _, c := range cards {
		if c.IsDue(now) {
			due = append(due, c)
		}
	}
	return due
}
