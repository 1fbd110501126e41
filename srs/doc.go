// Package srs implements spaced-repetition scheduling for flashcards.
//
// Schedule is a pure function that applies a review rating to a card and
// computes its next review date; Due filters a deck down to the cards that
// should be reviewed now. Session drives an interactive review pass over the
// due cards: reveal the answer, rate the recall, move on.
//
// Basic usage:
//
//	due := srs.Due(cards, time.Now())
//	updated, err := srs.Schedule(due[0], srs.Good, time.Now())
//	if err != nil {
//	    log.Fatal(err)
//	}
package srs
