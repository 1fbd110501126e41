package srs

import (
	"fmt"
	"time"

	"github.com/studywing/studywing/models"
)

// SessionState represents where a review session is in its lifecycle.
type SessionState int

const (
	SessionIdle           SessionState = iota + 1 // Current card shown face-down.
	SessionAwaitingRating                         // Answer revealed, waiting for a rating.
	SessionComplete                               // No cards left to review.
)

var sessionStateNames = [...]string{
	SessionIdle:           "Idle",
	SessionAwaitingRating: "AwaitingRating",
	SessionComplete:       "Complete",
}

// String returns the name of the state. For invalid values it returns
// "SessionState(n)".
func (s SessionState) String() string {
	if s >= SessionIdle && s <= SessionComplete {
		return sessionStateNames[s]
	}
	return fmt.Sprintf("SessionState(%d)", int(s))
}

// Session walks a user through the cards due at its start time, one at a
// time. Each card is shown face-down, revealed, then rated; rating schedules
// the card and advances the queue. Sessions are single-use: a fresh review
// pass starts a fresh session so the due set is re-evaluated.
//
// Session is not safe for concurrent use.
type Session struct {
	queue    []models.Flashcard
	index    int
	state    SessionState
	reviewed []models.Flashcard
}

// NewSession selects the due cards from the deck, preserving deck order, and
// starts a session over them. With nothing due the session begins complete.
func NewSession(cards []models.Flashcard, now time.Time) *Session {
	s := &Session{
		queue: Due(cards, now),
		state: SessionIdle,
	}
	if len(s.queue) == 0 {
		s.state = SessionComplete
	}
	return s
}

// State returns the current session state.
func (s *Session) State() SessionState {
	return s.state
}

// Current returns the card being reviewed. The second return is false once
// the session is complete.
func (s *Session) Current() (models.Flashcard, bool) {
	if s.state == SessionComplete {
		return models.Flashcard{}, false
	}
	return s.queue[s.index], true
}

// Reveal turns the current card face-up so it can be rated.
// It is only valid while the card is face-down.
func (s *Session) Reveal() error {
	switch s.state {
	case SessionIdle:
		s.state = SessionAwaitingRating
		return nil
	case SessionComplete:
		return ErrSessionComplete
	default:
		return fmt.Errorf("%w: reveal in state %s", ErrInvalidTransition, s.state)
	}
}

// Rate applies the rating to the revealed card and advances to the next one.
// It returns the rescheduled card so the caller can persist it before the
// session moves on. Rating is only valid after Reveal.
func (s *Session) Rate(rating Rating, now time.Time) (models.Flashcard, error) {
	if s.state == SessionComplete {
		return models.Flashcard{}, ErrSessionComplete
	}
	if s.state != SessionAwaitingRating {
		return models.Flashcard{}, fmt.Errorf("%w: rate in state %s", ErrInvalidTransition, s.state)
	}

	updated, err := Schedule(s.queue[s.index], rating, now)
	if err != nil {
		return models.Flashcard{}, err
	}
	s.reviewed = append(s.reviewed, updated)

	s.index++
	if s.index >= len(s.queue) {
		s.state = SessionComplete
	} else {
		s.state = SessionIdle
	}
	return updated, nil
}

// Position returns the 1-based number of the card being reviewed. Once the
// session completes it equals Total.
func (s *Session) Position() int {
	if s.index >= len(s.queue) {
		return len(s.queue)
	}
	return s.index + 1
}

// Total returns the number of cards the session started with.
func (s *Session) Total() int {
	return len(s.queue)
}

// Remaining returns the number of cards not yet rated.
func (s *Session) Remaining() int {
	return len(s.queue) - s.index
}

// Reviewed returns the rescheduled cards in the order they were rated.
func (s *Session) Reviewed() []models.Flashcard {
	out := make([]models.Flashcard, len(s.reviewed))
	copy(out, s.reviewed)
	return out
}
