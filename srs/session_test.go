package srs

import (
	"errors"
	"testing"

	"github.com/studywing/studywing/models"
)

func sessionDeck() []models.Flashcard {
	return []models.Flashcard{
		{ID: "due-1", Front: "f1", Back: "b1", Interval: 1, EaseFactor: 2.5, NextReview: t0.Add(-Day)},
		{ID: "future", Front: "f2", Back: "b2", Interval: 10, EaseFactor: 2.5, NextReview: t0.Add(5 * Day)},
		{ID: "due-2", Front: "f3", Back: "b3", Interval: 2, EaseFactor: 2.2, NextReview: t0},
	}
}

func TestNewSessionSelectsDueCards(t *testing.T) {
	s := NewSession(sessionDeck(), t0)

	if s.State() != SessionIdle {
		t.Errorf("State = %v, want Idle", s.State())
	}
	if s.Total() != 2 {
		t.Errorf("Total = %d, want 2", s.Total())
	}
	current, ok := s.Current()
	if !ok || current.ID != "due-1" {
		t.Errorf("Current = %v, %v; want due-1", current.ID, ok)
	}
	if s.Position() != 1 {
		t.Errorf("Position = %d, want 1", s.Position())
	}
}

func TestNewSessionEmptyDeckIsComplete(t *testing.T) {
	s := NewSession(nil, t0)
	if s.State() != SessionComplete {
		t.Errorf("State = %v, want Complete", s.State())
	}
	if _, ok := s.Current(); ok {
		t.Error("Current should report no card for a complete session")
	}
}

func TestNewSessionNothingDueIsComplete(t *testing.T) {
	cards := []models.Flashcard{{ID: "future", NextReview: t0.Add(Day)}}
	s := NewSession(cards, t0)
	if s.State() != SessionComplete {
		t.Errorf("State = %v, want Complete", s.State())
	}
	if s.Total() != 0 {
		t.Errorf("Total = %d, want 0", s.Total())
	}
}

func TestSessionRevealThenRate(t *testing.T) {
	s := NewSession(sessionDeck(), t0)

	if err := s.Reveal(); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if s.State() != SessionAwaitingRating {
		t.Errorf("State after Reveal = %v, want AwaitingRating", s.State())
	}

	updated, err := s.Rate(Good, t0)
	if err != nil {
		t.Fatalf("Rate: %v", err)
	}
	if updated.ID != "due-1" {
		t.Errorf("Rate returned card %q, want due-1", updated.ID)
	}
	if updated.Repetitions != 1 {
		t.Errorf("rated card Repetitions = %d, want 1", updated.Repetitions)
	}
	if s.State() != SessionIdle {
		t.Errorf("State after Rate = %v, want Idle for next card", s.State())
	}
	current, _ := s.Current()
	if current.ID != "due-2" {
		t.Errorf("Current after Rate = %q, want due-2", current.ID)
	}
	if s.Position() != 2 {
		t.Errorf("Position = %d, want 2", s.Position())
	}
}

func TestSessionCompletesAfterLastCard(t *testing.T) {
	s := NewSession(sessionDeck(), t0)

	for s.State() != SessionComplete {
		if err := s.Reveal(); err != nil {
			t.Fatalf("Reveal: %v", err)
		}
		if _, err := s.Rate(Easy, t0); err != nil {
			t.Fatalf("Rate: %v", err)
		}
	}

	if s.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", s.Remaining())
	}
	reviewed := s.Reviewed()
	if len(reviewed) != 2 {
		t.Fatalf("Reviewed = %d cards, want 2", len(reviewed))
	}
	if reviewed[0].ID != "due-1" || reviewed[1].ID != "due-2" {
		t.Errorf("Reviewed order = [%s %s], want [due-1 due-2]", reviewed[0].ID, reviewed[1].ID)
	}
}

func TestSessionRateBeforeReveal(t *testing.T) {
	s := NewSession(sessionDeck(), t0)
	if _, err := s.Rate(Good, t0); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Rate before Reveal error = %v, want ErrInvalidTransition", err)
	}
}

func TestSessionDoubleReveal(t *testing.T) {
	s := NewSession(sessionDeck(), t0)
	if err := s.Reveal(); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	if err := s.Reveal(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Reveal error = %v, want ErrInvalidTransition", err)
	}
}

func TestSessionActionsAfterComplete(t *testing.T) {
	s := NewSession(nil, t0)
	if err := s.Reveal(); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Reveal on complete session error = %v, want ErrSessionComplete", err)
	}
	if _, err := s.Rate(Good, t0); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Rate on complete session error = %v, want ErrSessionComplete", err)
	}
}

func TestSessionDueSetFixedAtStart(t *testing.T) {
	// due-1 rated Again comes back tomorrow; the running session must not
	// pick it up again even though a fresh session at t0+2d would.
	deck := sessionDeck()
	s := NewSession(deck, t0)

	if err := s.Reveal(); err != nil {
		t.Fatalf("Reveal: %v", err)
	}
	later := t0.Add(2 * Day)
	if _, err := s.Rate(Again, later); err != nil {
		t.Fatalf("Rate: %v", err)
	}

	if s.Total() != 2 {
		t.Errorf("Total changed mid-session: %d", s.Total())
	}
	current, _ := s.Current()
	if current.ID != "due-2" {
		t.Errorf("Current = %q, want due-2", current.ID)
	}
}

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		s    SessionState
		want string
	}{
		{SessionIdle, "Idle"},
		{SessionAwaitingRating, "AwaitingRating"},
		{SessionComplete, "Complete"},
		{SessionState(0), "SessionState(0)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("SessionState(%d).String() = %q, want %q", int(tt.s), got, tt.want)
		}
	}
}
