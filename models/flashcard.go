package models

import "time"

// Scheduling defaults shared by the scheduler and card constructors.
const (
	// DefaultEaseFactor is the ease assigned to a freshly created card.
	DefaultEaseFactor = 2.5
	// MinEaseFactor is the floor the ease factor can never drop below.
	MinEaseFactor = 1.3
)

// Flashcard is a single reviewable card with its spaced-repetition state.
type Flashcard struct {
	ID           string     `json:"id" validate:"required,uuid4"`
	SetID        string     `json:"setId,omitempty"`
	Front        string     `json:"front" validate:"required"`
	Back         string     `json:"back" validate:"required"`
	Topic        string     `json:"topic,omitempty"`
	Subject      string     `json:"subject,omitempty"`
	Interval     int        `json:"interval" validate:"min=0"`     // days until the next review
	EaseFactor   float64    `json:"easeFactor" validate:"min=1.3"` // grows on easy, shrinks on hard
	Repetitions  int        `json:"repetitions" validate:"min=0"`  // consecutive successful reviews
	NextReview   time.Time  `json:"nextReview" validate:"required"`
	LastReviewed *time.Time `json:"lastReviewed,omitempty"`
	CreatedAt    time.Time  `json:"createdAt" validate:"required"`
}

// NewFlashcard creates a card that is due immediately.
func NewFlashcard(id, front, back, topic string, now time.Time) *Flashcard {
	return &Flashcard{
		ID:          id,
		Front:       front,
		Back:        back,
		Topic:       topic,
		Interval:    0,
		EaseFactor:  DefaultEaseFactor,
		Repetitions: 0,
		NextReview:  now,
		CreatedAt:   now,
	}
}

// IsDue reports whether the card should be reviewed at the given time.
func (c Flashcard) IsDue(now time.Time) bool {
	return !c.NextReview.After(now)
}

// FlashcardPatch is a partial update for a stored card. Nil fields are left
// untouched by Apply.
type FlashcardPatch struct {
	Front        *string    `json:"front,omitempty"`
	Back         *string    `json:"back,omitempty"`
	Topic        *string    `json:"topic,omitempty"`
	Subject      *string    `json:"subject,omitempty"`
	Interval     *int       `json:"interval,omitempty"`
	EaseFactor   *float64   `json:"easeFactor,omitempty"`
	Repetitions  *int       `json:"repetitions,omitempty"`
	NextReview   *time.Time `json:"nextReview,omitempty"`
	LastReviewed *time.Time `json:"lastReviewed,omitempty"`
}

// Apply returns a copy of the card with the non-nil patch fields set.
func (p FlashcardPatch) Apply(c Flashcard) Flashcard {
	if p.Front != nil {
		c.Front = *p.Front
	}
	if p.Back != nil {
		c.Back = *p.Back
	}
	if p.Topic != nil {
		c.Topic = *p.Topic
	}
	if p.Subject != nil {
		c.Subject = *p.Subject
	}
	if p.Interval != nil {
		c.Interval = *p.Interval
	}
	if p.EaseFactor != nil {
		c.EaseFactor = *p.EaseFactor
	}
	if p.Repetitions != nil {
		c.Repetitions = *p.Repetitions
	}
	if p.NextReview != nil {
		c.NextReview = *p.NextReview
	}
	if p.LastReviewed != nil {
		c.LastReviewed = p.LastReviewed
	}
	return c
}

// PatchFromReview builds the patch that persists a scheduling result.
func PatchFromReview(c Flashcard) FlashcardPatch {
	return FlashcardPatch{
		Interval:     &c.Interval,
		EaseFactor:   &c.EaseFactor,
		Repetitions:  &c.Repetitions,
		NextReview:   &c.NextReview,
		LastReviewed: c.LastReviewed,
	}
}

// FlashcardSet groups the cards produced by one generation run.
type FlashcardSet struct {
	PublicID  string    `json:"publicId" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Topic     string    `json:"topic,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	CardCount int       `json:"cardCount" validate:"min=0"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}
