package models

import "time"

// QuizAnswer captures a single answered question inside a quiz attempt.
type QuizAnswer struct {
	Question string `json:"question" validate:"required"`
	Selected string `json:"selected"`
	Expected string `json:"expected"`
	Correct  bool   `json:"correct"`
}

// QuizResult records one completed quiz attempt. Results are kept newest-first.
type QuizResult struct {
	ID              string       `json:"id" validate:"required,uuid4"`
	Topic           string       `json:"topic" validate:"required"`
	Subject         string       `json:"subject,omitempty"`
	Total           int          `json:"total" validate:"required,min=1"`
	CorrectAnswers  int          `json:"correctAnswers" validate:"min=0"`
	Score           float64      `json:"score" validate:"min=0,max=100"`
	DurationSeconds int          `json:"durationSeconds,omitempty" validate:"min=0"`
	TakenAt         time.Time    `json:"takenAt" validate:"required"`
	Answers         []QuizAnswer `json:"answers,omitempty" validate:"dive"`
}

// NewQuizResult computes the score from the correct/total counts.
func NewQuizResult(id, topic string, total, correct int, takenAt time.Time) *QuizResult {
	r := &QuizResult{
		ID:             id,
		Topic:          topic,
		Total:          total,
		CorrectAnswers: correct,
		TakenAt:        takenAt,
	}
	if total > 0 {
		r.Score = float64(correct) / float64(total) * 100
	}
	return r
}
