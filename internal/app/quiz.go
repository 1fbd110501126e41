package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/studywing/studywing/models"
)

// RecordQuiz stores a taken quiz's result at the newest end of the user's
// quiz history and returns it with the computed score.
func (c *Context) RecordQuiz(userID, topic, subject string, total, correct, durationSeconds int, now time.Time) (models.QuizResult, error) {
	q := models.NewQuizResult(uuid.NewString(), topic, total, correct, now)
	q.Subject = subject
	q.DurationSeconds = durationSeconds

	if err := models.ValidateStruct(q); err != nil {
		return models.QuizResult{}, fmt.Errorf("invalid quiz result: %w", err)
	}
	if err := c.Quizzes.Prepend(userID, *q); err != nil {
		return models.QuizResult{}, err
	}
	return *q, nil
}
