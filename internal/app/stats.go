package app

import (
	"fmt"
	"time"

	"github.com/studywing/studywing/internal/stats"
	"github.com/studywing/studywing/models"
)

// RefreshStats recomputes the user's analysis snapshot from the current
// cards, quiz results and review log, persists it as the user's analysis
// document and returns it.
func (c *Context) RefreshStats(userID string, now time.Time) (models.AnalysisSnapshot, error) {
	cards, err := c.Cards.All(userID)
	if err != nil {
		return models.AnalysisSnapshot{}, err
	}
	quizzes, err := c.Quizzes.All(userID)
	if err != nil {
		return models.AnalysisSnapshot{}, err
	}
	reviews, err := c.Archive.Summarize(userID, now)
	if err != nil {
		return models.AnalysisSnapshot{}, fmt.Errorf("summarize reviews: %w", err)
	}

	snap := stats.BuildSnapshot(cards, quizzes, reviews, now)
	if err := c.Analysis.Put(userID, snap); err != nil {
		return models.AnalysisSnapshot{}, fmt.Errorf("persist snapshot: %w", err)
	}
	return snap, nil
}
