package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/studywing/studywing/models"
)

var renderNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestRenderCardsTable(t *testing.T) {
	overdue := *models.NewFlashcard("11111111-2222-4333-8444-555555555555", "What is SM-2?", "A scheduling algorithm", "srs", renderNow.Add(-48*time.Hour))
	scheduled := overdue
	scheduled.ID = "66666666-2222-4333-8444-555555555555"
	scheduled.Front = "Interval growth"
	scheduled.Interval = 25
	scheduled.NextReview = renderNow.Add(25 * 24 * time.Hour)

	out := RenderCardsTable([]models.Flashcard{overdue, scheduled}, renderNow)

	assert.Contains(t, out, "What is SM-2?")
	assert.Contains(t, out, "111111") // truncated id
	assert.Contains(t, out, "now")
	assert.Contains(t, out, "in 25d")
	assert.Contains(t, out, "2.50")
}

func TestRenderCardsTable_Empty(t *testing.T) {
	out := RenderCardsTable(nil, renderNow)
	assert.Contains(t, out, "No flashcards yet")
}

func TestFormatDue(t *testing.T) {
	tests := []struct {
		name string
		next time.Time
		want string
	}{
		{"overdue", renderNow.Add(-time.Hour), "now"},
		{"due exactly now", renderNow, "now"},
		{"later today", renderNow.Add(6 * time.Hour), "<1d"},
		{"tomorrow", renderNow.Add(25 * time.Hour), "in 1d"},
		{"next month", renderNow.Add(30 * 24 * time.Hour), "in 30d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDue(tt.next, renderNow))
		})
	}
}

func TestRenderHistoryTable(t *testing.T) {
	items := []models.HistoryItem{
		{
			ID:        "aaaaaaaa-2222-4333-8444-555555555555",
			Kind:      models.KindNotes,
			Topic:     "photosynthesis",
			Subject:   "biology",
			CreatedAt: renderNow,
		},
	}

	out := RenderHistoryTable(items)
	assert.Contains(t, out, "notes")
	assert.Contains(t, out, "photosynthesis")
	assert.Contains(t, out, "2025-06-15")

	assert.Contains(t, RenderHistoryTable(nil), "No study material yet")
}

func TestRenderQuizTable(t *testing.T) {
	results := []models.QuizResult{
		*models.NewQuizResult("bbbbbbbb-2222-4333-8444-555555555555", "algebra", 10, 8, renderNow),
	}

	out := RenderQuizTable(results)
	assert.Contains(t, out, "algebra")
	assert.Contains(t, out, "80%")
	assert.Contains(t, out, "8/10")

	assert.Contains(t, RenderQuizTable(nil), "No quiz results")
}

func TestRenderPath(t *testing.T) {
	done := renderNow.Add(-time.Hour)
	path := models.LearningPath{
		Subject:     "math",
		Goal:        "pass finals",
		GeneratedAt: renderNow,
		Steps: []models.LearningPathStep{
			{ID: "step-1", Title: "Fractions", Completed: true, CompletedAt: &done},
			{ID: "step-2", Title: "Linear equations", Description: "Solve for x in one-variable equations"},
		},
	}

	out := RenderPath(path)
	assert.Contains(t, out, "math · pass finals")
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "Fractions")
	assert.Contains(t, out, "Linear equations")
	assert.Contains(t, out, "1 of 2 steps done")

	assert.Contains(t, RenderPath(models.LearningPath{}), "No learning path yet")
}

func TestRenderStats(t *testing.T) {
	snapshot := models.AnalysisSnapshot{
		GeneratedAt:   renderNow,
		TotalCards:    10,
		DueCards:      4,
		MasteredCards: 2,
		AverageEase:   2.5,
		TotalReviews:  120,
		ReviewsToday:  6,
		StreakDays:    7,
		QuizCount:     3,
		QuizAccuracy:  85,
		Topics: []models.TopicStats{
			{Topic: "go", CardCount: 6, DueCount: 1, MasteredCount: 3, QuizCount: 2, QuizAccuracy: 90},
			{Topic: "math", CardCount: 4, DueCount: 3, MasteredCount: 0},
		},
	}

	out := RenderStats(snapshot)
	assert.Contains(t, out, "10 total")
	assert.Contains(t, out, "4 due")
	assert.Contains(t, out, "7 day streak")
	assert.Contains(t, out, "85% average")
	assert.Contains(t, out, "Go")   // title-cased topic
	assert.Contains(t, out, "Math")
	assert.Contains(t, out, "quizzes 90%")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "generated 2025-06-15")
}

func TestRenderTopicLine_NoCards(t *testing.T) {
	// A topic that only has quiz results must not divide by zero.
	line := renderTopicLine(models.TopicStats{Topic: "history", QuizCount: 1, QuizAccuracy: 70})
	assert.Contains(t, line, "History")
	assert.Contains(t, line, "quizzes 70%")
}
