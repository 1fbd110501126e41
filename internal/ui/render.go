package ui

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/studywing/studywing/models"
)

var titleCaser = cases.Title(language.English)

// RenderCardsTable renders flashcards as an aligned table.
func RenderCardsTable(cards []models.Flashcard, now time.Time) string {
	if len(cards) == 0 {
		return StyleSubtle.Render(" No flashcards yet.") + "\n"
	}

	t := Table{
		Headers:  []string{"ID", "FRONT", "TOPIC", "DUE", "IVL", "EASE"},
		MaxWidth: 40,
		NumCols:  map[int]bool{4: true, 5: true},
	}
	for _, c := range cards {
		t.Rows = append(t.Rows, []string{
			TruncateID(c.ID),
			c.Front,
			c.Topic,
			formatDue(c.NextReview, now),
			fmt.Sprintf("%dd", c.Interval),
			fmt.Sprintf("%.2f", c.EaseFactor),
		})
	}
	return t.Render()
}

// formatDue renders a due date relative to now: "now" for anything due,
// otherwise the number of days until the review.
func formatDue(next, now time.Time) string {
	if !next.After(now) {
		return "now"
	}
	days := int(next.Sub(now).Hours() / 24)
	if days < 1 {
		return "<1d"
	}
	return fmt.Sprintf("in %dd", days)
}

// RenderHistoryTable renders generated-content history, newest first.
func RenderHistoryTable(items []models.HistoryItem) string {
	if len(items) == 0 {
		return StyleSubtle.Render(" No study material yet. Try: studywing generate notes --topic \"...\"") + "\n"
	}

	t := Table{
		Headers:  []string{"ID", "KIND", "TOPIC", "SUBJECT", "CREATED"},
		MaxWidth: 32,
	}
	for _, h := range items {
		t.Rows = append(t.Rows, []string{
			TruncateID(h.ID),
			string(h.Kind),
			h.Topic,
			h.Subject,
			h.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return t.Render()
}

// RenderQuizTable renders recorded quiz results, newest first.
func RenderQuizTable(results []models.QuizResult) string {
	if len(results) == 0 {
		return StyleSubtle.Render(" No quiz results recorded yet.") + "\n"
	}

	t := Table{
		Headers:  []string{"ID", "TOPIC", "SCORE", "CORRECT", "TAKEN"},
		MaxWidth: 32,
		NumCols:  map[int]bool{2: true, 3: true},
	}
	for _, q := range results {
		t.Rows = append(t.Rows, []string{
			TruncateID(q.ID),
			q.Topic,
			fmt.Sprintf("%.0f%%", q.Score),
			fmt.Sprintf("%d/%d", q.CorrectAnswers, q.Total),
			q.TakenAt.Format("2006-01-02"),
		})
	}
	return t.Render()
}

// RenderPath renders the learning path with completion checkmarks.
func RenderPath(path models.LearningPath) string {
	if len(path.Steps) == 0 {
		return StyleSubtle.Render(" No learning path yet.") + "\n"
	}

	var b strings.Builder
	title := path.Subject
	if path.Goal != "" {
		title += " · " + path.Goal
	}
	b.WriteString(" " + StyleSectionTitle.Render(title) + "\n\n")

	done := 0
	for _, step := range path.Steps {
		mark := StyleSubtle.Render("○")
		if step.Completed {
			mark = StyleSuccess.Render("✓")
			done++
		}
		b.WriteString(fmt.Sprintf(" %s %s %s\n", mark, StyleSubtle.Render(step.ID), StyleText.Render(step.Title)))
		if step.Description != "" {
			b.WriteString("     " + StyleSubtle.Render(Truncate(step.Description, 70)) + "\n")
		}
	}

	b.WriteString("\n " + StyleSubtle.Render(fmt.Sprintf("%d of %d steps done", done, len(path.Steps))) + "\n")
	return b.String()
}

// RenderStats renders the learning-analytics snapshot: overview panel,
// review streak, and a per-topic breakdown with mastery bars.
func RenderStats(s models.AnalysisSnapshot) string {
	var b strings.Builder

	overview := fmt.Sprintf(
		"Cards: %d total · %d due · %d mastered\nReviews: %d total · %d today · %d day streak\nQuizzes: %d taken",
		s.TotalCards, s.DueCards, s.MasteredCards,
		s.TotalReviews, s.ReviewsToday, s.StreakDays,
		s.QuizCount,
	)
	if s.QuizCount > 0 {
		overview += fmt.Sprintf(" · %.0f%% average", s.QuizAccuracy)
	}
	b.WriteString(RenderInfoPanel("📊 Study stats", overview))
	b.WriteString("\n")

	if len(s.Topics) > 0 {
		b.WriteString("\n " + StyleSectionTitle.Render("Topics") + "\n\n")
		for _, topic := range s.Topics {
			b.WriteString(renderTopicLine(topic))
		}
	}

	b.WriteString("\n " + StyleSubtle.Render("generated "+s.GeneratedAt.Format("2006-01-02 15:04")) + "\n")
	return b.String()
}

// renderTopicLine renders one topic with a 10-char mastery bar.
func renderTopicLine(t models.TopicStats) string {
	name := titleCaser.String(t.Topic)
	if len(name) > 24 {
		name = name[:21] + "..."
	}

	barLen := 10
	filled := 0
	if t.CardCount > 0 {
		filled = barLen * t.MasteredCount / t.CardCount
	}
	bar := StyleSuccess.Render(strings.Repeat("█", filled)) +
		StyleSubtle.Render(strings.Repeat("░", barLen-filled))

	line := fmt.Sprintf(" %-24s %s %2d/%2d mastered · %d due", name, bar, t.MasteredCount, t.CardCount, t.DueCount)
	if t.QuizCount > 0 {
		line += fmt.Sprintf(" · quizzes %.0f%%", t.QuizAccuracy)
	}
	return line + "\n"
}
