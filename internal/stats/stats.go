// Package stats derives learning analytics from the current cards, recorded
// quiz results and the review log.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/studywing/studywing/internal/archive"
	"github.com/studywing/studywing/models"
)

// topicAgg accumulates per-topic sums before averaging.
type topicAgg struct {
	cards    int
	due      int
	mastered int
	easeSum  float64
	quizzes  int
	scoreSum float64
}

// BuildSnapshot computes the analytics document for one user from plain
// inputs. It performs no I/O; callers load the cards and quiz results and run
// the archive aggregates themselves.
//
// Cards without a topic count toward the global numbers but get no per-topic
// row.
func BuildSnapshot(cards []models.Flashcard, quizzes []models.QuizResult, reviews archive.Summary, now time.Time) models.AnalysisSnapshot {
	snap := models.AnalysisSnapshot{
		GeneratedAt:  now,
		TotalCards:   len(cards),
		TotalReviews: reviews.TotalReviews,
		ReviewsToday: reviews.ReviewsToday,
		StreakDays:   reviews.StreakDays,
		QuizCount:    len(quizzes),
	}

	byTopic := map[string]*topicAgg{}
	topicOf := func(topic string) *topicAgg {
		agg, ok := byTopic[topic]
		if !ok {
			agg = &topicAgg{}
			byTopic[topic] = agg
		}
		return agg
	}

	var easeSum float64
	for _, c := range cards {
		easeSum += c.EaseFactor
		due := c.IsDue(now)
		mastered := c.Interval >= models.MasteredIntervalDays
		if due {
			snap.DueCards++
		}
		if mastered {
			snap.MasteredCards++
		}
		if c.Topic == "" {
			continue
		}
		agg := topicOf(c.Topic)
		agg.cards++
		agg.easeSum += c.EaseFactor
		if due {
			agg.due++
		}
		if mastered {
			agg.mastered++
		}
	}
	if len(cards) > 0 {
		snap.AverageEase = round2(easeSum / float64(len(cards)))
	}

	var scoreSum float64
	for _, q := range quizzes {
		scoreSum += q.Score
		if q.Topic == "" {
			continue
		}
		agg := topicOf(q.Topic)
		agg.quizzes++
		agg.scoreSum += q.Score
	}
	if len(quizzes) > 0 {
		snap.QuizAccuracy = round2(scoreSum / float64(len(quizzes)))
	}

	names := make([]string, 0, len(byTopic))
	for name := range byTopic {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		agg := byTopic[name]
		ts := models.TopicStats{
			Topic:         name,
			CardCount:     agg.cards,
			DueCount:      agg.due,
			MasteredCount: agg.mastered,
			QuizCount:     agg.quizzes,
		}
		if agg.cards > 0 {
			ts.AverageEase = round2(agg.easeSum / float64(agg.cards))
		}
		if agg.quizzes > 0 {
			ts.QuizAccuracy = round2(agg.scoreSum / float64(agg.quizzes))
		}
		snap.Topics = append(snap.Topics, ts)
	}

	return snap
}

// round2 rounds to two decimals so averages export cleanly.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
