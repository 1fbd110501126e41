package models

import "time"

// MasteredIntervalDays is the review interval beyond which a card counts as
// mastered in analytics.
const MasteredIntervalDays = 21

// TopicStats is the per-topic slice of an analysis snapshot.
type TopicStats struct {
	Topic         string  `json:"topic"`
	CardCount     int     `json:"cardCount"`
	DueCount      int     `json:"dueCount"`
	MasteredCount int     `json:"masteredCount"`
	AverageEase   float64 `json:"averageEase"`
	QuizCount     int     `json:"quizCount"`
	QuizAccuracy  float64 `json:"quizAccuracy"`
}

// AnalysisSnapshot is the computed learning-analytics document. Each user
// keeps exactly one; it is recomputed on demand and replaced wholesale.
type AnalysisSnapshot struct {
	GeneratedAt   time.Time    `json:"generatedAt" validate:"required"`
	TotalCards    int          `json:"totalCards"`
	DueCards      int          `json:"dueCards"`
	MasteredCards int          `json:"masteredCards"`
	AverageEase   float64      `json:"averageEase"`
	TotalReviews  int          `json:"totalReviews"`
	ReviewsToday  int          `json:"reviewsToday"`
	StreakDays    int          `json:"streakDays"`
	QuizCount     int          `json:"quizCount"`
	QuizAccuracy  float64      `json:"quizAccuracy"`
	Topics        []TopicStats `json:"topics,omitempty"`
}
