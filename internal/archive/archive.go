// Package archive keeps the append-only review log in SQLite. The JSON
// collections in the store hold current state; the log holds every rating
// event ever made, so streaks and accuracy survive card edits and pruning.
package archive

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/studywing/studywing/models"
	"github.com/studywing/studywing/srs"
)

// Log is the append-only review log. Rows are never updated or deleted.
type Log struct {
	db *sql.DB
}

// Entry records a single rating event.
type Entry struct {
	UserID         string
	CardID         string
	Rating         srs.Rating
	IntervalBefore int
	IntervalAfter  int
	EaseBefore     float64
	EaseAfter      float64
	ReviewedAt     time.Time
}

// EntryFromReview builds the log entry for a card that was just rescheduled.
func EntryFromReview(userID string, before, after models.Flashcard, rating srs.Rating, now time.Time) Entry {
	return Entry{
		UserID:         userID,
		CardID:         before.ID,
		Rating:         rating,
		IntervalBefore: before.Interval,
		IntervalAfter:  after.Interval,
		EaseBefore:     before.EaseFactor,
		EaseAfter:      after.EaseFactor,
		ReviewedAt:     now,
	}
}

// Open opens the review log at path, creating the file and its directory as
// needed. Pass ":memory:" for an in-memory database.
func Open(path string) (*Log, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("create archive directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows one writer, and every pooled connection to ":memory:"
	// would otherwise see its own empty database.
	db.SetMaxOpenConns(1)

	l := &Log{db: db}
	if err := l.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return l, nil
}

// initSchema creates the log table if it doesn't exist.
func (l *Log) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS review_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		card_id TEXT NOT NULL,
		rating TEXT NOT NULL,
		interval_before INTEGER NOT NULL,
		interval_after INTEGER NOT NULL,
		ease_before REAL NOT NULL,
		ease_after REAL NOT NULL,
		reviewed_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_review_log_user ON review_log(user_id);
	CREATE INDEX IF NOT EXISTS idx_review_log_card ON review_log(user_id, card_id);
	CREATE INDEX IF NOT EXISTS idx_review_log_day ON review_log(user_id, reviewed_at);
	`

	_, err := l.db.Exec(schema)
	return err
}

// Append records one rating event. Timestamps are stored as RFC 3339 in UTC
// so day aggregates can compare date prefixes directly.
func (l *Log) Append(e Entry) error {
	if e.UserID == "" || e.CardID == "" {
		return fmt.Errorf("archive: entry needs user and card ids")
	}
	if !e.Rating.IsValid() {
		return fmt.Errorf("append review: %w", srs.ErrInvalidRating)
	}
	if e.ReviewedAt.IsZero() {
		e.ReviewedAt = time.Now().UTC()
	}

	_, err := l.db.Exec(`
		INSERT INTO review_log (user_id, card_id, rating, interval_before, interval_after, ease_before, ease_after, reviewed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.UserID, e.CardID, e.Rating.String(), e.IntervalBefore, e.IntervalAfter,
		e.EaseBefore, e.EaseAfter, e.ReviewedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

// TotalReviews counts every logged review for one user.
func (l *Log) TotalReviews(userID string) (int, error) {
	var n int
	err := l.db.QueryRow("SELECT COUNT(*) FROM review_log WHERE user_id = ?", userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	return n, nil
}

// CountByRating returns how often the user picked each rating. Ratings the
// user never picked are absent from the map.
func (l *Log) CountByRating(userID string) (map[srs.Rating]int, error) {
	rows, err := l.db.Query(`
		SELECT rating, COUNT(*) FROM review_log WHERE user_id = ? GROUP BY rating
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("count by rating: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make(map[srs.Rating]int, len(srs.Ratings()))
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, fmt.Errorf("scan rating count: %w", err)
		}
		r, err := srs.ParseRating(name)
		if err != nil {
			continue // rows written by a newer schema don't break the aggregate
		}
		counts[r] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("count by rating: %w", err)
	}
	return counts, nil
}

// ReviewsToday counts the user's reviews on now's UTC calendar day.
func (l *Log) ReviewsToday(userID string, now time.Time) (int, error) {
	day := now.UTC().Format("2006-01-02")
	var n int
	err := l.db.QueryRow(`
		SELECT COUNT(*) FROM review_log WHERE user_id = ? AND substr(reviewed_at, 1, 10) = ?
	`, userID, day).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count reviews today: %w", err)
	}
	return n, nil
}

// StreakDays returns the number of consecutive UTC days with at least one
// review, counting back from now. A day without reviews so far doesn't end
// the streak until it is over: with no review today, yesterday still anchors
// the count.
func (l *Log) StreakDays(userID string, now time.Time) (int, error) {
	rows, err := l.db.Query(`
		SELECT DISTINCT substr(reviewed_at, 1, 10) FROM review_log
		WHERE user_id = ? ORDER BY 1 DESC
	`, userID)
	if err != nil {
		return 0, fmt.Errorf("query review days: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var days []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return 0, fmt.Errorf("scan review day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("read review days: %w", err)
	}
	if len(days) == 0 {
		return 0, nil
	}

	y, m, d := now.UTC().Date()
	cursor := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if days[0] != cursor.Format("2006-01-02") {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for _, day := range days {
		if day != cursor.Format("2006-01-02") {
			break
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak, nil
}

// CardHistory returns every logged review of one card, oldest first.
func (l *Log) CardHistory(userID, cardID string) ([]Entry, error) {
	rows, err := l.db.Query(`
		SELECT user_id, card_id, rating, interval_before, interval_after, ease_before, ease_after, reviewed_at
		FROM review_log WHERE user_id = ? AND card_id = ? ORDER BY reviewed_at, id
	`, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("query card history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var rating, reviewedAt string
		if err := rows.Scan(&e.UserID, &e.CardID, &rating, &e.IntervalBefore,
			&e.IntervalAfter, &e.EaseBefore, &e.EaseAfter, &reviewedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		e.Rating, _ = srs.ParseRating(rating)
		e.ReviewedAt, _ = time.Parse(time.RFC3339, reviewedAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read card history: %w", err)
	}
	return entries, nil
}

// Summary aggregates one user's review activity.
type Summary struct {
	TotalReviews int
	ReviewsToday int
	StreakDays   int
	ByRating     map[srs.Rating]int
}

// Summarize runs every aggregate query for one user.
func (l *Log) Summarize(userID string, now time.Time) (Summary, error) {
	var (
		s   Summary
		err error
	)
	if s.TotalReviews, err = l.TotalReviews(userID); err != nil {
		return Summary{}, err
	}
	if s.ReviewsToday, err = l.ReviewsToday(userID, now); err != nil {
		return Summary{}, err
	}
	if s.StreakDays, err = l.StreakDays(userID, now); err != nil {
		return Summary{}, err
	}
	if s.ByRating, err = l.CountByRating(userID); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// Close closes the underlying database.
func (l *Log) Close() error {
	return l.db.Close()
}
