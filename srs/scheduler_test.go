package srs

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/studywing/studywing/models"
)

var t0 = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// testCard builds a card with the given scheduling state, due at t0.
func testCard(interval int, ease float64, reps int) models.Flashcard {
	return models.Flashcard{
		ID:          "4dbf05b3-4e68-4a27-b05d-0f7b4a3125e7",
		Front:       "front",
		Back:        "back",
		Interval:    interval,
		EaseFactor:  ease,
		Repetitions: reps,
		NextReview:  t0,
		CreatedAt:   t0.AddDate(0, -1, 0),
	}
}

func mustSchedule(t *testing.T, card models.Flashcard, rating Rating, now time.Time) models.Flashcard {
	t.Helper()
	c, err := Schedule(card, rating, now)
	if err != nil {
		t.Fatalf("Schedule(%v): %v", rating, err)
	}
	return c
}

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// --- Schedule ---

func TestScheduleAgain(t *testing.T) {
	c := mustSchedule(t, testCard(10, 2.5, 3), Again, t0)

	if c.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", c.Repetitions)
	}
	if c.Interval != 1 {
		t.Errorf("Interval = %d, want 1", c.Interval)
	}
	assertFloat(t, "EaseFactor", c.EaseFactor, 2.5)
	wantDue := t0.Add(Day)
	if !c.NextReview.Equal(wantDue) {
		t.Errorf("NextReview = %v, want %v", c.NextReview, wantDue)
	}
}

func TestScheduleHard(t *testing.T) {
	// interval 5 → round(5 * 1.2) = 6; ease 1.4 → 1.25, clamped to the floor.
	c := mustSchedule(t, testCard(5, 1.4, 2), Hard, t0)

	if c.Interval != 6 {
		t.Errorf("Interval = %d, want 6", c.Interval)
	}
	assertFloat(t, "EaseFactor", c.EaseFactor, models.MinEaseFactor)
	if c.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", c.Repetitions)
	}
}

func TestScheduleGood(t *testing.T) {
	// interval 10 → round(10 * 2.5) = 25; ease untouched.
	c := mustSchedule(t, testCard(10, 2.5, 3), Good, t0)

	if c.Interval != 25 {
		t.Errorf("Interval = %d, want 25", c.Interval)
	}
	assertFloat(t, "EaseFactor", c.EaseFactor, 2.5)
	if c.Repetitions != 4 {
		t.Errorf("Repetitions = %d, want 4", c.Repetitions)
	}
	wantDue := t0.Add(25 * Day)
	if !c.NextReview.Equal(wantDue) {
		t.Errorf("NextReview = %v, want %v", c.NextReview, wantDue)
	}
}

func TestScheduleEasy(t *testing.T) {
	// interval 4 → round(4 * 1.3 * 2.5) = 13; ease grows by one step.
	c := mustSchedule(t, testCard(4, 2.5, 1), Easy, t0)

	if c.Interval != 13 {
		t.Errorf("Interval = %d, want 13", c.Interval)
	}
	assertFloat(t, "EaseFactor", c.EaseFactor, 2.65)
	if c.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", c.Repetitions)
	}
}

func TestScheduleEasyHalfDayRoundsUp(t *testing.T) {
	// 10 * 1.3 * 2.5 = 32.5 rounds away from zero to 33.
	c := mustSchedule(t, testCard(10, 2.5, 3), Easy, t0)
	if c.Interval != 33 {
		t.Errorf("Interval = %d, want 33", c.Interval)
	}
}

func TestScheduleEaseHasNoCeiling(t *testing.T) {
	card := testCard(1, 2.5, 0)
	for i := 0; i < 10; i++ {
		card = mustSchedule(t, card, Easy, t0)
	}
	assertFloat(t, "EaseFactor", card.EaseFactor, 4.0)
}

func TestScheduleEaseFloor(t *testing.T) {
	card := testCard(3, models.MinEaseFactor, 5)
	for i := 0; i < 3; i++ {
		card = mustSchedule(t, card, Hard, t0)
	}
	assertFloat(t, "EaseFactor", card.EaseFactor, models.MinEaseFactor)
}

func TestScheduleNewCardMinimumInterval(t *testing.T) {
	// A freshly created card has interval 0; any rating yields at least 1 day.
	for _, r := range Ratings() {
		c := mustSchedule(t, testCard(0, models.DefaultEaseFactor, 0), r, t0)
		if c.Interval < 1 {
			t.Errorf("Schedule(%v) interval = %d, want >= 1", r, c.Interval)
		}
	}
}

func TestScheduleSetsLastReviewed(t *testing.T) {
	c := mustSchedule(t, testCard(2, 2.5, 1), Good, t0)
	if c.LastReviewed == nil || !c.LastReviewed.Equal(t0) {
		t.Errorf("LastReviewed = %v, want %v", c.LastReviewed, t0)
	}
}

func TestScheduleInvalidRating(t *testing.T) {
	for _, r := range []Rating{Rating(0), Rating(5), Rating(-2)} {
		if _, err := Schedule(testCard(1, 2.5, 0), r, t0); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("Schedule(%d) error = %v, want ErrInvalidRating", int(r), err)
		}
	}
}

func TestScheduleDoesNotMutateInput(t *testing.T) {
	card := testCard(10, 2.5, 3)
	mustSchedule(t, card, Easy, t0)

	if card.Interval != 10 || card.EaseFactor != 2.5 || card.Repetitions != 3 {
		t.Errorf("input card mutated: %+v", card)
	}
	if card.LastReviewed != nil {
		t.Error("input card LastReviewed mutated")
	}
}

func TestPreview(t *testing.T) {
	previews := Preview(testCard(10, 2.5, 3), t0)
	if len(previews) != 4 {
		t.Fatalf("Preview returned %d entries, want 4", len(previews))
	}
	if previews[Again].Interval != 1 {
		t.Errorf("again interval = %d, want 1", previews[Again].Interval)
	}
	if previews[Good].Interval != 25 {
		t.Errorf("good interval = %d, want 25", previews[Good].Interval)
	}
	if previews[Hard].Interval >= previews[Good].Interval {
		t.Error("hard interval should stay below good interval")
	}
}

// --- Due ---

func TestDueBoundary(t *testing.T) {
	cards := []models.Flashcard{
		{ID: "a", NextReview: t0.Add(-time.Second)},
		{ID: "b", NextReview: t0.Add(time.Second)},
	}
	due := Due(cards, t0)
	if len(due) != 1 || due[0].ID != "a" {
		t.Errorf("Due = %v, want only card a", ids(due))
	}
}

func TestDueExactlyNow(t *testing.T) {
	cards := []models.Flashcard{{ID: "a", NextReview: t0}}
	if due := Due(cards, t0); len(due) != 1 {
		t.Errorf("card due exactly now should be included, got %d", len(due))
	}
}

func TestDuePreservesOrder(t *testing.T) {
	cards := []models.Flashcard{
		{ID: "first", NextReview: t0.Add(-3 * Day)},
		{ID: "skip", NextReview: t0.Add(Day)},
		{ID: "second", NextReview: t0.Add(-time.Hour)},
		{ID: "third", NextReview: t0},
	}
	due := Due(cards, t0)
	want := []string{"first", "second", "third"}
	got := ids(due)
	if len(got) != len(want) {
		t.Fatalf("Due = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Due[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDueEmpty(t *testing.T) {
	if due := Due(nil, t0); len(due) != 0 {
		t.Errorf("Due(nil) = %v, want empty", due)
	}
	cards := []models.Flashcard{{ID: "a", NextReview: t0.Add(Day)}}
	if due := Due(cards, t0); len(due) != 0 {
		t.Errorf("Due with nothing due = %v, want empty", ids(due))
	}
}

func ids(cards []models.Flashcard) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}
