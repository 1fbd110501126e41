package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/studywing/studywing/internal/logger"
	"github.com/studywing/studywing/models"
	"github.com/studywing/studywing/srs"
)

// RecordFunc persists one rated card and returns the rescheduled version.
// The review TUI calls it before advancing so a crash never loses a rating.
type RecordFunc func(card models.Flashcard, rating srs.Rating, now time.Time) (models.Flashcard, error)

// SessionResult summarizes a finished (or abandoned) review session.
type SessionResult struct {
	Reviewed int
	Total    int
	Counts   map[srs.Rating]int
	Aborted  bool
	Duration time.Duration
}

// ReviewModel drives one flashcard review session: show the front, reveal
// the back, rate recall. Each rating is persisted before the next card
// appears.
type ReviewModel struct {
	session *srs.Session
	record  RecordFunc
	bar     progress.Model

	width   int
	counts  map[srs.Rating]int
	lastErr error
	done    bool
}

// NewReviewModel starts a session over the cards due now.
func NewReviewModel(cards []models.Flashcard, record RecordFunc) ReviewModel {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30

	return ReviewModel{
		session: srs.NewSession(cards, time.Now()),
		record:  record,
		bar:     bar,
		width:   72,
		counts:  make(map[srs.Rating]int),
	}
}

func (m ReviewModel) Init() tea.Cmd {
	if m.session.State() == srs.SessionComplete {
		return tea.Quit
	}
	return nil
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 8; w > 10 && w < 40 {
			m.bar.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.done = true
			return m, tea.Quit

		case " ", "enter":
			if m.session.State() == srs.SessionIdle {
				_ = m.session.Reveal()
			}
			return m, nil

		case "1", "2", "3", "4":
			if m.session.State() != srs.SessionAwaitingRating {
				return m, nil
			}
			rating := srs.Rating(int(msg.String()[0] - '0'))
			return m.rate(rating)
		}
	}

	return m, nil
}

// rate persists the rating for the current card and advances the session.
func (m ReviewModel) rate(rating srs.Rating) (tea.Model, tea.Cmd) {
	card, ok := m.session.Current()
	if !ok {
		return m, tea.Quit
	}

	now := time.Now()
	if _, err := m.record(card, rating, now); err != nil {
		m.lastErr = err
		m.done = true
		return m, tea.Quit
	}
	if _, err := m.session.Rate(rating, now); err != nil {
		m.lastErr = err
		m.done = true
		return m, tea.Quit
	}
	m.counts[rating]++

	if m.session.State() == srs.SessionComplete {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m ReviewModel) View() string {
	if m.done {
		return ""
	}

	card, ok := m.session.Current()
	if !ok {
		return ""
	}
	logger.SetLastCard(card.ID, card.Front)

	var s strings.Builder

	s.WriteString(" 📚 ")
	s.WriteString(StyleTitle.Render("Review"))
	s.WriteString("  ")
	s.WriteString(StyleSubtle.Render("(space reveal · 1-4 rate · q quit)"))
	s.WriteString("\n\n")

	completed := m.session.Total() - m.session.Remaining()
	s.WriteString(" ")
	s.WriteString(m.bar.ViewAs(float64(completed) / float64(m.session.Total())))
	s.WriteString(StyleSubtle.Render(fmt.Sprintf("  %d/%d", m.session.Position(), m.session.Total())))
	s.WriteString("\n\n")

	boxWidth := m.width - 4
	if boxWidth > 76 {
		boxWidth = 76
	}

	front := NewPanel("Q", WrapText(card.Front, boxWidth-4)).WithWidth(boxWidth)
	s.WriteString(front.Render())
	s.WriteString("\n")

	if card.Topic != "" {
		s.WriteString(StyleSubtle.Render(fmt.Sprintf("  %s · interval %dd · ease %.2f", card.Topic, card.Interval, card.EaseFactor)))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	if m.session.State() == srs.SessionAwaitingRating {
		back := NewPanel("A", WrapText(card.Back, boxWidth-4)).
			WithBorderColor(ColorBlue).
			WithWidth(boxWidth)
		s.WriteString(back.Render())
		s.WriteString("\n\n ")
		s.WriteString(m.ratingHints(card))
		s.WriteString("\n")
	} else {
		s.WriteString(StyleSubtle.Render("  press space to reveal the answer"))
		s.WriteString("\n")
	}

	return s.String()
}

// ratingHints shows each rating key with the interval it would schedule.
func (m ReviewModel) ratingHints(card models.Flashcard) string {
	preview := srs.Preview(card, time.Now())

	styles := map[srs.Rating]lipgloss.Style{
		srs.Again: StyleError,
		srs.Hard:  StyleWarning,
		srs.Good:  StyleSuccess,
		srs.Easy:  StylePrimary,
	}

	parts := make([]string, 0, 4)
	for i, r := range srs.Ratings() {
		hint := fmt.Sprintf("%d %s %dd", i+1, r, preview[r].Interval)
		parts = append(parts, styles[r].Render(hint))
	}
	return strings.Join(parts, StyleSubtle.Render(" · "))
}

// RunReviewSession runs the review TUI over the given cards and reports what
// happened. Ratings are persisted one by one through record as the user
// works, so an aborted session keeps everything rated so far.
func RunReviewSession(cards []models.Flashcard, record RecordFunc) (SessionResult, error) {
	start := time.Now()

	m := NewReviewModel(cards, record)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return SessionResult{}, fmt.Errorf("error running review session: %w", err)
	}

	result := finalModel.(ReviewModel)
	if result.lastErr != nil {
		return SessionResult{}, result.lastErr
	}

	reviewed := 0
	for _, n := range result.counts {
		reviewed += n
	}

	return SessionResult{
		Reviewed: reviewed,
		Total:    result.session.Total(),
		Counts:   result.counts,
		Aborted:  reviewed < result.session.Total(),
		Duration: time.Since(start),
	}, nil
}

// RenderSessionSummary renders the end-of-session recap panel.
func RenderSessionSummary(res SessionResult) string {
	if res.Total == 0 {
		return RenderInfoPanel("Review", "No cards due. Come back later! 🎉")
	}

	var b strings.Builder
	if res.Aborted {
		b.WriteString(fmt.Sprintf("Reviewed %d of %d cards before stopping.\n", res.Reviewed, res.Total))
	} else {
		b.WriteString(fmt.Sprintf("Reviewed all %d cards in %s.\n", res.Total, res.Duration.Round(time.Second)))
	}

	for _, r := range srs.Ratings() {
		if n := res.Counts[r]; n > 0 {
			b.WriteString(fmt.Sprintf("  %s: %d\n", r, n))
		}
	}

	title := "Session complete"
	if res.Aborted {
		title = "Session stopped"
	}
	return RenderSuccessPanel(title, strings.TrimRight(b.String(), "\n"))
}
