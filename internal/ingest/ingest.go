// Package ingest lands generation payloads in the user's data. Payloads
// arrive as JSON files from the external generation service, often via
// copy-paste, so the raw bytes go through tolerant extraction first; the
// result is schema-validated, mapped to models and persisted, or rejected
// whole.
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/studywing/studywing/internal/app"
	"github.com/studywing/studywing/internal/utils"
	"github.com/studywing/studywing/models"
)

// ErrInvalidPayload marks a payload that failed decoding or schema
// validation. Nothing is written for such payloads.
var ErrInvalidPayload = errors.New("ingest: invalid payload")

// Payload is the decoded answer of the generation service.
type Payload struct {
	RequestID  string             `json:"requestId,omitempty"`
	Kind       models.ContentKind `json:"kind"`
	Topic      string             `json:"topic"`
	Subject    string             `json:"subject,omitempty"`
	GradeLevel string             `json:"gradeLevel,omitempty"`
	Difficulty string             `json:"difficulty,omitempty"`
	Curriculum string             `json:"curriculum,omitempty"`
	Content    string             `json:"content,omitempty"`
	AudioData  string             `json:"audioData,omitempty"`
	Goal       string             `json:"goal,omitempty"`
	Cards      []PayloadCard      `json:"cards,omitempty"`
	Steps      []PayloadStep      `json:"steps,omitempty"`
}

// PayloadCard is one card inside a flashcards payload.
type PayloadCard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// PayloadStep is one milestone inside a learning path payload.
type PayloadStep struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Resource    string `json:"resource,omitempty"`
}

// Result reports what one ingested payload produced.
type Result struct {
	Kind      models.ContentKind
	Topic     string
	HistoryID string
	SetID     string // flashcards only
	Cards     int    // flashcards only
	Steps     int    // path only
}

// Ingestor validates payloads and writes them through the app context.
type Ingestor struct {
	ctx *app.Context
}

// New creates an Ingestor over the given app context.
func New(ctx *app.Context) *Ingestor {
	return &Ingestor{ctx: ctx}
}

// Ingest validates one raw payload and persists it for the user: a history
// item for every kind, plus a card set and its due-immediately cards for
// flashcards payloads, or a replaced learning path for path payloads.
// Invalid payloads are rejected before anything is written.
func (in *Ingestor) Ingest(userID string, data []byte, now time.Time) (Result, error) {
	text, err := utils.ExtractJSON(string(data))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	doc := []byte(text)

	var p Payload
	if err := json.Unmarshal(doc, &p); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if !p.Kind.IsValid() {
		return Result{}, fmt.Errorf("%w: unsupported kind %q", ErrInvalidPayload, p.Kind)
	}
	if err := validatePayload(p.Kind, doc); err != nil {
		return Result{}, err
	}

	res := Result{Kind: p.Kind, Topic: p.Topic}

	switch p.Kind {
	case models.KindFlashcards:
		setID, count, err := in.storeCards(userID, p, now)
		if err != nil {
			return Result{}, err
		}
		res.SetID = setID
		res.Cards = count
	case models.KindPath:
		count, err := in.storePath(userID, p, now)
		if err != nil {
			return Result{}, err
		}
		res.Steps = count
	}

	item := models.HistoryItem{
		ID:         uuid.NewString(),
		Kind:       p.Kind,
		Topic:      p.Topic,
		Subject:    p.Subject,
		GradeLevel: p.GradeLevel,
		Difficulty: p.Difficulty,
		Curriculum: p.Curriculum,
		Content:    p.Content,
		AudioData:  p.AudioData,
		CreatedAt:  now,
	}
	if err := models.ValidateStruct(item); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := in.ctx.History.Prepend(userID, item); err != nil {
		return Result{}, fmt.Errorf("store history item: %w", err)
	}
	res.HistoryID = item.ID

	return res, nil
}

// storeCards creates the set record and prepends its cards to the user's
// collection, newest block first so quota pruning sheds the oldest cards.
func (in *Ingestor) storeCards(userID string, p Payload, now time.Time) (string, int, error) {
	publicID, err := gonanoid.New()
	if err != nil {
		return "", 0, fmt.Errorf("generate set id: %w", err)
	}

	set := models.FlashcardSet{
		PublicID:  publicID,
		Title:     p.Topic,
		Topic:     p.Topic,
		Subject:   p.Subject,
		CardCount: len(p.Cards),
		CreatedAt: now,
	}
	if err := models.ValidateStruct(set); err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	cards := make([]models.Flashcard, 0, len(p.Cards))
	for _, pc := range p.Cards {
		card := models.NewFlashcard(uuid.NewString(), pc.Front, pc.Back, p.Topic, now)
		card.SetID = publicID
		card.Subject = p.Subject
		cards = append(cards, *card)
	}

	existing, err := in.ctx.Cards.All(userID)
	if err != nil {
		return "", 0, err
	}
	if err := in.ctx.Cards.Replace(userID, append(cards, existing...)); err != nil {
		return "", 0, fmt.Errorf("store cards: %w", err)
	}
	if err := in.ctx.Sets.Prepend(userID, set); err != nil {
		return "", 0, fmt.Errorf("store card set: %w", err)
	}
	return publicID, len(cards), nil
}

// storePath replaces the user's learning path with the payload's steps.
// Each user keeps one path; a new generation supersedes the old one.
func (in *Ingestor) storePath(userID string, p Payload, now time.Time) (int, error) {
	subject := p.Subject
	if subject == "" {
		subject = p.Topic
	}

	steps := make([]models.LearningPathStep, 0, len(p.Steps))
	for i, ps := range p.Steps {
		id := fmt.Sprintf("step-%d", i+1)
		if slug := slugify(ps.Title); slug != "" {
			id += "-" + slug
		}
		steps = append(steps, models.LearningPathStep{
			ID:          id,
			Title:       ps.Title,
			Description: ps.Description,
			Resource:    ps.Resource,
		})
	}

	path := models.LearningPath{
		Subject:     subject,
		Goal:        p.Goal,
		GeneratedAt: now,
		Steps:       steps,
	}
	if err := models.ValidateStruct(path); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := in.ctx.Path.Put(userID, path); err != nil {
		return 0, fmt.Errorf("store learning path: %w", err)
	}
	return len(steps), nil
}

// slugify lowercases a step title into an id fragment: runs of anything but
// letters and digits collapse to single hyphens. "Solving Equations" becomes
// "solving-equations".
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// IngestFile reads and ingests one payload file.
func (in *Ingestor) IngestFile(userID, path string, now time.Time) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read payload file: %w", err)
	}
	return in.Ingest(userID, data, now)
}
