package prompts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/studywing/studywing/models"
)

// Params carries the user-supplied generation parameters substituted into a
// prompt template.
type Params struct {
	Topic      string
	Subject    string
	GradeLevel string
	Difficulty string
	Curriculum string
	Count      int // cards or questions
}

// Render produces the final prompt text for a content kind, applying a
// template override from templatesDir when one exists.
func Render(kind models.ContentKind, p Params, templatesDir string) (string, error) {
	key, err := KeyForKind(kind)
	if err != nil {
		return "", err
	}
	raw, err := GetPrompt(key, templatesDir)
	if err != nil {
		return "", err
	}

	tmpl, err := template.New("prompt").Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse prompt template for %s: %w", kind, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("render prompt for %s: %w", kind, err)
	}
	return buf.String(), nil
}

// Request is the JSON envelope dropped into the outbox for the external
// generation service.
type Request struct {
	ID         string             `json:"id"`
	Kind       models.ContentKind `json:"kind"`
	Topic      string             `json:"topic"`
	Subject    string             `json:"subject,omitempty"`
	GradeLevel string             `json:"gradeLevel,omitempty"`
	Difficulty string             `json:"difficulty,omitempty"`
	Curriculum string             `json:"curriculum,omitempty"`
	Count      int                `json:"count,omitempty"`
	Prompt     string             `json:"prompt"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// NewRequest renders the prompt for the kind and assembles the outbox
// envelope with a fresh request id.
func NewRequest(kind models.ContentKind, p Params, templatesDir string, now time.Time) (*Request, error) {
	prompt, err := Render(kind, p, templatesDir)
	if err != nil {
		return nil, err
	}
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate request id: %w", err)
	}
	return &Request{
		ID:         id,
		Kind:       kind,
		Topic:      p.Topic,
		Subject:    p.Subject,
		GradeLevel: p.GradeLevel,
		Difficulty: p.Difficulty,
		Curriculum: p.Curriculum,
		Count:      p.Count,
		Prompt:     prompt,
		CreatedAt:  now,
	}, nil
}

// Write stores the request as <outbox>/<id>.json, creating the outbox
// directory as needed, and returns the written path.
func (r *Request) Write(outboxDir string) (string, error) {
	if err := os.MkdirAll(outboxDir, 0755); err != nil {
		return "", fmt.Errorf("create outbox: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	path := filepath.Join(outboxDir, r.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write request file: %w", err)
	}
	return path, nil
}
