package prompts

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/studywing/studywing/models"
)

func TestGetPrompt(t *testing.T) {
	tests := []struct {
		name      string
		promptKey PromptKey
		contains  []string
	}{
		{
			name:      "study notes prompt",
			promptKey: KeyStudyNotes,
			contains:  []string{"study notes", `"kind": "notes"`},
		},
		{
			name:      "quiz prompt",
			promptKey: KeyQuiz,
			contains:  []string{"answer key", `"kind": "quiz"`},
		},
		{
			name:      "flashcards prompt",
			promptKey: KeyFlashcards,
			contains:  []string{"front", "back", `"kind": "flashcards"`},
		},
		{
			name:      "homework feedback prompt",
			promptKey: KeyHomeworkFeedback,
			contains:  []string{"feedback", `"kind": "feedback"`},
		},
		{
			name:      "podcast prompt",
			promptKey: KeyPodcastScript,
			contains:  []string{"podcast", `"kind": "podcast"`},
		},
		{
			name:      "cheat sheet prompt",
			promptKey: KeyCheatSheet,
			contains:  []string{"cheat sheet", `"kind": "cheatsheet"`},
		},
		{
			name:      "learning path prompt",
			promptKey: KeyLearningPath,
			contains:  []string{"learning path", `"kind": "path"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := GetPrompt(tt.promptKey, "")
			if err != nil {
				t.Fatalf("GetPrompt() error = %v", err)
			}
			promptLower := strings.ToLower(prompt)
			for _, expected := range tt.contains {
				if !strings.Contains(promptLower, strings.ToLower(expected)) {
					t.Errorf("GetPrompt(%v) missing expected content %q", tt.promptKey, expected)
				}
			}
		})
	}
}

func TestGetPromptUnknownKey(t *testing.T) {
	if _, err := GetPrompt(PromptKey("Nope"), ""); err == nil {
		t.Error("GetPrompt with unknown key: want error, got nil")
	}
}

func TestGetPromptTemplateOverride(t *testing.T) {
	dir := t.TempDir()
	custom := "my own notes prompt for {{.Topic}}"
	if err := os.WriteFile(filepath.Join(dir, "notes_prompt.txt"), []byte(custom), 0644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	got, err := GetPrompt(KeyStudyNotes, dir)
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	if got != custom {
		t.Errorf("GetPrompt() = %q, want the override file content", got)
	}

	// Other keys keep their defaults when no override file exists.
	quiz, err := GetPrompt(KeyQuiz, dir)
	if err != nil {
		t.Fatalf("GetPrompt() error = %v", err)
	}
	if quiz != QuizPrompt {
		t.Error("GetPrompt(KeyQuiz) did not fall back to the default")
	}
}

func TestKeyForKind(t *testing.T) {
	for _, kind := range models.AllContentKinds() {
		if _, err := KeyForKind(kind); err != nil {
			t.Errorf("KeyForKind(%s) error = %v", kind, err)
		}
	}
	if _, err := KeyForKind(models.ContentKind("essay")); err == nil {
		t.Error("KeyForKind(essay): want error, got nil")
	}
}

func TestRenderSubstitutesParams(t *testing.T) {
	p := Params{
		Topic:      "Photosynthesis",
		Subject:    "Biology",
		GradeLevel: "9",
		Count:      12,
	}

	got, err := Render(models.KindFlashcards, p, "")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, want := range []string{"Photosynthesis", "Biology", "grade level 9", "12 flashcards"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered prompt missing %q", want)
		}
	}
	if strings.Contains(got, "{{") {
		t.Error("rendered prompt still contains template markers")
	}
	if strings.Contains(got, "Difficulty:") {
		t.Error("empty difficulty still rendered a Difficulty line")
	}
}

func TestNewRequestAndWrite(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	req, err := NewRequest(models.KindQuiz, Params{Topic: "Algebra", Count: 5}, "", now)
	if err != nil {
		t.Fatalf("NewRequest() error = %v", err)
	}
	if req.ID == "" {
		t.Fatal("NewRequest() produced an empty id")
	}
	if req.Kind != models.KindQuiz || req.Topic != "Algebra" || req.Count != 5 {
		t.Errorf("request envelope = %+v, want quiz/Algebra/5", req)
	}
	if !strings.Contains(req.Prompt, "5 questions") {
		t.Error("request prompt was not rendered")
	}

	outbox := t.TempDir()
	path, err := req.Write(filepath.Join(outbox, "out"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if filepath.Base(path) != req.ID+".json" {
		t.Errorf("written file = %s, want <id>.json", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read request file: %v", err)
	}
	var round Request
	if err := json.Unmarshal(data, &round); err != nil {
		t.Fatalf("request file is not valid JSON: %v", err)
	}
	if round.ID != req.ID || round.Prompt != req.Prompt || !round.CreatedAt.Equal(now) {
		t.Error("request file does not round-trip the envelope")
	}
}
