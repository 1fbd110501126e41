package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestContentKind_IsValid(t *testing.T) {
	for _, kind := range AllContentKinds() {
		if !kind.IsValid() {
			t.Errorf("kind %q should be valid", kind)
		}
	}
	if ContentKind("essay").IsValid() {
		t.Error("unknown kind should not be valid")
	}
	if ContentKind("").IsValid() {
		t.Error("empty kind should not be valid")
	}
}

func TestHistoryItem_ValidateStruct(t *testing.T) {
	item := HistoryItem{
		ID:        uuid.New().String(),
		Kind:      KindNotes,
		Topic:     "Photosynthesis",
		CreatedAt: time.Now(),
	}
	if err := ValidateStruct(item); err != nil {
		t.Errorf("ValidateStruct() error = %v, expected no error", err)
	}

	item.Kind = "essay"
	if err := ValidateStruct(item); err == nil {
		t.Error("expected validation error for unknown kind")
	}
}

func TestHistoryItem_StripBlobs(t *testing.T) {
	item := HistoryItem{
		ID:        uuid.New().String(),
		Kind:      KindPodcast,
		Topic:     "The French Revolution",
		Content:   "episode script",
		AudioData: "UklGRiQAAABXQVZF",
		CreatedAt: time.Now(),
	}

	stripped := item.StripBlobs()
	if stripped.AudioData != "" {
		t.Error("StripBlobs should clear the audio payload")
	}
	if stripped.Content != item.Content || stripped.ID != item.ID {
		t.Error("StripBlobs should leave other fields intact")
	}
	if item.AudioData == "" {
		t.Error("StripBlobs mutated its receiver")
	}
}

func TestHistoryPatch_Apply(t *testing.T) {
	item := HistoryItem{ID: "id-1", Kind: KindPodcast, Content: "old"}

	audio := "UklGRiQAAABXQVZF"
	patched := HistoryPatch{AudioData: &audio}.Apply(item)
	if patched.AudioData != audio {
		t.Errorf("AudioData = %q, want %q", patched.AudioData, audio)
	}
	if patched.Content != "old" {
		t.Error("untouched field changed")
	}
}
