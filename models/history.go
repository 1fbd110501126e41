package models

import "time"

// ContentKind identifies the type of study material a generation run produced.
type ContentKind string

const (
	KindNotes      ContentKind = "notes"
	KindQuiz       ContentKind = "quiz"
	KindFlashcards ContentKind = "flashcards"
	KindFeedback   ContentKind = "feedback"
	KindPodcast    ContentKind = "podcast"
	KindCheatSheet ContentKind = "cheatsheet"
	KindPath       ContentKind = "path"
)

// AllContentKinds returns every supported kind in display order.
func AllContentKinds() []ContentKind {
	return []ContentKind{KindNotes, KindQuiz, KindFlashcards, KindFeedback, KindPodcast, KindCheatSheet, KindPath}
}

// IsValid reports whether k is one of the supported kinds.
func (k ContentKind) IsValid() bool {
	switch k {
	case KindNotes, KindQuiz, KindFlashcards, KindFeedback, KindPodcast, KindCheatSheet, KindPath:
		return true
	}
	return false
}

// HistoryItem records one generation result. Items are kept newest-first.
type HistoryItem struct {
	ID         string      `json:"id" validate:"required,uuid4"`
	Kind       ContentKind `json:"kind" validate:"required,oneof=notes quiz flashcards feedback podcast cheatsheet path"`
	Topic      string      `json:"topic" validate:"required"`
	Subject    string      `json:"subject,omitempty"`
	GradeLevel string      `json:"gradeLevel,omitempty"`
	Difficulty string      `json:"difficulty,omitempty"`
	Curriculum string      `json:"curriculum,omitempty"`
	Content    string      `json:"content,omitempty"`
	// AudioData holds base64-encoded synthesized audio for podcast items.
	// The store drops it before persisting; it only survives in memory.
	AudioData string    `json:"audioData,omitempty"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
}

// StripBlobs returns a copy of the item without its audio payload.
func (h HistoryItem) StripBlobs() HistoryItem {
	h.AudioData = ""
	return h
}

// HistoryPatch is a partial update for a stored history item.
type HistoryPatch struct {
	Content   *string `json:"content,omitempty"`
	AudioData *string `json:"audioData,omitempty"`
}

// Apply returns a copy of the item with the non-nil patch fields set.
func (p HistoryPatch) Apply(h HistoryItem) HistoryItem {
	if p.Content != nil {
		h.Content = *p.Content
	}
	if p.AudioData != nil {
		h.AudioData = *p.AudioData
	}
	return h
}
