package store

import (
	"fmt"
	"strings"
)

// Kind namespaces one collection of user data. Every store operation takes a
// Kind plus an explicit user id; the pair forms the storage key, so two users
// can never read or clobber each other's data.
type Kind string

const (
	KindHistory       Kind = "history"
	KindQuizResults   Kind = "quiz-results"
	KindFlashcards    Kind = "flashcards"
	KindFlashcardSets Kind = "flashcard-sets"
	KindLearningPath  Kind = "learning-path"
	KindAnalysis      Kind = "analysis-snapshot"
)

// AllKinds returns every collection kind in export order.
func AllKinds() []Kind {
	return []Kind{
		KindHistory,
		KindQuizResults,
		KindFlashcards,
		KindFlashcardSets,
		KindLearningPath,
		KindAnalysis,
	}
}

// ParseKind converts a collection name to a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
	return k, nil
}

// IsValid reports whether k names a known collection.
func (k Kind) IsValid() bool {
	switch k {
	case KindHistory, KindQuizResults, KindFlashcards, KindFlashcardSets, KindLearningPath, KindAnalysis:
		return true
	}
	return false
}

// Key returns the storage key for this kind and user, e.g. "history_alice".
func (k Kind) Key(userID string) string {
	return string(k) + "_" + userID
}

// validateUserID rejects ids that are empty or would escape the data
// directory when used as a path element.
func validateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: empty", ErrInvalidUserID)
	}
	if strings.ContainsAny(userID, `/\`) || userID == "." || userID == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidUserID, userID)
	}
	return nil
}
