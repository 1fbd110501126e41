// Package app provides the application layer that orchestrates business
// logic. It sits between the CLI and the storage surfaces so commands and
// the review TUI stay thin adapters over one set of operations.
package app

import (
	"github.com/studywing/studywing/internal/archive"
	"github.com/studywing/studywing/models"
	"github.com/studywing/studywing/store"
)

// Context holds the typed data surfaces every operation works against.
// Operations take the user id explicitly; Context carries no ambient user.
type Context struct {
	Store    *store.Store
	History  store.Collection[models.HistoryItem]
	Cards    store.Collection[models.Flashcard]
	Sets     store.Collection[models.FlashcardSet]
	Quizzes  store.Collection[models.QuizResult]
	Path     store.Document[models.LearningPath]
	Analysis store.Document[models.AnalysisSnapshot]
	Archive  *archive.Log
}

// NewContext wires the typed collection views over one store and one review
// log. It is the single place that binds entity types to store kinds.
func NewContext(st *store.Store, log *archive.Log) *Context {
	return &Context{
		Store:    st,
		History:  store.NewCollection[models.HistoryItem](st, store.KindHistory, func(h models.HistoryItem) string { return h.ID }),
		Cards:    store.NewCollection[models.Flashcard](st, store.KindFlashcards, func(c models.Flashcard) string { return c.ID }),
		Sets:     store.NewCollection[models.FlashcardSet](st, store.KindFlashcardSets, func(s models.FlashcardSet) string { return s.PublicID }),
		Quizzes:  store.NewCollection[models.QuizResult](st, store.KindQuizResults, func(q models.QuizResult) string { return q.ID }),
		Path:     store.NewDocument[models.LearningPath](st, store.KindLearningPath),
		Analysis: store.NewDocument[models.AnalysisSnapshot](st, store.KindAnalysis),
		Archive:  log,
	}
}
