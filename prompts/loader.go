package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/studywing/studywing/models"
)

// PromptKey is a type for identifying specific prompts.
type PromptKey string

const (
	// KeyStudyNotes is the key for the study-notes generation prompt.
	KeyStudyNotes PromptKey = "StudyNotes"
	// KeyQuiz is the key for the quiz generation prompt.
	KeyQuiz PromptKey = "Quiz"
	// KeyFlashcards is the key for the flashcard-deck generation prompt.
	KeyFlashcards PromptKey = "Flashcards"
	// KeyHomeworkFeedback is the key for the homework-feedback prompt.
	KeyHomeworkFeedback PromptKey = "HomeworkFeedback"
	// KeyPodcastScript is the key for the podcast-script prompt.
	KeyPodcastScript PromptKey = "PodcastScript"
	// KeyCheatSheet is the key for the cheat-sheet prompt.
	KeyCheatSheet PromptKey = "CheatSheet"
	// KeyLearningPath is the key for the learning-path prompt.
	KeyLearningPath PromptKey = "LearningPath"
)

// promptConfig defines the default content and override filename for a prompt.
type promptConfig struct {
	defaultContent string
	filename       string
}

// promptRegistry maps a PromptKey to its configuration.
var promptRegistry = map[PromptKey]promptConfig{
	KeyStudyNotes: {
		defaultContent: StudyNotesPrompt,
		filename:       "notes_prompt.txt",
	},
	KeyQuiz: {
		defaultContent: QuizPrompt,
		filename:       "quiz_prompt.txt",
	},
	KeyFlashcards: {
		defaultContent: FlashcardsPrompt,
		filename:       "flashcards_prompt.txt",
	},
	KeyHomeworkFeedback: {
		defaultContent: HomeworkFeedbackPrompt,
		filename:       "feedback_prompt.txt",
	},
	KeyPodcastScript: {
		defaultContent: PodcastScriptPrompt,
		filename:       "podcast_prompt.txt",
	},
	KeyCheatSheet: {
		defaultContent: CheatSheetPrompt,
		filename:       "cheatsheet_prompt.txt",
	},
	KeyLearningPath: {
		defaultContent: LearningPathPrompt,
		filename:       "path_prompt.txt",
	},
}

// keyByKind routes a content kind to its prompt.
var keyByKind = map[models.ContentKind]PromptKey{
	models.KindNotes:      KeyStudyNotes,
	models.KindQuiz:       KeyQuiz,
	models.KindFlashcards: KeyFlashcards,
	models.KindFeedback:   KeyHomeworkFeedback,
	models.KindPodcast:    KeyPodcastScript,
	models.KindCheatSheet: KeyCheatSheet,
	models.KindPath:       KeyLearningPath,
}

// KeyForKind returns the prompt key for a content kind.
func KeyForKind(kind models.ContentKind) (PromptKey, error) {
	key, ok := keyByKind[kind]
	if !ok {
		return "", fmt.Errorf("no prompt for content kind %q", kind)
	}
	return key, nil
}

// GetPrompt searches for a user-provided prompt file in the project's
// templates directory. If found, it returns the content of that file.
// Otherwise it returns the built-in default prompt.
func GetPrompt(key PromptKey, templatesDir string) (string, error) {
	config, ok := promptRegistry[key]
	if !ok {
		return "", fmt.Errorf("unrecognized prompt key: %s", key)
	}

	// With no templates directory configured, always use the default.
	if strings.TrimSpace(templatesDir) == "" {
		return config.defaultContent, nil
	}

	customPromptPath := filepath.Join(templatesDir, config.filename)

	if _, err := os.Stat(customPromptPath); err == nil {
		content, readErr := os.ReadFile(customPromptPath)
		if readErr != nil {
			return "", fmt.Errorf("failed to read custom prompt file at %s: %w", customPromptPath, readErr)
		}
		// Stderr so a prompt printed to stdout stays clean.
		fmt.Fprintf(os.Stderr, "Using custom prompt from: %s\n", customPromptPath)
		return string(content), nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("error checking for custom prompt file at %s: %w", customPromptPath, err)
	}

	return config.defaultContent, nil
}
