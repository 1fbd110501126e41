/*
Copyright © 2025 StudyWing Authors
*/
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywing/studywing/internal/telemetry"
	"github.com/studywing/studywing/models"
	"github.com/studywing/studywing/prompts"
)

var (
	generateTopic      string
	generateSubject    string
	generateGrade      string
	generateDifficulty string
	generateCurriculum string
	generateCount      int
	generateStdout     bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <kind>",
	Short: "Render a generation request for new study material",
	Long: `Render the prompt for a content kind and write it as a request file
into the outbox, where the generation service picks it up. The answer lands
in the inbox and is imported with 'studywing import' or 'studywing watch'.

Kinds: notes, quiz, flashcards, feedback, podcast, cheatsheet, path

Examples:
  studywing generate notes --topic "Photosynthesis" --subject Biology
  studywing generate quiz --topic "French Revolution" --count 10
  studywing generate path --topic "Calculus" --subject Math
  studywing generate flashcards --topic "Irregular verbs" --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateTopic, "topic", "t", "", "topic to generate material for (required)")
	generateCmd.Flags().StringVarP(&generateSubject, "subject", "s", "", "school subject, e.g. Biology")
	generateCmd.Flags().StringVar(&generateGrade, "grade", "", "grade level, e.g. 9")
	generateCmd.Flags().StringVar(&generateDifficulty, "difficulty", "", "difficulty, e.g. easy, medium, hard")
	generateCmd.Flags().StringVar(&generateCurriculum, "curriculum", "", "curriculum to align with")
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 0, "number of cards or questions")
	generateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "print the rendered prompt instead of writing a request file")

	_ = generateCmd.MarkFlagRequired("topic")
}

// defaultItemCount is used for quiz questions and flashcards when --count
// is not given.
const defaultItemCount = 10

func runGenerate(cmd *cobra.Command, args []string) error {
	kind := models.ContentKind(strings.ToLower(args[0]))
	if !kind.IsValid() {
		return fmt.Errorf("unknown content kind %q, expected one of: %s", args[0], kindList())
	}

	count := generateCount
	if count == 0 {
		switch kind {
		case models.KindQuiz, models.KindFlashcards:
			count = defaultItemCount
		}
	}

	params := prompts.Params{
		Topic:      generateTopic,
		Subject:    generateSubject,
		GradeLevel: generateGrade,
		Difficulty: generateDifficulty,
		Curriculum: generateCurriculum,
		Count:      count,
	}

	if generateStdout {
		prompt, err := prompts.Render(kind, params, GetTemplatesDir())
		if err != nil {
			return fmt.Errorf("render prompt: %w", err)
		}
		fmt.Println(prompt)
		return nil
	}

	req, err := prompts.NewRequest(kind, params, GetTemplatesDir(), time.Now())
	if err != nil {
		return fmt.Errorf("build generation request: %w", err)
	}

	path, err := req.Write(GetOutboxDir())
	if err != nil {
		return fmt.Errorf("write generation request: %w", err)
	}

	tc := buildTelemetry()
	defer func() { _ = tc.Close() }()
	telemetry.TrackGenerate(tc, string(kind))

	fmt.Printf("📤 Request %s written: %s\n", req.ID, path)
	fmt.Printf("   The answer will appear in the inbox. Import it with: studywing watch\n")
	return nil
}

// kindList renders the supported content kinds for help and error text.
func kindList() string {
	kinds := models.AllContentKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
