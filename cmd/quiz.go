/*
Copyright © 2025 StudyWing Authors
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/studywing/studywing/internal/telemetry"
	"github.com/studywing/studywing/internal/ui"
)

var (
	quizTopic    string
	quizSubject  string
	quizTotal    int
	quizCorrect  int
	quizDuration int
)

// quizCmd represents the quiz command
var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Track taken quizzes",
	Long: `Track the quizzes you take outside StudyWing and the scores you got.

Examples:
  studywing quiz list
  studywing quiz record --topic "Cell biology" --total 10 --correct 8`,
}

var quizListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded quiz results, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, closeCtx, err := OpenContext()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer closeCtx()

		results, err := ctx.Quizzes.All(currentUser())
		if err != nil {
			return fmt.Errorf("load quiz results: %w", err)
		}
		fmt.Println(ui.RenderQuizTable(results))
		return nil
	},
}

var quizRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record the result of a taken quiz",
	Args:  cobra.NoArgs,
	RunE:  runQuizRecord,
}

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.AddCommand(quizListCmd)
	quizCmd.AddCommand(quizRecordCmd)

	quizRecordCmd.Flags().StringVarP(&quizTopic, "topic", "t", "", "quiz topic (required)")
	quizRecordCmd.Flags().StringVarP(&quizSubject, "subject", "s", "", "school subject")
	quizRecordCmd.Flags().IntVar(&quizTotal, "total", 0, "number of questions (required)")
	quizRecordCmd.Flags().IntVar(&quizCorrect, "correct", 0, "number of correct answers")
	quizRecordCmd.Flags().IntVar(&quizDuration, "duration", 0, "time taken in seconds")

	_ = quizRecordCmd.MarkFlagRequired("topic")
	_ = quizRecordCmd.MarkFlagRequired("total")
}

func runQuizRecord(cmd *cobra.Command, args []string) error {
	if quizTotal <= 0 {
		return fmt.Errorf("--total must be positive")
	}
	if quizCorrect < 0 || quizCorrect > quizTotal {
		return fmt.Errorf("--correct must be between 0 and %d", quizTotal)
	}

	ctx, closeCtx, err := OpenContext()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeCtx()

	result, err := ctx.RecordQuiz(currentUser(), quizTopic, quizSubject, quizTotal, quizCorrect, quizDuration, time.Now())
	if err != nil {
		return fmt.Errorf("record quiz: %w", err)
	}

	tc := buildTelemetry()
	defer func() { _ = tc.Close() }()
	telemetry.TrackQuizRecorded(tc, result.Total)

	fmt.Printf("✅ Recorded: %q, %d/%d (%.0f%%)\n", result.Topic, result.CorrectAnswers, result.Total, result.Score)
	return nil
}
