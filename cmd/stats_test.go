package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsAfterImportAndQuiz(t *testing.T) {
	setupTestProject(t)

	payload := `{
		"kind": "flashcards",
		"topic": "Optics",
		"cards": [
			{"front": "a", "back": "b"},
			{"front": "c", "back": "d"},
			{"front": "e", "back": "f"}
		]
	}`
	path := writePayload(t, t.TempDir(), "cards.json", payload)

	captureStdout(t, func() {
		rootCmd.SetArgs([]string{"import", path})
		require.NoError(t, rootCmd.Execute())
		rootCmd.SetArgs([]string{"quiz", "record", "--topic", "Optics", "--total", "4", "--correct", "3"})
		require.NoError(t, rootCmd.Execute())
	})

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"stats"})
		require.NoError(t, rootCmd.Execute())
	})

	assert.Contains(t, out, "Cards: 3 total · 3 due")
	assert.Contains(t, out, "Quizzes: 1 taken · 75% average")
	assert.Contains(t, out, "Optics")

	// the snapshot is persisted alongside being rendered
	ctx, closeCtx, err := OpenContext()
	require.NoError(t, err)
	defer closeCtx()

	snap, ok, err := ctx.Analysis.Get("tester")
	require.NoError(t, err)
	require.True(t, ok, "stats must persist the analysis snapshot")
	assert.Equal(t, 3, snap.TotalCards)
	assert.Equal(t, 1, snap.QuizCount)
}
