package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePayload(t *testing.T, dir, name, payload string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(payload), 0644))
	return path
}

func TestImportFlashcardsPayload(t *testing.T) {
	setupTestProject(t)

	payload := `{
		"kind": "flashcards",
		"topic": "Photosynthesis",
		"subject": "Biology",
		"cards": [
			{"front": "What do plants absorb?", "back": "CO2 and light"},
			{"front": "Where does it happen?", "back": "Chloroplasts"}
		]
	}`
	path := writePayload(t, t.TempDir(), "result.json", payload)

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"import", path})
		require.NoError(t, rootCmd.Execute())
	})

	assert.Contains(t, out, "2 new cards due now")
	assert.Contains(t, out, "Imported 1 of 1")

	ctx, closeCtx, err := OpenContext()
	require.NoError(t, err)
	defer closeCtx()

	cards, err := ctx.Cards.All("tester")
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Photosynthesis", cards[0].Topic)

	history, err := ctx.History.All("tester")
	require.NoError(t, err)
	require.Len(t, history, 1)
}

func TestImportPathPayload(t *testing.T) {
	setupTestProject(t)

	payload := `{
		"kind": "path",
		"topic": "Linear Algebra",
		"goal": "solve systems of equations",
		"steps": [
			{"title": "Vectors", "description": "Add and scale vectors."},
			{"title": "Matrices", "description": "Multiply matrices by hand."}
		]
	}`
	path := writePayload(t, t.TempDir(), "path.json", payload)

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"import", path})
		require.NoError(t, rootCmd.Execute())
	})

	assert.Contains(t, out, "learning path")
	assert.Contains(t, out, "2 steps")

	ctx, closeCtx, err := OpenContext()
	require.NoError(t, err)
	defer closeCtx()

	stored, ok, err := ctx.Path.Get("tester")
	require.NoError(t, err)
	require.True(t, ok, "imported path should be stored")
	assert.Equal(t, "solve systems of equations", stored.Goal)
	require.Len(t, stored.Steps, 2)
	assert.Equal(t, "step-1-vectors", stored.Steps[0].ID)
}

func TestImportSkipsInvalidPayload(t *testing.T) {
	setupTestProject(t)

	dir := t.TempDir()
	bad := writePayload(t, dir, "bad.json", `{"kind": "notes", "topic": ""}`)
	good := writePayload(t, dir, "good.json", `{"kind": "notes", "topic": "Trig", "content": "SOH CAH TOA"}`)

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"import", bad, good})
		require.NoError(t, rootCmd.Execute())
	})

	assert.Contains(t, out, "Imported 1 of 2")

	ctx, closeCtx, err := OpenContext()
	require.NoError(t, err)
	defer closeCtx()

	history, err := ctx.History.All("tester")
	require.NoError(t, err)
	require.Len(t, history, 1, "only the valid payload may land")
	assert.Equal(t, "Trig", history[0].Topic)
}

func TestImportAllInvalidFails(t *testing.T) {
	setupTestProject(t)
	rootCmd.SetOut(os.Stderr)
	rootCmd.SetErr(os.Stderr)

	bad := writePayload(t, t.TempDir(), "bad.json", `{"kind": "essay", "topic": "x"}`)

	rootCmd.SetArgs([]string{"import", bad})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no payloads imported")
}
