package cmd

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studywing/studywing/models"
)

func seedPath(t *testing.T) {
	t.Helper()

	ctx, closeCtx, err := OpenContext()
	require.NoError(t, err)
	defer closeCtx()

	path := models.LearningPath{
		Subject:     "math",
		Goal:        "pass finals",
		GeneratedAt: time.Now(),
		Steps: []models.LearningPathStep{
			{ID: "step-1-fractions", Title: "Fractions"},
			{ID: "step-2-equations", Title: "Equations"},
		},
	}
	require.NoError(t, ctx.Path.Put("tester", path))
}

func TestPathShowAndDone(t *testing.T) {
	setupTestProject(t)
	seedPath(t)

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"path"})
		require.NoError(t, rootCmd.Execute())
	})
	assert.Contains(t, out, "Fractions")
	assert.Contains(t, out, "0 of 2 steps done")

	// a unique step-id prefix is enough
	out = captureStdout(t, func() {
		rootCmd.SetArgs([]string{"path", "done", "step-1"})
		require.NoError(t, rootCmd.Execute())
	})
	assert.Contains(t, out, "1 of 2 steps completed")

	out = captureStdout(t, func() {
		rootCmd.SetArgs([]string{"path"})
		require.NoError(t, rootCmd.Execute())
	})
	assert.Contains(t, out, "1 of 2 steps done")
}

func TestPathDoneUnknownStep(t *testing.T) {
	setupTestProject(t)
	seedPath(t)
	rootCmd.SetOut(os.Stderr)
	rootCmd.SetErr(os.Stderr)

	rootCmd.SetArgs([]string{"path", "done", "step-9"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPathDoneAmbiguousPrefix(t *testing.T) {
	setupTestProject(t)
	seedPath(t)
	rootCmd.SetOut(os.Stderr)
	rootCmd.SetErr(os.Stderr)

	rootCmd.SetArgs([]string{"path", "done", "step"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous ID prefix")
	assert.Contains(t, err.Error(), "step-1-fractions")
}

func TestPathEmpty(t *testing.T) {
	setupTestProject(t)

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"path"})
		require.NoError(t, rootCmd.Execute())
	})
	assert.Contains(t, out, "No learning path yet")

	rootCmd.SetOut(os.Stderr)
	rootCmd.SetErr(os.Stderr)
	rootCmd.SetArgs([]string{"path", "done", "anything"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no learning path yet")
}
