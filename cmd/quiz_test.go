package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizRecordAndList(t *testing.T) {
	setupTestProject(t)

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"quiz", "record", "--topic", "Cell biology", "--total", "10", "--correct", "8"})
		require.NoError(t, rootCmd.Execute())
	})
	assert.Contains(t, out, "8/10")
	assert.Contains(t, out, "80%")

	out = captureStdout(t, func() {
		rootCmd.SetArgs([]string{"quiz", "list"})
		require.NoError(t, rootCmd.Execute())
	})
	assert.Contains(t, out, "Cell biology")
	assert.Contains(t, out, "80%")
}

func TestQuizRecordRejectsBadCounts(t *testing.T) {
	setupTestProject(t)
	rootCmd.SetOut(os.Stderr)
	rootCmd.SetErr(os.Stderr)

	rootCmd.SetArgs([]string{"quiz", "record", "--topic", "x", "--total", "5", "--correct", "9"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--correct must be between 0 and 5")
}

func TestQuizListEmpty(t *testing.T) {
	setupTestProject(t)

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"quiz", "list"})
		require.NoError(t, rootCmd.Execute())
	})
	assert.Contains(t, out, "No quiz results recorded yet")
}
