package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/studywing/studywing/internal/telemetry"
)

// setupTestProject points the configuration at a throwaway project directory
// and keeps telemetry consent state out of the real home directory. Flag
// state left over from earlier command runs is reset to defaults.
func setupTestProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	viper.Reset()
	viper.Set("user", "tester")
	viper.Set("project.rootDir", root)
	telemetry.SetConfigDir(t.TempDir())

	resetCommandFlags(t)
	InitConfig()
	return root
}

// resetCommandFlags restores every subcommand flag to its default. Cobra
// keeps parsed flag values across Execute calls, so without this one test's
// flags leak into the next.
func resetCommandFlags(t *testing.T) {
	t.Helper()

	commands := []*cobra.Command{
		generateCmd, importCmd, watchCmd, reviewCmd, cardsCmd,
		historyCmd, quizRecordCmd, exportCmd,
	}
	for _, c := range commands {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if err := f.Value.Set(f.DefValue); err != nil {
				t.Fatalf("reset flag %s: %v", f.Name, err)
			}
			f.Changed = false
		})
	}
	userFlag = ""
}

// captureStdout runs fn and returns everything it printed to stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	original := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = original
	return buf.String()
}
