package telemetry

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// PromptForConsent displays the consent prompt and saves the user's choice.
// In a non-interactive environment it records a "no" without prompting.
func PromptForConsent() (bool, error) {
	cfg, err := Load()
	if err != nil {
		return false, err
	}

	if !isInteractive() {
		cfg.Disable()
		if err := cfg.Save(); err != nil {
			return false, err
		}
		return false, nil
	}

	fmt.Println()
	fmt.Println("╭──────────────────────────────────────────────────────────────╮")
	fmt.Println("│  📊 Help improve StudyWing?                                  │")
	fmt.Println("│                                                              │")
	fmt.Println("│  StudyWing can collect anonymous usage statistics to improve │")
	fmt.Println("│  the product. Nothing you study is ever collected.           │")
	fmt.Println("│                                                              │")
	fmt.Println("│  What we collect:                                            │")
	fmt.Println("│  • Command usage (e.g., \"a review session finished\")         │")
	fmt.Println("│  • Content kinds and counts (e.g., \"12 flashcards imported\") │")
	fmt.Println("│  • OS and architecture                                       │")
	fmt.Println("│                                                              │")
	fmt.Println("│  What we DON'T collect:                                      │")
	fmt.Println("│  • Topics, card text, notes, or quiz scores                  │")
	fmt.Println("│  • Names, file paths, or IP addresses                        │")
	fmt.Println("│                                                              │")
	fmt.Println("│  You can change this anytime with:                           │")
	fmt.Println("│    studywing telemetry disable                               │")
	fmt.Println("╰──────────────────────────────────────────────────────────────╯")
	fmt.Println()
	fmt.Print("Enable anonymous telemetry? [y/N] ")

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		// Default to disabled on error
		cfg.Disable()
		if err := cfg.Save(); err != nil {
			return false, err
		}
		return false, nil
	}

	input = strings.TrimSpace(strings.ToLower(input))
	enabled := input == "y" || input == "yes"

	if enabled {
		cfg.Enable()
	} else {
		cfg.Disable()
	}
	if err := cfg.Save(); err != nil {
		return false, err
	}

	if enabled {
		fmt.Println("✅ Telemetry enabled. Thank you!")
	} else {
		fmt.Println("✅ Telemetry stays off. Enable it anytime with: studywing telemetry enable")
	}
	fmt.Println()

	return enabled, nil
}

// isInteractive reports whether both stdin and stdout are terminals. The
// prompt reads from stdin and writes to stdout, so it needs both attached;
// a redirected stdout must stay clean for output like export snapshots.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// CheckAndPromptConsent prompts on first run and otherwise reports the
// stored decision.
func CheckAndPromptConsent() (bool, error) {
	cfg, err := Load()
	if err != nil {
		return false, err
	}

	if cfg.NeedsConsent() {
		return PromptForConsent()
	}

	return cfg.IsEnabled(), nil
}
