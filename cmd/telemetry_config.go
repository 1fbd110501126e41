/*
Copyright © 2025 StudyWing Authors
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/studywing/studywing/internal/telemetry"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Manage telemetry settings",
	Long: `View and manage StudyWing's anonymous telemetry settings.

When enabled, StudyWing collects anonymous usage statistics: command usage,
content kinds and counts, OS and architecture. Topics, card text, notes and
quiz scores are never collected. Telemetry stays off until you enable it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTelemetryStatus()
	},
}

var telemetryStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current telemetry status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTelemetryStatus()
	},
}

var telemetryEnableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable anonymous telemetry",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := telemetry.Load()
		if err != nil {
			return fmt.Errorf("load telemetry settings: %w", err)
		}
		cfg.Enable()
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save telemetry settings: %w", err)
		}
		fmt.Println("✅ Telemetry enabled. Thank you for helping improve StudyWing!")
		return nil
	},
}

var telemetryDisableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable anonymous telemetry",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := telemetry.Load()
		if err != nil {
			return fmt.Errorf("load telemetry settings: %w", err)
		}
		cfg.Disable()
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("save telemetry settings: %w", err)
		}
		fmt.Println("✅ Telemetry disabled.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(telemetryCmd)

	telemetryCmd.AddCommand(telemetryStatusCmd)
	telemetryCmd.AddCommand(telemetryEnableCmd)
	telemetryCmd.AddCommand(telemetryDisableCmd)
}

func runTelemetryStatus() error {
	cfg, err := telemetry.Load()
	if err != nil {
		return fmt.Errorf("read telemetry status: %w", err)
	}

	if cfg.NeedsConsent() {
		fmt.Println("📊 Telemetry: not configured yet")
		fmt.Println("   You will be asked for consent on the next tracked command.")
		return nil
	}

	if cfg.IsEnabled() {
		fmt.Println("📊 Telemetry: enabled")
		fmt.Printf("   Anonymous ID: %s\n", cfg.AnonymousID)
		fmt.Println()
		fmt.Println("   To disable: studywing telemetry disable")
	} else {
		fmt.Println("📊 Telemetry: disabled")
		fmt.Println()
		fmt.Println("   To enable: studywing telemetry enable")
	}

	return nil
}
