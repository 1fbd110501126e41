/*
Copyright © 2025 StudyWing Authors
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	User      string          `mapstructure:"user" validate:"required"`
	Verbose   bool            `mapstructure:"verbose"`
	Config    string          `mapstructure:"config"`
	Project   ProjectConfig   `mapstructure:"project" validate:"required"`
	Data      DataConfig      `mapstructure:"data" validate:"required"`
	Review    ReviewConfig    `mapstructure:"review" validate:"omitempty"`
	Telemetry TelemetryConfig `mapstructure:"telemetry" validate:"omitempty"`
}

// ProjectConfig holds the project directory layout. The inbox receives
// generation payloads, the outbox holds rendered generation requests and
// the templates dir carries user prompt overrides.
type ProjectConfig struct {
	RootDir      string `mapstructure:"rootDir" validate:"required"`
	InboxDir     string `mapstructure:"inboxDir" validate:"required"`
	OutboxDir    string `mapstructure:"outboxDir" validate:"required"`
	TemplatesDir string `mapstructure:"templatesDir" validate:"required"`
}

// DataConfig holds storage configuration
type DataConfig struct {
	Dir         string `mapstructure:"dir" validate:"required"`
	QuotaBytes  int64  `mapstructure:"quotaBytes" validate:"omitempty,min=1024"`
	ArchiveFile string `mapstructure:"archiveFile" validate:"required"`
}

// ReviewConfig holds review session settings
type ReviewConfig struct {
	// MaxCards caps how many due cards one session pulls in. Zero means
	// no cap.
	MaxCards int `mapstructure:"maxCards" validate:"omitempty,min=0"`
}

// TelemetryConfig holds the PostHog connection settings. Consent state
// lives outside the project config, under the user's home directory.
type TelemetryConfig struct {
	APIKey   string `mapstructure:"apiKey"`
	Endpoint string `mapstructure:"endpoint"`
}
