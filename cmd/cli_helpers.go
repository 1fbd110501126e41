package cmd

import (
	"github.com/spf13/viper"

	"github.com/studywing/studywing/internal/telemetry"
)

// telemetryAPIKey is the PostHog project key baked in at release time via
// -ldflags. An empty key leaves telemetry inert even when consent was given.
var telemetryAPIKey = ""

func isVerbose() bool {
	return viper.GetBool("verbose")
}

// currentUser resolves the active user profile: --user flag, then config.
func currentUser() string {
	if userFlag != "" {
		return userFlag
	}
	return GetConfig().User
}

// buildTelemetry asks for consent on first run and returns a tracking client.
// The client is a no-op unless the user opted in; callers must Close it.
func buildTelemetry() telemetry.Client {
	if _, err := telemetry.CheckAndPromptConsent(); err != nil {
		LogError("telemetry consent", err)
	}

	apiKey := GetConfig().Telemetry.APIKey
	if apiKey == "" {
		apiKey = telemetryAPIKey
	}
	return telemetry.BuildClient(apiKey, GetConfig().Telemetry.Endpoint, version)
}
