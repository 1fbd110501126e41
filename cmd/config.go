package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/studywing/studywing/internal/logger"
	"github.com/studywing/studywing/internal/project"
	"github.com/studywing/studywing/store"
	"github.com/studywing/studywing/types"
)

const (
	configName = ".studywing"
	envPrefix  = "STUDYWING"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Validate, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(config *types.AppConfig) error {
	errs := validate.Struct(config)
	if errs != nil {
		return errs
	}
	return nil
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present
	if err := godotenv.Load(); err != nil {
		// It's okay if .env file doesn't exist.
	}

	// Environment variable handling must be set up BEFORE reading the config
	// file, so that env vars can influence config loading if needed.
	viper.SetEnvPrefix(envPrefix)                          // e.g., STUDYWING_VERBOSE
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // Replace dots with underscores in env var names

	cfgFileFlag := viper.GetString("config") // Value from --config flag

	// We need project.rootDir *before* the full unmarshal to locate the
	// config file itself. When nothing has set it, walk up from the working
	// directory for an existing project before falling back to the default
	// directory name.
	potentialProjectConfigDir := viper.GetString("project.rootDir")
	if potentialProjectConfigDir == "" {
		if found, err := project.Detect("."); err == nil {
			potentialProjectConfigDir = found
		} else {
			potentialProjectConfigDir = ".studywing"
		}
	}

	if cfgFileFlag != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if _, err := os.Stat(potentialProjectConfigDir); !os.IsNotExist(err) {
			// Project-specific config directory exists. Prioritize it.
			viper.AddConfigPath(potentialProjectConfigDir) // e.g., look in ./.studywing/
			viper.SetConfigName(configName)                // ./.studywing/.studywing.yaml
		} else {
			// Fall back to home and current directory for a global config.
			home, err := os.UserHomeDir()
			cobra.CheckErr(err)
			viper.AddConfigPath(home) // $HOME/.studywing.yaml
			viper.AddConfigPath(".")  // ./.studywing.yaml
			viper.SetConfigName(configName)
		}
	}

	// Attempt to read the configuration file.
	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				// A config file named by flag but missing is worth reporting.
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			} else if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			// Config file was found but another error was produced.
			PrintError("Error reading config file: "+viper.ConfigFileUsed(), err)
		}
	}

	// Set default values
	viper.SetDefault("user", "default")

	viper.SetDefault("project.rootDir", potentialProjectConfigDir)
	viper.SetDefault("project.inboxDir", "inbox")
	viper.SetDefault("project.outboxDir", "outbox")
	viper.SetDefault("project.templatesDir", "templates")
	viper.SetDefault("data.dir", "data")
	viper.SetDefault("data.quotaBytes", store.DefaultQuotaBytes)
	viper.SetDefault("data.archiveFile", "reviews.db")

	viper.SetDefault("review.maxCards", 0)

	viper.SetDefault("telemetry.apiKey", "")
	viper.SetDefault("telemetry.endpoint", "")

	// After all sources are configured, unmarshal into GlobalAppConfig
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	// Ensure critical project paths are set, falling back to Viper's
	// defaults if empty after unmarshal. This handles config files missing
	// these specific nested keys.
	if GlobalAppConfig.Project.RootDir == "" {
		GlobalAppConfig.Project.RootDir = viper.GetString("project.rootDir")
	}
	if GlobalAppConfig.Project.InboxDir == "" {
		GlobalAppConfig.Project.InboxDir = viper.GetString("project.inboxDir")
	}
	if GlobalAppConfig.Project.OutboxDir == "" {
		GlobalAppConfig.Project.OutboxDir = viper.GetString("project.outboxDir")
	}
	if GlobalAppConfig.Project.TemplatesDir == "" {
		GlobalAppConfig.Project.TemplatesDir = viper.GetString("project.templatesDir")
	}
	if GlobalAppConfig.Data.Dir == "" {
		GlobalAppConfig.Data.Dir = viper.GetString("data.dir")
	}
	if GlobalAppConfig.Data.ArchiveFile == "" {
		GlobalAppConfig.Data.ArchiveFile = viper.GetString("data.archiveFile")
	}

	// Validate the populated configuration
	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}

	// Crash logs land next to the rest of the project state.
	logger.SetBasePath(GlobalAppConfig.Project.RootDir)
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
