/*
Copyright © 2025 StudyWing Authors
*/
package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/studywing/studywing/internal/app"
	"github.com/studywing/studywing/internal/archive"
	"github.com/studywing/studywing/internal/logger"
	"github.com/studywing/studywing/store"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// userFlag selects the profile commands operate on.
	userFlag string
	// version is the application version.
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "studywing",
	Short: "StudyWing CLI turns generated study material into a spaced-repetition practice loop.",
	Long: `StudyWing CLI manages your personal study material from the command line.
It renders generation requests, ingests the resulting study payloads, and
schedules flashcard reviews with a spaced-repetition engine.`,
	Run: func(cmd *cobra.Command, args []string) {
		// return help if no args are provided
		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(0)
		}

		// otherwise, run the subcommand
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	logger.SetVersion(version)
	logger.SetCommand(strings.Join(os.Args[1:], " "))

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.studywing.yaml or ./.studywing.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "user profile to operate on")

	// Bind persistent flags to Viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

// GetDataDir returns the directory the collection store lives in.
func GetDataDir() string {
	config := GetConfig()
	if filepath.IsAbs(config.Data.Dir) {
		return config.Data.Dir
	}
	return filepath.Join(config.Project.RootDir, config.Data.Dir)
}

// GetArchivePath returns the full path to the review log database.
func GetArchivePath() string {
	config := GetConfig()
	if filepath.IsAbs(config.Data.ArchiveFile) {
		return config.Data.ArchiveFile
	}
	return filepath.Join(config.Project.RootDir, config.Data.ArchiveFile)
}

// GetInboxDir returns the directory watched for generation payloads.
func GetInboxDir() string {
	config := GetConfig()
	if filepath.IsAbs(config.Project.InboxDir) {
		return config.Project.InboxDir
	}
	return filepath.Join(config.Project.RootDir, config.Project.InboxDir)
}

// GetOutboxDir returns the directory generation requests are written to.
func GetOutboxDir() string {
	config := GetConfig()
	if filepath.IsAbs(config.Project.OutboxDir) {
		return config.Project.OutboxDir
	}
	return filepath.Join(config.Project.RootDir, config.Project.OutboxDir)
}

// GetTemplatesDir returns the directory holding prompt template overrides.
func GetTemplatesDir() string {
	config := GetConfig()
	if filepath.IsAbs(config.Project.TemplatesDir) {
		return config.Project.TemplatesDir
	}
	return filepath.Join(config.Project.RootDir, config.Project.TemplatesDir)
}

// OpenContext initializes the collection store and the review log and wires
// them into an app context. The caller must Close the returned context.
func OpenContext() (*app.Context, func(), error) {
	config := GetConfig()

	st, err := store.New(afero.NewOsFs(), GetDataDir(), store.Config{
		QuotaBytes: config.Data.QuotaBytes,
	})
	if err != nil {
		return nil, nil, err
	}

	log, err := archive.Open(GetArchivePath())
	if err != nil {
		return nil, nil, err
	}

	ctx := app.NewContext(st, log)
	closeFn := func() {
		if err := log.Close(); err != nil {
			LogError("close review log", err)
		}
	}
	return ctx, closeFn, nil
}
