package main

import (
	"os"

	"github.com/spf13/cobra"

	"sigcheck/internal/config"
	"sigcheck/internal/logging"
	"sigcheck/internal/version"
)

var (
	// logLevelFlag is the CLI --log-level flag value
	logLevelFlag string
	// logFormatFlag is the CLI --log-format flag value
	logFormatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "sigcheck",
	Short: "sigcheck - API surface governance",
	Long: `sigcheck compares API signature snapshots to detect binary and source
incompatibilities between library versions. It parses versioned snapshot
files, matches the two API trees in lock step, classifies every change
against a compatibility rule battery, and applies baseline and severity
policy to decide whether the run fails.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("sigcheck version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error (default: from config)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "",
		"Log format: human or json (default: from config)")
}

// mustLoadConfig loads the repo config, exiting on malformed files.
func mustLoadConfig() *config.Config {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fatal(err)
	}
	return cfg
}

// newLogger builds a logger from config with CLI flag overrides.
// Precedence: CLI flag > config.json > defaults.
func newLogger(cfg *config.Config) *logging.Logger {
	level := cfg.Logging.Level
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	format := cfg.Logging.Format
	if logFormatFlag != "" {
		format = logFormatFlag
	}
	return logging.NewLogger(logging.Config{
		Level:  logging.LogLevel(level),
		Format: logging.Format(format),
	})
}

// fatal prints a structural error and exits with code 2, leaving exit
// code 1 to mean "incompatibilities found".
func fatal(err error) {
	_, _ = os.Stderr.WriteString("sigcheck: " + err.Error() + "\n")
	os.Exit(2)
}
