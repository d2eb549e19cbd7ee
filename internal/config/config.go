// Package config loads the sigcheck configuration from .sigcheck/config.json
// and named severity profiles from TOML files.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"sigcheck/internal/errors"
	"sigcheck/internal/report"
)

const configVersion = 1

// Config represents the complete sigcheck configuration.
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Check   CheckConfig   `json:"check" mapstructure:"check"`
	History HistoryConfig `json:"history" mapstructure:"history"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// CheckConfig contains comparison defaults.
type CheckConfig struct {
	// Surface is the API surface checked when --api-surface is not given.
	Surface string `json:"surface" mapstructure:"surface"`
	// BaseApis are snapshot paths stacked under both inputs to fill
	// classpath gaps in partial snapshots.
	BaseApis []string `json:"baseApis" mapstructure:"baseApis"`
	// Baseline is the default baseline file path.
	Baseline string `json:"baseline" mapstructure:"baseline"`
	// Profile is the default severity profile path.
	Profile string `json:"profile" mapstructure:"profile"`
	// Severities overrides issue severities by tag name.
	Severities map[string]string `json:"severities" mapstructure:"severities"`
}

// HistoryConfig contains run history settings.
type HistoryConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
	// Dir holds the history database; relative paths resolve against the
	// config directory's parent.
	Dir string `json:"dir" mapstructure:"dir"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: configVersion,
		Check: CheckConfig{
			Surface:    "public",
			Severities: map[string]string{},
		},
		History: HistoryConfig{
			Enabled: false,
			Dir:     ".sigcheck",
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from root/.sigcheck/config.json. A missing
// file yields the defaults.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", configVersion)
	v.SetDefault("check.surface", "public")
	v.SetDefault("history.dir", ".sigcheck")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".sigcheck"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrap(errors.ConfigInvalid, "reading config", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.ConfigInvalid, "decoding config", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to root/.sigcheck/config.json.
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".sigcheck")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ConfigInvalid, "creating config directory", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.Wrap(errors.InternalError, "encoding config", err)
	}
	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0o644)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Version != configVersion {
		return errors.Newf(errors.ConfigInvalid, "unsupported config version %d", c.Version)
	}
	switch c.Check.Surface {
	case "", "public", "system", "removed":
	default:
		return errors.Newf(errors.ConfigInvalid, "unknown api surface %q", c.Check.Surface)
	}
	for tag, name := range c.Check.Severities {
		if _, ok := report.CanonicalIssue(tag); !ok {
			return errors.Newf(errors.ConfigInvalid, "unknown issue tag %q in severities", tag)
		}
		if _, err := report.ParseSeverity(name); err != nil {
			return errors.Newf(errors.ConfigInvalid, "severity for %s: %v", tag, err)
		}
	}
	return nil
}

// SeverityOverrides converts the configured severity names into the
// reporter's table form. Tags are resolved through the issue registry:
// viper folds JSON map keys to lower case, so the configured spelling
// cannot be used as the table key directly.
func (c *Config) SeverityOverrides() (map[report.Issue]report.Severity, error) {
	if len(c.Check.Severities) == 0 {
		return nil, nil
	}
	out := make(map[report.Issue]report.Severity, len(c.Check.Severities))
	for tag, name := range c.Check.Severities {
		issue, ok := report.CanonicalIssue(tag)
		if !ok {
			return nil, errors.Newf(errors.ConfigInvalid, "unknown issue tag %q in severities", tag)
		}
		sev, err := report.ParseSeverity(name)
		if err != nil {
			return nil, errors.Newf(errors.ConfigInvalid, "severity for %s: %v", tag, err)
		}
		out[issue] = sev
	}
	return out, nil
}
