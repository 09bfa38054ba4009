// Package config provides configuration loading and validation for the
// git-line-totals CLI. Values are layered: built-in defaults, then an
// optional config file, then GIT_LINE_TOTALS_* environment variables; flags
// override on top in the command layer.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/Sumatoshi-tech/git-line-totals/pkg/classify"
	"github.com/Sumatoshi-tech/git-line-totals/pkg/report"
)

// Default configuration values.
const (
	DefaultGroupBy = string(classify.ModeLanguage)
	DefaultFormat  = string(report.FormatTable)
	DefaultRev     = "HEAD"
)

// Sentinel validation errors.
var (
	ErrInvalidLogLevel  = errors.New("invalid log level")
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Config holds all configuration for a run.
type Config struct {
	GroupBy string        `mapstructure:"groupby"`
	Format  string        `mapstructure:"format"`
	Rev     string        `mapstructure:"rev"`
	Logging LoggingConfig `mapstructure:"logging"`

	// GroupBySet records whether groupby came from the config file or the
	// environment rather than the built-in default. Commands with their own
	// grouping default (hist) only honor GroupBy when it was set explicitly.
	GroupBySet bool `mapstructure:"-"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from an optional file and environment variables.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("git-line-totals")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
	}

	viperCfg.SetEnvPrefix("GIT_LINE_TOTALS")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	config.GroupBySet = viperCfg.InConfig("groupby") || os.Getenv("GIT_LINE_TOTALS_GROUPBY") != ""

	validateErr := config.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("groupby", DefaultGroupBy)
	viperCfg.SetDefault("format", DefaultFormat)
	viperCfg.SetDefault("rev", DefaultRev)

	viperCfg.SetDefault("logging.level", "info")
	viperCfg.SetDefault("logging.format", "text")
}

// Validate checks all enum-valued settings.
func (c *Config) Validate() error {
	_, modeErr := classify.ParseMode(c.GroupBy)
	if modeErr != nil {
		return modeErr
	}

	_, formatErr := report.ParseFormat(c.Format)
	if formatErr != nil {
		return formatErr
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	return nil
}
