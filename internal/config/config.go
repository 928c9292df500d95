// Package config loads persona settings from an optional YAML file,
// PERSONA_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. PERSONA_LOG_FILE.
const EnvPrefix = "PERSONA"

// Config holds all application configuration.
type Config struct {
	Log     LogConfig
	Journal JournalConfig
	Fetch   FetchConfig
}

// LogConfig controls the file logger. An empty File disables logging.
type LogConfig struct {
	File   string
	Level  string
	Format string
}

// JournalConfig controls the optional answer journal. An empty Path
// disables it.
type JournalConfig struct {
	Path string
}

// FetchConfig controls image fetching.
type FetchConfig struct {
	UserAgent string
}

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("journal.path", "")
	v.SetDefault("fetch.user_agent", "persona")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path, or searches ./persona.yaml and
// $XDG_CONFIG_HOME/persona/persona.yaml when path is empty. A missing
// file is only an error when path was given explicitly.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("persona")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := configDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Log: LogConfig{
			File:   v.GetString("log.file"),
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		Journal: JournalConfig{
			Path: v.GetString("journal.path"),
		},
		Fetch: FetchConfig{
			UserAgent: v.GetString("fetch.user_agent"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}

func configDir() (string, error) {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "persona"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "persona"), nil
}
