// Package config provides Viper-based configuration loading for the content
// pipeline.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ContentConfig holds the base directories of the three content verticals.
// Each directory contains an index.json manifest plus one JSON file per
// content entry.
type ContentConfig struct {
	ItemsPath    string `mapstructure:"items_path"`
	MonstersPath string `mapstructure:"monsters_path"`
	ScenesPath   string `mapstructure:"scenes_path"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Content ContentConfig `mapstructure:"content"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if c.Content.ItemsPath == "" {
		errs = append(errs, "content.items_path must not be empty")
	}
	if c.Content.MonstersPath == "" {
		errs = append(errs, "content.monsters_path must not be empty")
	}
	if c.Content.ScenesPath == "" {
		errs = append(errs, "content.scenes_path must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with ZORK_ prefix
	v.SetEnvPrefix("ZORK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return fromViper(v)
}

// Default builds a Config from defaults and environment overrides alone, for
// callers that run without a config file.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Default() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ZORK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("content.items_path", "data/items")
	v.SetDefault("content.monsters_path", "data/monsters")
	v.SetDefault("content.scenes_path", "data/scenes")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
