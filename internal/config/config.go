// Package config provides Viper-based configuration loading for the adventure.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// Output is the zap sink the logs are written to ("stderr" or a file path).
	// Stdout is reserved for game text and is rejected.
	Output string `mapstructure:"output"`
}

// Color modes for GameConfig.Color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// GameConfig holds settings for the interactive session.
type GameConfig struct {
	// Prompt is written before every read of player input.
	Prompt string `mapstructure:"prompt"`
	// Color selects ANSI styling: "auto", "always", or "never".
	Color string `mapstructure:"color"`
	// EOFLimit is the number of consecutive end-of-input conditions tolerated
	// before the session ends. 0 means unlimited.
	EOFLimit int `mapstructure:"eof_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Game    GameConfig    `mapstructure:"game"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateGame(c.Game); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// stdoutPaths are the logging outputs that would interleave with game text.
var stdoutPaths = map[string]bool{
	"stdout":      true,
	"/dev/stdout": true,
	"/dev/fd/1":   true,
}

func validateLogging(l LoggingConfig) error {
	var errs []string
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		errs = append(errs, fmt.Sprintf("logging.level must be one of [debug, info, warn, error], got %q", l.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		errs = append(errs, fmt.Sprintf("logging.format must be one of [json, console], got %q", l.Format))
	}
	if l.Output == "" {
		errs = append(errs, "logging.output must not be empty")
	}
	if stdoutPaths[l.Output] {
		errs = append(errs, fmt.Sprintf("logging.output must not be stdout, got %q", l.Output))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateGame(g GameConfig) error {
	var errs []string
	validColors := map[string]bool{ColorAuto: true, ColorAlways: true, ColorNever: true}
	if !validColors[g.Color] {
		errs = append(errs, fmt.Sprintf("game.color must be one of [auto, always, never], got %q", g.Color))
	}
	if g.EOFLimit < 0 {
		errs = append(errs, fmt.Sprintf("game.eof_limit must be >= 0, got %d", g.EOFLimit))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// Load builds the configuration from defaults, the optional YAML file at path,
// and ADVENTURE_-prefixed environment variables, then validates the result.
//
// Precondition: path is empty or names a readable YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	// Environment variable overrides with ADVENTURE_ prefix
	v.SetEnvPrefix("ADVENTURE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	cfg, err := LoadFromViper(defaultViper())
	if err != nil {
		panic(fmt.Sprintf("default configuration is invalid: %v", err))
	}
	return cfg
}

func defaultViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")

	v.SetDefault("game.prompt", "What would you like to do? ")
	v.SetDefault("game.color", ColorAuto)
	v.SetDefault("game.eof_limit", 3)
}
