// Package config provides configuration loading and management for margo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "MARGO"
)

// DefaultConfigPath returns the default config file location,
// ~/.margo/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".margo", "config.yaml")
	}
	return filepath.Join(home, ".margo", "config.yaml")
}

// Loader handles loading configuration from files and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// LoadConfig loads configuration from the specified path, applies
// defaults, merges environment variables, and validates the result.
// A missing config file is not an error: margo runs fine on defaults.
func (l *Loader) LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := NewConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		l.applyEnvOverrides(cfg)
		return cfg, nil
	}

	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to read config file",
			Err:     err,
		}
	}

	if err := l.v.Unmarshal(cfg, viperDecodeHook); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "failed to parse config file",
			Err:     err,
		}
	}

	l.applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, &LoadError{
			Path:    path,
			Message: "configuration validation failed",
			Err:     err,
		}
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func (l *Loader) applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "_SHORTCUTS_PALETTE"); v != "" {
		cfg.Shortcuts.Palette = v
	}
	if v := os.Getenv(EnvPrefix + "_SHORTCUTS_FINDER"); v != "" {
		cfg.Shortcuts.Finder = v
	}
	if v := os.Getenv(EnvPrefix + "_INDEX_ROOTS"); v != "" {
		cfg.Index.Roots = strings.Split(v, string(os.PathListSeparator))
	}
	if v := os.Getenv(EnvPrefix + "_INDEX_STALE_AFTER"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Index.StaleAfter = d
		}
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "_LOGGING_JSON"); v != "" {
		cfg.Logging.JSON = parseBool(v)
	}
}

// parseBool parses a string as a boolean value.
// Returns true for "true", "1", "yes" (case-insensitive).
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// viperDecodeHook provides custom decoding for viper unmarshaling.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path    string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load is a convenience function that creates a new Loader and loads
// configuration. If path is empty, it uses DefaultConfigPath.
func Load(path string) (*Config, error) {
	return NewLoader().LoadConfig(path)
}
