// Package config provides configuration data structures for margo.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dquint/margo/internal/shortcut"
)

// Config represents the complete margo configuration loaded from
// ~/.margo/config.yaml.
type Config struct {
	Shortcuts ShortcutsConfig `yaml:"shortcuts" json:"shortcuts" mapstructure:"shortcuts"`
	Index     IndexConfig     `yaml:"index"     json:"index"     mapstructure:"index"`
	Logging   LoggingConfig   `yaml:"logging"   json:"logging"   mapstructure:"logging"`
}

// ShortcutsConfig configures the reserved key chords.
type ShortcutsConfig struct {
	// Palette opens the command palette (default: ctrl+p).
	Palette string `yaml:"palette" json:"palette" mapstructure:"palette"`
	// Finder opens the file finder (default: ctrl+o).
	Finder string `yaml:"finder" json:"finder" mapstructure:"finder"`
}

// IndexConfig configures the markdown file index.
type IndexConfig struct {
	// Roots are the directories scanned for markdown files.
	Roots []string `yaml:"roots" json:"roots" mapstructure:"roots"`
	// StaleAfter is how long index results stay fresh before a focus
	// event triggers a rescan (default: 5m).
	StaleAfter time.Duration `yaml:"stale_after" json:"stale_after" mapstructure:"stale_after"`
	// MaxResults caps the number of finder results (default: 20).
	MaxResults int `yaml:"max_results" json:"max_results" mapstructure:"max_results"`
}

// LoggingConfig configures file logging.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error.
	Level string `yaml:"level" json:"level" mapstructure:"level"`
	// Dir is the log directory. Empty means ~/.margo/logs.
	Dir string `yaml:"dir" json:"dir" mapstructure:"dir"`
	// MaxFiles is the number of log files kept (default: 10).
	MaxFiles int `yaml:"max_files" json:"max_files" mapstructure:"max_files"`
	// JSON switches log output to JSON format.
	JSON bool `yaml:"json" json:"json" mapstructure:"json"`
}

// Default values.
const (
	DefaultPaletteChord = "ctrl+p"
	DefaultFinderChord  = "ctrl+o"
	DefaultStaleAfter   = 5 * time.Minute
	DefaultMaxResults   = 20
	DefaultMaxLogFiles  = 10
	DefaultLogLevel     = "info"
)

// NewConfig returns a new Config with default values applied.
func NewConfig() *Config {
	return &Config{
		Shortcuts: ShortcutsConfig{
			Palette: DefaultPaletteChord,
			Finder:  DefaultFinderChord,
		},
		Index: IndexConfig{
			Roots:      []string{"~"},
			StaleAfter: DefaultStaleAfter,
			MaxResults: DefaultMaxResults,
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			MaxFiles: DefaultMaxLogFiles,
		},
	}
}

// ApplyDefaults fills any zero values with defaults.
func (c *Config) ApplyDefaults() {
	if c.Shortcuts.Palette == "" {
		c.Shortcuts.Palette = DefaultPaletteChord
	}
	if c.Shortcuts.Finder == "" {
		c.Shortcuts.Finder = DefaultFinderChord
	}
	if len(c.Index.Roots) == 0 {
		c.Index.Roots = []string{"~"}
	}
	if c.Index.StaleAfter <= 0 {
		c.Index.StaleAfter = DefaultStaleAfter
	}
	if c.Index.MaxResults <= 0 {
		c.Index.MaxResults = DefaultMaxResults
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.MaxFiles <= 0 {
		c.Logging.MaxFiles = DefaultMaxLogFiles
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := shortcut.ParseChord(c.Shortcuts.Palette); err != nil {
		return fmt.Errorf("shortcuts.palette: %w", err)
	}
	if _, err := shortcut.ParseChord(c.Shortcuts.Finder); err != nil {
		return fmt.Errorf("shortcuts.finder: %w", err)
	}
	if c.Shortcuts.Palette == c.Shortcuts.Finder {
		return fmt.Errorf("shortcuts.palette and shortcuts.finder must differ")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	return nil
}

// yamlConfig mirrors Config for serialization; durations become
// strings ("5m") so the written file stays human-editable.
type yamlConfig struct {
	Shortcuts ShortcutsConfig `yaml:"shortcuts"`
	Index     struct {
		Roots      []string `yaml:"roots"`
		StaleAfter string   `yaml:"stale_after"`
		MaxResults int      `yaml:"max_results"`
	} `yaml:"index"`
	Logging LoggingConfig `yaml:"logging"`
}

// Save writes the configuration to path as YAML, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	var out yamlConfig
	out.Shortcuts = c.Shortcuts
	out.Index.Roots = c.Index.Roots
	out.Index.StaleAfter = c.Index.StaleAfter.String()
	out.Index.MaxResults = c.Index.MaxResults
	out.Logging = c.Logging

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
