// Package logging provides structured logging for margo.
// The TUI owns the terminal, so logs go to a file under the margo
// state directory; old files are cleaned up on startup.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

// Level represents log severity levels.
type Level int

const (
	// LevelDebug is for detailed debugging information.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warning messages.
	LevelWarn
	// LevelError is for error messages.
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a config string into a Level. Unknown strings
// fall back to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// toSlogLevel converts our Level to slog.Level.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures the logger.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// LogDir is the directory to write log files.
	LogDir string
	// MaxLogFiles is the maximum number of log files to keep.
	MaxLogFiles int
	// JSONFormat uses JSON output format for structured logs.
	JSONFormat bool
}

// DefaultConfig returns default logging configuration.
func DefaultConfig() *Config {
	dir := ".margo/logs"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".margo", "logs")
	}
	return &Config{
		Level:       LevelInfo,
		LogDir:      dir,
		MaxLogFiles: 10,
	}
}

// Logger is a structured logger for margo.
type Logger struct {
	slog    *slog.Logger
	config  *Config
	logFile *os.File
	logPath string
	mu      sync.Mutex
}

// New creates a new logger writing to a timestamped file in the
// configured log directory.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(config.LogDir, fmt.Sprintf("margo_%s.log", time.Now().Format("20060102_150405")))
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	logger := &Logger{
		config:  config,
		logFile: logFile,
		logPath: logPath,
	}

	opts := &slog.HandlerOptions{Level: config.Level.toSlogLevel()}
	var handler slog.Handler
	if config.JSONFormat {
		handler = slog.NewJSONHandler(logFile, opts)
	} else {
		handler = slog.NewTextHandler(logFile, opts)
	}
	logger.slog = slog.New(handler)

	go logger.Cleanup()

	return logger, nil
}

// NewNoop creates a no-op logger that discards all output.
// Useful for testing or when logging is disabled.
func NewNoop() *Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return &Logger{
		slog:   slog.New(handler),
		config: DefaultConfig(),
	}
}

// LogPath returns the path to the current log file.
func (l *Logger) LogPath() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.logPath
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		return l.logFile.Close()
	}
	return nil
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// With returns a new logger with the given attributes added.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:    l.slog.With(args...),
		config:  l.config,
		logFile: l.logFile,
		logPath: l.logPath,
	}
}

// Cleanup removes the oldest log files beyond MaxLogFiles.
func (l *Logger) Cleanup() {
	if l.config.MaxLogFiles <= 0 {
		return
	}

	entries, err := os.ReadDir(l.config.LogDir)
	if err != nil {
		return
	}

	var logs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if filepath.Ext(e.Name()) == ".log" {
			logs = append(logs, e.Name())
		}
	}

	if len(logs) <= l.config.MaxLogFiles {
		return
	}

	// Timestamped names sort chronologically.
	sort.Strings(logs)
	for _, name := range logs[:len(logs)-l.config.MaxLogFiles] {
		os.Remove(filepath.Join(l.config.LogDir, name))
	}
}
