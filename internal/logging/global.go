package logging

import (
	"sync"
)

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
)

// Global returns the process logger. Before InitGlobal runs (or after
// CloseGlobal) it returns a no-op logger, so callers never need a nil
// check.
func Global() *Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalLogger == nil {
		return NewNoop()
	}
	return globalLogger
}

// InitGlobal opens the process log file. Called once from the
// application root before the TUI starts.
func InitGlobal(config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	globalMu.Lock()
	globalLogger = l
	globalMu.Unlock()
	return nil
}

// CloseGlobal closes the process log file on shutdown. Safe to call
// when InitGlobal never ran.
func CloseGlobal() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		return nil
	}
	err := globalLogger.Close()
	globalLogger = nil
	return err
}

// Debug logs a debug message using the process logger.
func Debug(msg string, args ...any) {
	Global().Debug(msg, args...)
}

// Info logs an info message using the process logger.
func Info(msg string, args ...any) {
	Global().Info(msg, args...)
}

// Warn logs a warning message using the process logger.
func Warn(msg string, args ...any) {
	Global().Warn(msg, args...)
}

// Error logs an error message using the process logger.
func Error(msg string, args ...any) {
	Global().Error(msg, args...)
}
