// Package errors provides typed errors with actionable suggestions
// for the margo application.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrIndex indicates a file-index error.
	ErrIndex = errors.New("index error")
	// ErrFile indicates a file read failure.
	ErrFile = errors.New("file error")
	// ErrShortcut indicates a shortcut setup failure.
	ErrShortcut = errors.New("shortcut error")
	// ErrNotFound indicates a resource was not found.
	ErrNotFound = errors.New("not found")
)

// MargoError is the base error type for margo errors.
// It wraps an underlying error and provides additional context.
type MargoError struct {
	// Kind is the category of error (e.g., ErrConfig, ErrIndex).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path).
	Details map[string]string
}

// Error implements the error interface.
func (e *MargoError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *MargoError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether any error in err's chain matches the target.
func (e *MargoError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with suggestions.
func (e *MargoError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		sb.WriteString("\nDetails:\n")
		for k, v := range e.Details {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, v))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *MargoError) WithDetails(key, value string) *MargoError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *MargoError) WithCause(cause error) *MargoError {
	e.Cause = cause
	return e
}

// New creates a new MargoError with the given kind and message.
func New(kind error, message string) *MargoError {
	return &MargoError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *MargoError {
	return &MargoError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *MargoError {
	return &MargoError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// ConfigNotFound creates an error for missing configuration.
func ConfigNotFound(configPath string) *MargoError {
	return &MargoError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("configuration file not found: %s", configPath),
		Details: map[string]string{"path": configPath},
		Suggestion: `Create a default configuration:

    margo init

or write ~/.margo/config.yaml by hand.`,
	}
}

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *MargoError {
	return &MargoError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{"path": configPath},
		Suggestion: `Check the file for YAML syntax errors:
  - indentation must use spaces, not tabs
  - string values with special characters need quotes`,
	}
}

// FileReadError creates an error for a failed document read.
func FileReadError(path string, readErr error) *MargoError {
	return &MargoError{
		Kind:    ErrFile,
		Message: fmt.Sprintf("failed to read file: %s", path),
		Cause:   readErr,
		Details: map[string]string{"path": path},
	}
}
