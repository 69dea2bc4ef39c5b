// Package tui provides the terminal user interface for margo.
package tui

// Message types for TUI state updates.

// IndexRefreshedMsg is sent when a background index scan finishes.
type IndexRefreshedMsg struct {
	Count int
}

// IndexScanFailedMsg is sent when a background index scan fails.
type IndexScanFailedMsg struct {
	Error string
}

// FileLoadedMsg is sent when a document finished loading for a tab.
type FileLoadedMsg struct {
	TabID   string
	Path    string
	Content string
}

// FileLoadFailedMsg is sent when a document could not be read.
type FileLoadFailedMsg struct {
	TabID string
	Path  string
	Error string
}

// StatusMsg sets a transient message in the status bar.
type StatusMsg struct {
	Text  string
	IsErr bool
}
