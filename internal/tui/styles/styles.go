// Package styles provides Lip Gloss styles for the margo TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	// Primary colors
	Primary     = lipgloss.Color("#8B5CF6") // Violet
	Secondary   = lipgloss.Color("#22D3EE") // Cyan
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#111827") // Dark Gray
	Foreground  = lipgloss.Color("#F9FAFB") // White
	BorderColor = lipgloss.Color("#374151") // Border Gray
)

// Tab bar styles.
var (
	// TabActiveStyle is for the active tab label.
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// TabInactiveStyle is for inactive tab labels.
	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(MutedLight).
				Padding(0, 1)

	// TabBarStyle is the tab strip container.
	TabBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(BorderColor)
)

// Overlay styles (palette, finder, help).
var (
	// OverlayStyle is the bordered box overlays render into.
	OverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// OverlayTitleStyle is for overlay titles.
	OverlayTitleStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// ItemSelectedStyle is for the highlighted list row.
	ItemSelectedStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Secondary).
				Bold(true)

	// ItemStyle is for unselected list rows.
	ItemStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// ItemHintStyle is for the shortcut hint on a palette row.
	ItemHintStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Viewer styles.
var (
	// ViewerTitleStyle is for the document title line.
	ViewerTitleStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true).
				Padding(0, 1)

	// ViewerBodyStyle wraps the document viewport.
	ViewerBodyStyle = lipgloss.NewStyle().
			Padding(0, 1)
)
