package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dquint/margo/internal/tui/styles"
)

// StatusBar shows a transient message on the left and key hints on
// the right.
type StatusBar struct {
	width   int
	message string
	isErr   bool
	hints   []Hint
}

// Hint is one key/label pair shown in the status bar.
type Hint struct {
	Key   string
	Label string
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{width: 80}
}

// SetWidth sets the bar width.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetMessage sets the status message.
func (s *StatusBar) SetMessage(msg string) {
	s.message = msg
	s.isErr = false
}

// SetError sets an error message.
func (s *StatusBar) SetError(msg string) {
	s.message = msg
	s.isErr = true
}

// Clear removes the current message.
func (s *StatusBar) Clear() {
	s.message = ""
	s.isErr = false
}

// SetHints replaces the key hints.
func (s *StatusBar) SetHints(hints []Hint) {
	s.hints = hints
}

// View renders the status bar.
func (s *StatusBar) View() string {
	left := s.message
	if s.isErr {
		left = styles.ErrorTextStyle.Render(left)
	}

	parts := make([]string, 0, len(s.hints))
	for _, h := range s.hints {
		parts = append(parts, styles.KeyStyle.Render(h.Key)+" "+styles.HelpStyle.Render(h.Label))
	}
	right := strings.Join(parts, "  ")

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBarStyle.Width(s.width).Render(
		left + strings.Repeat(" ", gap) + right)
}
