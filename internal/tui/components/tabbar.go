package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dquint/margo/internal/tabs"
	"github.com/dquint/margo/internal/tui/styles"
)

// TabBar renders the tab strip across the top of the screen.
type TabBar struct {
	width int
}

// NewTabBar creates a new TabBar component.
func NewTabBar() *TabBar {
	return &TabBar{width: 80}
}

// SetWidth sets the bar width.
func (t *TabBar) SetWidth(width int) {
	t.width = width
}

// View renders the tab strip from a tab snapshot.
func (t *TabBar) View(state tabs.State) string {
	labels := make([]string, 0, len(state.Tabs))
	for i, tab := range state.Tabs {
		title := tab.Title
		if title == "" {
			title = "Untitled"
		}
		label := fmt.Sprintf("%d:%s", i+1, truncate(title, 20))
		if tab.ID == state.ActiveID {
			labels = append(labels, styles.TabActiveStyle.Render(label))
		} else {
			labels = append(labels, styles.TabInactiveStyle.Render(label))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, labels...)
	return styles.TabBarStyle.Width(t.width).Render(row)
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
