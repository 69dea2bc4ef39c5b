package components

import (
	"fmt"
	"strings"

	"github.com/dquint/margo/internal/command"
	"github.com/dquint/margo/internal/tui/styles"
)

// HelpOverlay lists the currently registered commands with their
// shortcut hints.
type HelpOverlay struct {
	width  int
	height int
}

// NewHelpOverlay creates a new HelpOverlay component.
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{width: 60, height: 20}
}

// SetSize sets the overlay dimensions.
func (h *HelpOverlay) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// View renders the overlay from the current command list.
func (h *HelpOverlay) View(cmds []command.Command) string {
	var b strings.Builder

	b.WriteString(styles.OverlayTitleStyle.Render("Help"))
	b.WriteString("\n\n")

	max := h.height - 5
	for i, c := range cmds {
		if i >= max {
			b.WriteString(styles.MutedTextStyle.Render(
				fmt.Sprintf("… and %d more (open the palette to see all)", len(cmds)-max)))
			break
		}
		hint := c.ShortcutHint
		if hint == "" {
			hint = "palette"
		}
		b.WriteString(fmt.Sprintf("%s  %s\n",
			styles.KeyStyle.Render(fmt.Sprintf("%-12s", hint)),
			styles.ItemStyle.Render(c.Title)))
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedTextStyle.Render("esc to close"))

	return styles.OverlayStyle.Width(h.width).Render(b.String())
}
