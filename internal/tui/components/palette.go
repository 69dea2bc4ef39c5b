// Package components provides reusable TUI components for margo.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dquint/margo/internal/command"
	"github.com/dquint/margo/internal/tui/styles"
)

// PaletteSelectedMsg is sent when the user picks a command.
type PaletteSelectedMsg struct {
	ID string
}

// PaletteDismissedMsg is sent when the palette is dismissed without a
// selection.
type PaletteDismissedMsg struct{}

// Palette is the command palette overlay. It renders a query input
// over the current command list and reports the selection; opening and
// closing is decided elsewhere (the palette controller), not here.
type Palette struct {
	input       textinput.Model
	commands    []command.Command
	filtered    []command.Command
	selected    int
	scrollStart int
	width       int
	height      int
}

// NewPalette creates a new Palette component.
func NewPalette() *Palette {
	ti := textinput.New()
	ti.Placeholder = "Type a command..."
	ti.Prompt = "> "

	return &Palette{
		input:  ti,
		width:  60,
		height: 14,
	}
}

// SetCommands replaces the command list and re-applies the current
// query. Called whenever the registry notifies a change.
func (p *Palette) SetCommands(cmds []command.Command) {
	p.commands = cmds
	p.filter()
}

// SetSize sets the palette dimensions.
func (p *Palette) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Reset clears the query and selection; called on every open so the
// palette never shows a stale query.
func (p *Palette) Reset() {
	p.input.SetValue("")
	p.input.Focus()
	p.selected = 0
	p.scrollStart = 0
	p.filter()
}

// Selected returns the currently highlighted command, if any.
func (p *Palette) Selected() (command.Command, bool) {
	if len(p.filtered) == 0 || p.selected >= len(p.filtered) {
		return command.Command{}, false
	}
	return p.filtered[p.selected], true
}

// filter narrows the command list to entries matching the query.
// Matching is a case-insensitive substring test over title, ID and
// keywords; registration order is preserved.
func (p *Palette) filter() {
	query := strings.ToLower(strings.TrimSpace(p.input.Value()))
	if query == "" {
		p.filtered = p.commands
	} else {
		p.filtered = nil
		for _, c := range p.commands {
			if paletteMatch(c, query) {
				p.filtered = append(p.filtered, c)
			}
		}
	}
	if p.selected >= len(p.filtered) {
		p.selected = 0
		p.scrollStart = 0
	}
}

func paletteMatch(c command.Command, query string) bool {
	if strings.Contains(strings.ToLower(c.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(c.ID), query) {
		return true
	}
	for _, k := range c.Keywords {
		if strings.Contains(strings.ToLower(k), query) {
			return true
		}
	}
	return false
}

// Update handles input while the palette is open.
func (p *Palette) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "esc":
		return func() tea.Msg { return PaletteDismissedMsg{} }
	case "up", "ctrl+k":
		if p.selected > 0 {
			p.selected--
			p.ensureVisible()
		}
		return nil
	case "down", "ctrl+j":
		if p.selected < len(p.filtered)-1 {
			p.selected++
			p.ensureVisible()
		}
		return nil
	case "enter":
		if c, ok := p.Selected(); ok {
			return func() tea.Msg { return PaletteSelectedMsg{ID: c.ID} }
		}
		return nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.filter()
	return cmd
}

// ensureVisible keeps the selected row inside the scroll window.
func (p *Palette) ensureVisible() {
	rows := p.visibleRows()
	if p.selected < p.scrollStart {
		p.scrollStart = p.selected
	} else if p.selected >= p.scrollStart+rows {
		p.scrollStart = p.selected - rows + 1
	}
}

func (p *Palette) visibleRows() int {
	// Title, input and borders take four lines.
	rows := p.height - 4
	if rows < 1 {
		rows = 5
	}
	return rows
}

// View renders the palette overlay.
func (p *Palette) View() string {
	var b strings.Builder

	b.WriteString(styles.OverlayTitleStyle.Render("Commands"))
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n")

	rows := p.visibleRows()
	end := p.scrollStart + rows
	if end > len(p.filtered) {
		end = len(p.filtered)
	}

	if len(p.filtered) == 0 {
		b.WriteString(styles.MutedTextStyle.Render("No matching commands"))
	}

	for i := p.scrollStart; i < end; i++ {
		c := p.filtered[i]
		label := c.Title
		if c.ShortcutHint != "" {
			label += "  " + styles.ItemHintStyle.Render(c.ShortcutHint)
		}
		if i == p.selected {
			b.WriteString(styles.ItemSelectedStyle.Render("▸ " + c.Title))
			if c.ShortcutHint != "" {
				b.WriteString("  " + styles.ItemHintStyle.Render(c.ShortcutHint))
			}
		} else {
			b.WriteString(styles.ItemStyle.Render("  ") + label)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return styles.OverlayStyle.Width(p.width).Render(
		lipgloss.NewStyle().MaxHeight(p.height).Render(b.String()))
}
