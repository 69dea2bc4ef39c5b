package components

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dquint/margo/internal/tui/styles"
)

// Viewer displays the contents of the active document tab.
// Markdown stays unrendered; this is a reader, not a formatter.
type Viewer struct {
	viewport viewport.Model
	title    string
	loaded   bool
}

// NewViewer creates a new Viewer component.
func NewViewer() *Viewer {
	vp := viewport.New(80, 24)
	return &Viewer{viewport: vp}
}

// SetSize sets the viewer dimensions.
func (v *Viewer) SetSize(width, height int) {
	v.viewport.Width = width
	// Reserve one line for the title.
	if height > 1 {
		height--
	}
	v.viewport.Height = height
}

// SetDocument loads a document into the viewport and scrolls to top.
func (v *Viewer) SetDocument(title, content string) {
	v.title = title
	v.viewport.SetContent(content)
	v.viewport.GotoTop()
	v.loaded = true
}

// Clear empties the viewer (e.g., when switching to the home tab).
func (v *Viewer) Clear() {
	v.title = ""
	v.viewport.SetContent("")
	v.loaded = false
}

// Loaded reports whether a document is currently shown.
func (v *Viewer) Loaded() bool {
	return v.loaded
}

// ScrollPercent returns how far the view is scrolled, 0 to 1.
func (v *Viewer) ScrollPercent() float64 {
	return v.viewport.ScrollPercent()
}

// Update forwards scroll keys to the viewport.
func (v *Viewer) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// View renders the document with its title line.
func (v *Viewer) View() string {
	if !v.loaded {
		return styles.MutedTextStyle.Render("  No document loaded")
	}
	return styles.ViewerTitleStyle.Render(v.title) + "\n" +
		styles.ViewerBodyStyle.Render(v.viewport.View())
}
