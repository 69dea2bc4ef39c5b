package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dquint/margo/internal/fileindex"
	"github.com/dquint/margo/internal/tui/styles"
)

// FinderSelectedMsg is sent when the user picks a file.
type FinderSelectedMsg struct {
	Path string
}

// FinderDismissedMsg is sent when the finder is dismissed without a
// selection.
type FinderDismissedMsg struct{}

// Searcher serves finder queries. *fileindex.Index satisfies it.
type Searcher interface {
	Search(query string, limit int) []fileindex.Result
}

// Finder is the fuzzy file-open overlay backed by the markdown index.
type Finder struct {
	input       textinput.Model
	searcher    Searcher
	results     []fileindex.Result
	maxResults  int
	selected    int
	scrollStart int
	width       int
	height      int
}

// NewFinder creates a Finder over the given searcher.
func NewFinder(searcher Searcher, maxResults int) *Finder {
	ti := textinput.New()
	ti.Placeholder = "Search markdown files..."
	ti.Prompt = "> "

	return &Finder{
		input:      ti,
		searcher:   searcher,
		maxResults: maxResults,
		width:      70,
		height:     16,
	}
}

// SetSize sets the finder dimensions.
func (f *Finder) SetSize(width, height int) {
	f.width = width
	f.height = height
}

// Reset clears the query and re-runs the empty search.
func (f *Finder) Reset() {
	f.input.SetValue("")
	f.input.Focus()
	f.selected = 0
	f.scrollStart = 0
	f.search()
}

// Selected returns the currently highlighted result, if any.
func (f *Finder) Selected() (fileindex.Result, bool) {
	if len(f.results) == 0 || f.selected >= len(f.results) {
		return fileindex.Result{}, false
	}
	return f.results[f.selected], true
}

func (f *Finder) search() {
	f.results = f.searcher.Search(f.input.Value(), f.maxResults)
	if f.selected >= len(f.results) {
		f.selected = 0
		f.scrollStart = 0
	}
}

// Update handles input while the finder is open.
func (f *Finder) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "esc":
		return func() tea.Msg { return FinderDismissedMsg{} }
	case "up", "ctrl+k":
		if f.selected > 0 {
			f.selected--
			f.ensureVisible()
		}
		return nil
	case "down", "ctrl+j":
		if f.selected < len(f.results)-1 {
			f.selected++
			f.ensureVisible()
		}
		return nil
	case "enter":
		if r, ok := f.Selected(); ok {
			return func() tea.Msg { return FinderSelectedMsg{Path: r.Path} }
		}
		return nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	f.search()
	return cmd
}

func (f *Finder) ensureVisible() {
	rows := f.visibleRows()
	if f.selected < f.scrollStart {
		f.scrollStart = f.selected
	} else if f.selected >= f.scrollStart+rows {
		f.scrollStart = f.selected - rows + 1
	}
}

func (f *Finder) visibleRows() int {
	rows := f.height - 4
	if rows < 1 {
		rows = 5
	}
	return rows
}

// View renders the finder overlay.
func (f *Finder) View() string {
	var b strings.Builder

	b.WriteString(styles.OverlayTitleStyle.Render("Open File"))
	b.WriteString("\n")
	b.WriteString(f.input.View())
	b.WriteString("\n")

	rows := f.visibleRows()
	end := f.scrollStart + rows
	if end > len(f.results) {
		end = len(f.results)
	}

	if len(f.results) == 0 {
		b.WriteString(styles.MutedTextStyle.Render("No matching files"))
	}

	for i := f.scrollStart; i < end; i++ {
		r := f.results[i]
		if i == f.selected {
			b.WriteString(styles.ItemSelectedStyle.Render("▸ " + r.DisplayPath))
		} else {
			b.WriteString("  " + styles.ItemStyle.Render(r.DisplayPath))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	return styles.OverlayStyle.Width(f.width).Render(
		lipgloss.NewStyle().MaxHeight(f.height).Render(b.String()))
}
