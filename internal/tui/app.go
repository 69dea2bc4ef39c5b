// Package tui provides the terminal user interface for margo.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dquint/margo/internal/command"
	"github.com/dquint/margo/internal/config"
	"github.com/dquint/margo/internal/fileindex"
	"github.com/dquint/margo/internal/logging"
	"github.com/dquint/margo/internal/palette"
	"github.com/dquint/margo/internal/recent"
	"github.com/dquint/margo/internal/shortcut"
	"github.com/dquint/margo/internal/tabs"
	"github.com/dquint/margo/internal/tui/components"
	"github.com/dquint/margo/internal/tui/styles"
)

// Model is the Bubble Tea model for the margo TUI.
//
// All registry traffic happens inside Update, so command execution is
// serialized by the event loop; handlers queue any follow-up work as
// tea.Cmds rather than blocking.
type Model struct {
	cfg *config.Config

	// Command core
	registry   *command.Registry
	controller *palette.Controller
	listener   *shortcut.Listener
	binder     *command.Binder
	appOwner   command.Owner

	// Collaborators
	tabMgr     *tabs.Manager
	index      *fileindex.Index
	recentList *recent.List
	recentPath string

	// Components
	tabBar    *components.TabBar
	viewer    *components.Viewer
	paletteUI *components.Palette
	finder    *components.Finder
	statusBar *components.StatusBar
	helpView  *components.HelpOverlay

	// Overlay state. The palette's open flag lives in the controller;
	// these are the sibling overlays the palette does not own.
	finderOpen  bool
	helpOpen    bool
	finderChord shortcut.Chord

	// Document contents by path.
	content map[string]string

	// Commands queued by handlers during Execute, drained after.
	pending []tea.Cmd

	width    int
	height   int
	quitting bool
}

// New creates the TUI model and wires the command core together. The
// shortcut listener is installed by the caller (the application root)
// and handed down so there can only ever be one.
func New(cfg *config.Config, listener *shortcut.Listener, controller *palette.Controller) *Model {
	registry := command.NewRegistry()
	index := fileindex.NewIndex()

	recentPath, _ := recent.DefaultPath()

	m := &Model{
		cfg:         cfg,
		registry:    registry,
		controller:  controller,
		listener:    listener,
		binder:      command.NewBinder(registry),
		appOwner:    command.NewOwner(),
		tabMgr:      tabs.NewManager(),
		index:       index,
		recentList:  recent.Load(recentPath),
		recentPath:  recentPath,
		tabBar:      components.NewTabBar(),
		viewer:      components.NewViewer(),
		paletteUI:   components.NewPalette(),
		finder:      components.NewFinder(index, cfg.Index.MaxResults),
		statusBar:   components.NewStatusBar(),
		helpView:    components.NewHelpOverlay(),
		finderChord: shortcut.MustParseChord(cfg.Shortcuts.Finder),
		content:     make(map[string]string),
	}

	// Keep the palette's list in sync with registry mutations.
	registry.Watch(func() {
		m.paletteUI.SetCommands(m.registry.List())
	})

	// Reset the palette on every open so it never shows a stale query.
	controller.Watch(func(open bool) {
		if open {
			m.paletteUI.Reset()
		}
	})

	m.registerGlobalCommands()
	m.syncTabScope()

	m.statusBar.SetHints([]components.Hint{
		{Key: cfg.Shortcuts.Palette, Label: "palette"},
		{Key: cfg.Shortcuts.Finder, Label: "open"},
		{Key: "?", Label: "help"},
		{Key: "q", Label: "quit"},
	})

	return m
}

// Registry exposes the command registry; the CLI uses it to list
// commands without starting the program.
func (m *Model) Registry() *command.Registry {
	return m.registry
}

// OpenFiles opens each path in its own tab before the program starts.
// The last one ends up active.
func (m *Model) OpenFiles(paths []string) {
	for _, path := range paths {
		m.openPaper(path)
	}
}

// Init starts the initial index scan plus any loads queued by
// OpenFiles before the program started.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.refreshIndexCmd(), m.drainPending())
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.FocusMsg:
		// Re-check index freshness whenever the terminal regains
		// focus, like the original refreshed on window focus.
		if m.index.Stale(m.cfg.Index.StaleAfter) || m.index.Empty() {
			return m, m.refreshIndexCmd()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case components.PaletteSelectedMsg:
		m.controller.SetOpen(false)
		return m, m.execute(msg.ID)

	case components.PaletteDismissedMsg:
		m.controller.SetOpen(false)
		return m, nil

	case components.FinderSelectedMsg:
		m.finderOpen = false
		m.openPaper(msg.Path)
		return m, m.drainPending()

	case components.FinderDismissedMsg:
		m.finderOpen = false
		return m, nil

	case IndexRefreshedMsg:
		m.statusBar.SetMessage(fmt.Sprintf("Indexed %d markdown files", msg.Count))
		return m, nil

	case IndexScanFailedMsg:
		logging.Error("index scan failed", "error", msg.Error)
		m.statusBar.SetError("Index scan failed: " + msg.Error)
		return m, nil

	case FileLoadedMsg:
		m.content[msg.Path] = msg.Content
		if active := m.tabMgr.Active(); active.ID == msg.TabID {
			m.viewer.SetDocument(active.Title, msg.Content)
		}
		return m, nil

	case FileLoadFailedMsg:
		logging.Error("file load failed", "path", msg.Path, "error", msg.Error)
		m.statusBar.SetError("Could not read " + msg.Path)
		return m, nil

	case StatusMsg:
		if msg.IsErr {
			m.statusBar.SetError(msg.Text)
		} else {
			m.statusBar.SetMessage(msg.Text)
		}
		return m, nil
	}

	return m, nil
}

// handleKey routes a key event. The global shortcut listener sees it
// first; a consumed event goes no further, which is what suppresses
// the chord's default effect in whatever has focus underneath.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.listener.Handle(msg) {
		return m, nil
	}

	if m.controller.Open() {
		return m, m.paletteUI.Update(msg)
	}
	if m.finderOpen {
		return m, m.finder.Update(msg)
	}
	if m.helpOpen {
		if msg.String() == "esc" || msg.String() == "?" {
			m.helpOpen = false
		}
		return m, nil
	}

	switch {
	case m.finderChord.Matches(msg):
		m.finderOpen = true
		m.finder.Reset()
		return m, nil
	case msg.String() == "?":
		m.helpOpen = true
		return m, nil
	case msg.String() == "q":
		return m, m.execute("app:quit")
	case msg.String() == "ctrl+t":
		return m, m.execute("tab:new")
	case msg.String() == "ctrl+w":
		return m, m.execute("tab:close")
	case msg.String() == "alt+right", msg.String() == "ctrl+right":
		return m, m.execute("tab:next")
	case msg.String() == "alt+left", msg.String() == "ctrl+left":
		return m, m.execute("tab:prev")
	}

	if n, ok := tabIndexKey(msg.String()); ok {
		m.tabMgr.SwitchIndex(n)
		m.syncTabScope()
		return m, m.drainPending()
	}

	// Everything else scrolls the document.
	return m, m.viewer.Update(msg)
}

// tabIndexKey maps alt+1..alt+9 to a tab index.
func tabIndexKey(key string) (int, bool) {
	if strings.HasPrefix(key, "alt+") && len(key) == 5 {
		if c := key[4]; c >= '1' && c <= '9' {
			return int(c - '1'), true
		}
	}
	return 0, false
}

// execute dispatches a command by ID and surfaces failures in the
// status bar. A missing command is recoverable: state is untouched and
// the app keeps running.
func (m *Model) execute(id string) tea.Cmd {
	if err := m.registry.Execute(id); err != nil {
		logging.Warn("command execution failed", "id", id, "error", err)
		m.statusBar.SetError(err.Error())
		return nil
	}
	return m.drainPending()
}

// drainPending collects the tea.Cmds queued by command handlers.
func (m *Model) drainPending() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

// queue schedules a tea.Cmd from inside a command handler.
func (m *Model) queue(cmd tea.Cmd) {
	m.pending = append(m.pending, cmd)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.tabBar.SetWidth(width)
	m.statusBar.SetWidth(width)
	// Tab bar and status bar take three lines.
	m.viewer.SetSize(width, height-3)

	overlayW := width * 2 / 3
	if overlayW > 80 {
		overlayW = 80
	}
	overlayH := height * 2 / 3
	m.paletteUI.SetSize(overlayW, overlayH)
	m.finder.SetSize(overlayW, overlayH)
	m.helpView.SetSize(overlayW, overlayH)
}

// openPaper opens path in a tab and shows it.
func (m *Model) openPaper(path string) {
	tab := m.tabMgr.OpenPaper(path)
	m.recordRecent(tab)
	m.syncTabScope()
	if content, ok := m.content[path]; ok {
		m.viewer.SetDocument(tab.Title, content)
	} else {
		m.queue(loadFileCmd(tab.ID, path))
	}
}

// recordRecent notes the open in the recent-files list. A failed save
// only costs the home-tab list, so it surfaces as a status line and
// the open proceeds.
func (m *Model) recordRecent(tab tabs.Tab) {
	m.recentList.Add(tab.Path, tab.Title)
	if m.recentPath == "" {
		return
	}
	if err := m.recentList.Save(m.recentPath); err != nil {
		logging.Warn("failed to save recent files", "error", err)
		m.queue(func() tea.Msg {
			return StatusMsg{Text: "Could not save recent files", IsErr: true}
		})
	}
}

// syncTabScope re-binds tab-scoped commands and refreshes the viewer
// after any change to the tab strip. The binder's dependency key is
// the active tab ID, so switching tabs swaps the paper commands in a
// single release/re-register cycle.
func (m *Model) syncTabScope() {
	active := m.tabMgr.Active()

	if active.Kind == tabs.KindPaper {
		m.binder.Bind(active.ID, m.paperCommands(active)...)
		if content, ok := m.content[active.Path]; ok {
			m.viewer.SetDocument(active.Title, content)
		} else {
			m.viewer.Clear()
			m.queue(loadFileCmd(active.ID, active.Path))
		}
	} else {
		m.binder.Release()
		m.viewer.Clear()
	}
}

// View renders the full screen.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	active := m.tabMgr.Active()
	if active.Kind == tabs.KindPaper {
		body = m.viewer.View()
	} else {
		body = m.homeView()
	}

	var overlay string
	switch {
	case m.controller.Open():
		overlay = m.paletteUI.View()
	case m.finderOpen:
		overlay = m.finder.View()
	case m.helpOpen:
		overlay = m.helpView.View(m.registry.List())
	}
	if overlay != "" {
		body = lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, overlay)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.tabBar.View(m.tabMgr.State()),
		lipgloss.NewStyle().Height(m.bodyHeight()).Render(body),
		m.statusBar.View(),
	)
}

func (m *Model) bodyHeight() int {
	h := m.height - 3
	if h < 1 {
		h = 1
	}
	return h
}

// homeView renders the home tab: a short banner and the most recently
// indexed files.
func (m *Model) homeView() string {
	var b strings.Builder

	b.WriteString(styles.OverlayTitleStyle.Render("margo"))
	b.WriteString("\n")
	b.WriteString(styles.MutedTextStyle.Render("terminal markdown reader"))
	b.WriteString("\n\n")

	if len(m.recentList.Files) > 0 {
		b.WriteString(styles.MutedTextStyle.Render("Recently opened:"))
		b.WriteString("\n")
		for _, f := range m.recentList.Files {
			b.WriteString("  " + f.Title + "\n")
		}
	} else if results := m.index.Search("", 10); len(results) > 0 {
		b.WriteString(styles.MutedTextStyle.Render("Indexed files:"))
		b.WriteString("\n")
		for _, r := range results {
			b.WriteString("  " + r.DisplayPath + "\n")
		}
	} else {
		b.WriteString(styles.MutedTextStyle.Render("No markdown files indexed yet."))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(
		fmt.Sprintf("%s opens the palette, %s opens a file",
			m.cfg.Shortcuts.Palette, m.cfg.Shortcuts.Finder)))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// refreshIndexCmd rescans the configured roots in the background.
func (m *Model) refreshIndexCmd() tea.Cmd {
	roots := m.cfg.Index.Roots
	index := m.index
	return func() tea.Msg {
		paths, err := fileindex.Scan(context.Background(), roots)
		if err != nil {
			return IndexScanFailedMsg{Error: err.Error()}
		}
		index.Update(paths)
		logging.Info("file index refreshed", "count", len(paths))
		return IndexRefreshedMsg{Count: len(paths)}
	}
}

// loadFileCmd reads a document off the event loop.
func loadFileCmd(tabID, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return FileLoadFailedMsg{TabID: tabID, Path: path, Error: err.Error()}
		}
		return FileLoadedMsg{TabID: tabID, Path: path, Content: string(data)}
	}
}
