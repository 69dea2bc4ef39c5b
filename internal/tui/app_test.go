package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dquint/margo/internal/config"
	"github.com/dquint/margo/internal/palette"
	"github.com/dquint/margo/internal/recent"
	"github.com/dquint/margo/internal/shortcut"
	"github.com/dquint/margo/internal/tabs"
	"github.com/dquint/margo/internal/tui/components"
)

func newTestModel(t *testing.T) (*Model, *palette.Controller) {
	t.Helper()

	cfg := config.NewConfig()
	cfg.Index.Roots = []string{t.TempDir()}

	controller := palette.NewController()
	listener, err := shortcut.Install(shortcut.MustParseChord(cfg.Shortcuts.Palette), controller)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	t.Cleanup(listener.Close)

	m := New(cfg, listener, controller)
	m.recentList = &recent.List{}
	m.recentPath = filepath.Join(t.TempDir(), "recent.json")
	return m, controller
}

func paletteChord() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyCtrlP}
}

func TestModel_GlobalCommandsRegistered(t *testing.T) {
	m, _ := newTestModel(t)

	for _, id := range []string{
		"tab:new", "tab:close", "tab:next", "tab:prev",
		"file:open", "index:refresh", "help:toggle", "app:quit",
	} {
		if _, ok := m.Registry().Get(id); !ok {
			t.Errorf("Registry missing global command %q", id)
		}
	}
}

func TestModel_ChordOpensPaletteOnce(t *testing.T) {
	m, controller := newTestModel(t)

	opens := 0
	controller.Watch(func(open bool) {
		if open {
			opens++
		}
	})

	m.Update(paletteChord())

	if !controller.Open() {
		t.Fatal("palette not open after chord")
	}
	if opens != 1 {
		t.Errorf("open notifications = %d, want 1", opens)
	}

	// Repeat press while open is swallowed without a second open.
	m.Update(paletteChord())

	if !controller.Open() {
		t.Error("palette closed by repeat chord press")
	}
	if opens != 1 {
		t.Errorf("open notifications after repeat = %d, want 1", opens)
	}
}

func TestModel_ChordConsumedWhilePaletteOpen(t *testing.T) {
	m, controller := newTestModel(t)

	m.Update(paletteChord())
	if !controller.Open() {
		t.Fatal("palette not open after chord")
	}

	// The chord must not reach the palette input as text.
	_, cmd := m.Update(paletteChord())
	if cmd != nil {
		t.Error("repeat chord produced a cmd, want it swallowed")
	}
}

func TestModel_PaletteUIClosesViaDismissal(t *testing.T) {
	m, controller := newTestModel(t)

	m.Update(paletteChord())

	// Esc reaches the palette, which asks to be dismissed; feeding the
	// dismissal back closes the controller.
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc in open palette returned nil cmd")
	}
	m.Update(cmd())

	if controller.Open() {
		t.Error("palette still open after dismissal")
	}

	// The listener survives the close and can re-open.
	m.Update(paletteChord())
	if !controller.Open() {
		t.Error("chord did not re-open palette after dismissal")
	}
}

func TestModel_PaletteSelectionClosesAndExecutes(t *testing.T) {
	m, controller := newTestModel(t)

	m.Update(paletteChord())
	m.Update(components.PaletteSelectedMsg{ID: "help:toggle"})

	if controller.Open() {
		t.Error("palette still open after selection")
	}
	if !m.helpOpen {
		t.Error("selected command did not run")
	}
}

func TestModel_TabScopeMountsOnPaperOpen(t *testing.T) {
	m, _ := newTestModel(t)

	if _, ok := m.Registry().Get("paper:reload"); ok {
		t.Fatal("paper commands registered before any paper is open")
	}

	path := filepath.Join(t.TempDir(), "doc.md")
	m.Update(components.FinderSelectedMsg{Path: path})

	if _, ok := m.Registry().Get("paper:reload"); !ok {
		t.Error("paper:reload not registered after opening a paper")
	}
	if _, ok := m.Registry().Get("paper:close"); !ok {
		t.Error("paper:close not registered after opening a paper")
	}
}

func TestModel_TabScopeUnmountsOnClose(t *testing.T) {
	m, _ := newTestModel(t)

	path := filepath.Join(t.TempDir(), "doc.md")
	m.Update(components.FinderSelectedMsg{Path: path})
	if _, ok := m.Registry().Get("paper:reload"); !ok {
		t.Fatal("paper commands not registered")
	}

	m.execute("tab:close")

	if m.tabMgr.Active().Kind != tabs.KindHome {
		t.Fatalf("active tab kind = %v after close, want home", m.tabMgr.Active().Kind)
	}
	if _, ok := m.Registry().Get("paper:reload"); ok {
		t.Error("paper:reload still registered after closing the paper")
	}
}

func TestModel_TabScopeSurvivesSwitchBetweenPapers(t *testing.T) {
	m, _ := newTestModel(t)

	dir := t.TempDir()
	m.Update(components.FinderSelectedMsg{Path: filepath.Join(dir, "a.md")})
	m.Update(components.FinderSelectedMsg{Path: filepath.Join(dir, "b.md")})

	m.execute("tab:prev")

	if _, ok := m.Registry().Get("paper:reload"); !ok {
		t.Error("paper:reload missing after switching papers")
	}
	if m.tabMgr.Active().Path != filepath.Join(dir, "a.md") {
		t.Errorf("active path = %q, want a.md", m.tabMgr.Active().Path)
	}
}

func TestModel_UnknownCommandIsRecoverable(t *testing.T) {
	m, _ := newTestModel(t)

	before := m.Registry().Count()
	if cmd := m.execute("no:such"); cmd != nil {
		t.Error("execute() of unknown command returned a cmd")
	}

	if m.Registry().Count() != before {
		t.Error("registry changed by failed execution")
	}
	// Still dispatches fine afterwards.
	m.execute("help:toggle")
	if !m.helpOpen {
		t.Error("model not functional after failed execution")
	}
}

func TestModel_QuitCommand(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := m.execute("app:quit")

	if !m.quitting {
		t.Error("quitting = false after app:quit")
	}
	if cmd == nil {
		t.Error("app:quit queued no cmd")
	}
}

func TestModel_FileLoadedUpdatesActiveViewer(t *testing.T) {
	m, _ := newTestModel(t)

	path := filepath.Join(t.TempDir(), "doc.md")
	m.Update(components.FinderSelectedMsg{Path: path})
	tab := m.tabMgr.Active()

	m.Update(FileLoadedMsg{TabID: tab.ID, Path: path, Content: "# hello"})

	if m.content[path] != "# hello" {
		t.Errorf("content[%q] = %q", path, m.content[path])
	}
	if !m.viewer.Loaded() {
		t.Error("viewer not loaded after FileLoadedMsg for active tab")
	}
}

func TestModel_FileLoadedForBackgroundTabDoesNotTouchViewer(t *testing.T) {
	m, _ := newTestModel(t)

	dir := t.TempDir()
	m.Update(components.FinderSelectedMsg{Path: filepath.Join(dir, "a.md")})
	background := m.tabMgr.Active()
	m.Update(components.FinderSelectedMsg{Path: filepath.Join(dir, "b.md")})

	m.Update(FileLoadedMsg{TabID: background.ID, Path: background.Path, Content: "# a"})

	if m.content[background.Path] != "# a" {
		t.Error("background content not cached")
	}
	if m.viewer.Loaded() {
		t.Error("viewer shows background tab content")
	}
}

func TestModel_OpeningPaperRecordsRecent(t *testing.T) {
	m, _ := newTestModel(t)

	path := filepath.Join(t.TempDir(), "doc.md")
	m.Update(components.FinderSelectedMsg{Path: path})

	if len(m.recentList.Files) != 1 || m.recentList.Files[0].Path != path {
		t.Errorf("recent list = %+v, want the opened paper", m.recentList.Files)
	}
	if _, err := os.Stat(m.recentPath); err != nil {
		t.Errorf("recent list not persisted: %v", err)
	}
}

func TestModel_StatusMsgUpdatesStatusBar(t *testing.T) {
	m, _ := newTestModel(t)

	m.Update(StatusMsg{Text: "indexed 3 files"})
	if !strings.Contains(m.statusBar.View(), "indexed 3 files") {
		t.Error("status bar missing message after StatusMsg")
	}

	m.Update(StatusMsg{Text: "save failed", IsErr: true})
	if !strings.Contains(m.statusBar.View(), "save failed") {
		t.Error("status bar missing error after StatusMsg")
	}
}

func TestModel_RecentSaveFailureQueuesStatus(t *testing.T) {
	m, _ := newTestModel(t)

	// A regular file as the parent directory makes the save fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	m.recentPath = filepath.Join(blocker, "recent.json")

	m.recordRecent(tabs.Tab{ID: "t1", Kind: tabs.KindPaper, Path: "/doc.md", Title: "doc.md"})

	if len(m.pending) != 1 {
		t.Fatalf("pending = %d cmds, want 1", len(m.pending))
	}
	msg, ok := m.pending[0]().(StatusMsg)
	if !ok {
		t.Fatalf("queued msg = %T, want StatusMsg", m.pending[0]())
	}
	if !msg.IsErr {
		t.Error("StatusMsg.IsErr = false for a failed save")
	}
}

func TestTabIndexKey(t *testing.T) {
	tests := []struct {
		key    string
		want   int
		wantOK bool
	}{
		{"alt+1", 0, true},
		{"alt+9", 8, true},
		{"alt+0", 0, false},
		{"alt+p", 0, false},
		{"ctrl+1", 0, false},
		{"1", 0, false},
	}

	for _, tt := range tests {
		got, ok := tabIndexKey(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("tabIndexKey(%q) = (%d, %v), want (%d, %v)", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}
