package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dquint/margo/internal/command"
	"github.com/dquint/margo/internal/errors"
	"github.com/dquint/margo/internal/tabs"
)

// registerGlobalCommands registers the session-lifetime commands under
// the application owner. They stay registered until the process exits.
func (m *Model) registerGlobalCommands() {
	for _, c := range m.globalCommands() {
		m.registry.Register(c, m.appOwner)
	}
}

// globalCommands defines the always-available command set. Handlers
// mutate the model directly (they run inside Update) and queue any
// asynchronous follow-up as tea.Cmds.
func (m *Model) globalCommands() []command.Command {
	return []command.Command{
		{
			ID:           "tab:new",
			Title:        "New Tab",
			Keywords:     []string{"tab", "create"},
			ShortcutHint: "ctrl+t",
			Handler: func() error {
				m.tabMgr.OpenHome()
				m.syncTabScope()
				return nil
			},
		},
		{
			ID:           "tab:close",
			Title:        "Close Tab",
			Keywords:     []string{"tab", "close"},
			ShortcutHint: "ctrl+w",
			Handler: func() error {
				m.tabMgr.CloseActive()
				m.syncTabScope()
				return nil
			},
		},
		{
			ID:           "tab:next",
			Title:        "Next Tab",
			Keywords:     []string{"tab", "switch"},
			ShortcutHint: "alt+right",
			Handler: func() error {
				m.tabMgr.Next()
				m.syncTabScope()
				return nil
			},
		},
		{
			ID:           "tab:prev",
			Title:        "Previous Tab",
			Keywords:     []string{"tab", "switch"},
			ShortcutHint: "alt+left",
			Handler: func() error {
				m.tabMgr.Prev()
				m.syncTabScope()
				return nil
			},
		},
		{
			ID:           "file:open",
			Title:        "Open File",
			Keywords:     []string{"file", "find", "search"},
			ShortcutHint: m.cfg.Shortcuts.Finder,
			Handler: func() error {
				m.finderOpen = true
				m.finder.Reset()
				return nil
			},
		},
		{
			ID:       "index:refresh",
			Title:    "Refresh File Index",
			Keywords: []string{"index", "scan", "rescan"},
			Handler: func() error {
				m.statusBar.SetMessage("Rescanning...")
				m.queue(m.refreshIndexCmd())
				return nil
			},
		},
		{
			ID:           "help:toggle",
			Title:        "Toggle Help",
			Keywords:     []string{"help", "keys"},
			ShortcutHint: "?",
			Handler: func() error {
				m.helpOpen = !m.helpOpen
				return nil
			},
		},
		{
			ID:           "app:quit",
			Title:        "Quit",
			Keywords:     []string{"exit"},
			ShortcutHint: "q",
			Handler: func() error {
				m.quitting = true
				m.queue(tea.Quit)
				return nil
			},
		},
	}
}

// paperCommands defines the commands scoped to one open document.
// They are bound through the binder, so they vanish when the tab
// closes and re-bind when the active tab changes. Note paper:close
// shadows nothing — but a paper-specific "reload" here would shadow a
// global one under the last-writer policy, which is the intended way
// for a document tab to override a shared action.
func (m *Model) paperCommands(tab tabs.Tab) []command.Command {
	return []command.Command{
		{
			ID:       "paper:reload",
			Title:    "Reload Document",
			Keywords: []string{"refresh", "reread"},
			Handler: func() error {
				delete(m.content, tab.Path)
				m.queue(loadFileCmd(tab.ID, tab.Path))
				return nil
			},
		},
		{
			ID:       "paper:copy-path",
			Title:    "Copy Document Path",
			Keywords: []string{"clipboard", "path"},
			Handler: func() error {
				if err := clipboard.WriteAll(tab.Path); err != nil {
					return errors.Wrap(err, errors.ErrFile, "failed to copy path")
				}
				m.statusBar.SetMessage("Copied " + tab.Path)
				return nil
			},
		},
		{
			ID:       "paper:close",
			Title:    "Close Document",
			Keywords: []string{"close"},
			Handler: func() error {
				m.tabMgr.Close(tab.ID)
				m.syncTabScope()
				return nil
			},
		},
	}
}
