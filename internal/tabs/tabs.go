// Package tabs manages the open document tabs for margo.
package tabs

import (
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Kind distinguishes the home tab from paper (document) tabs.
type Kind string

const (
	// KindHome is the start tab with the recent-files view.
	KindHome Kind = "home"
	// KindPaper is a tab viewing a markdown file.
	KindPaper Kind = "paper"
)

// Tab describes one open tab.
type Tab struct {
	ID    string
	Kind  Kind
	Path  string // file path for paper tabs, empty for home
	Title string
}

// State is a snapshot of the tab strip.
type State struct {
	Tabs     []Tab
	ActiveID string
}

// Manager owns the tab list and the active-tab pointer.
// There is always at least one tab: closing the last paper tab
// replaces it with a fresh home tab.
type Manager struct {
	mu     sync.Mutex
	tabs   []Tab
	active int
}

// NewManager creates a manager holding a single home tab.
func NewManager() *Manager {
	m := &Manager{}
	m.tabs = []Tab{newHomeTab()}
	return m
}

func newHomeTab() Tab {
	return Tab{ID: uuid.NewString(), Kind: KindHome, Title: "Home"}
}

// State returns a snapshot of the current tabs and active tab ID.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	tabs := make([]Tab, len(m.tabs))
	copy(tabs, m.tabs)
	return State{Tabs: tabs, ActiveID: m.tabs[m.active].ID}
}

// Active returns the currently active tab.
func (m *Manager) Active() Tab {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tabs[m.active]
}

// OpenHome appends a new home tab and activates it.
func (m *Manager) OpenHome() Tab {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := newHomeTab()
	m.tabs = append(m.tabs, t)
	m.active = len(m.tabs) - 1
	return t
}

// OpenPaper opens path in a new paper tab and activates it. If the
// path is already open in some tab, that tab is activated instead of
// opening a duplicate.
func (m *Manager) OpenPaper(path string) Tab {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, t := range m.tabs {
		if t.Kind == KindPaper && t.Path == path {
			m.active = i
			return t
		}
	}

	t := Tab{
		ID:    uuid.NewString(),
		Kind:  KindPaper,
		Path:  path,
		Title: filepath.Base(path),
	}
	m.tabs = append(m.tabs, t)
	m.active = len(m.tabs) - 1
	return t
}

// Close removes the tab with the given ID. Closing an unknown ID is a
// no-op. If the last tab is closed, a fresh home tab takes its place.
func (m *Manager) Close(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, t := range m.tabs {
		if t.ID != id {
			continue
		}
		m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
		if len(m.tabs) == 0 {
			m.tabs = []Tab{newHomeTab()}
			m.active = 0
			return
		}
		if m.active >= len(m.tabs) {
			m.active = len(m.tabs) - 1
		} else if i < m.active {
			m.active--
		}
		return
	}
}

// CloseActive closes the currently active tab.
func (m *Manager) CloseActive() {
	m.mu.Lock()
	id := m.tabs[m.active].ID
	m.mu.Unlock()
	m.Close(id)
}

// Next activates the tab to the right, wrapping around.
func (m *Manager) Next() Tab {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = (m.active + 1) % len(m.tabs)
	return m.tabs[m.active]
}

// Prev activates the tab to the left, wrapping around.
func (m *Manager) Prev() Tab {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
	return m.tabs[m.active]
}

// SwitchIndex activates the tab at position i (0-based). Out-of-range
// indices are ignored.
func (m *Manager) SwitchIndex(i int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i >= 0 && i < len(m.tabs) {
		m.active = i
	}
}

// SetTitle updates the title of the tab with the given ID.
func (m *Manager) SetTitle(id, title string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tabs {
		if m.tabs[i].ID == id {
			m.tabs[i].Title = title
			return
		}
	}
}

// Count returns the number of open tabs.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.tabs)
}
