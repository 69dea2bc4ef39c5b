package shortcut

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dquint/margo/internal/palette"
)

// ErrAlreadyInstalled is returned when a second listener is installed
// while one is still live. There must be exactly one global listener,
// owned by the application root; duplicate installation would double
// every palette open.
var ErrAlreadyInstalled = fmt.Errorf("shortcut listener already installed")

var (
	installMu sync.Mutex
	installed bool
)

// Listener intercepts the reserved palette chord.
//
// It is a two-state machine: while the palette is closed the chord
// opens it; while the palette is open further chord presses are
// swallowed without effect. Closing is never the listener's job — the
// palette UI drives the controller back to closed on its own.
type Listener struct {
	chord      Chord
	controller *palette.Controller
	closeOnce  sync.Once
}

// Install acquires the process-wide listener. It fails with
// ErrAlreadyInstalled if a listener is already live; the application
// root installs exactly one and hands it down to the TUI.
func Install(chord Chord, controller *palette.Controller) (*Listener, error) {
	installMu.Lock()
	defer installMu.Unlock()

	if installed {
		return nil, ErrAlreadyInstalled
	}
	installed = true
	return &Listener{chord: chord, controller: controller}, nil
}

// Handle inspects a key event. If the event matches the reserved chord
// it opens the palette (or, when already open, does nothing) and
// reports consumed=true so the caller stops routing the event. All
// other events are reported unconsumed.
func (l *Listener) Handle(msg tea.KeyMsg) (consumed bool) {
	if !l.chord.Matches(msg) {
		return false
	}
	// Idempotent open: a repeat press while open is still consumed so
	// it cannot leak into whatever has focus underneath.
	l.controller.SetOpen(true)
	return true
}

// Chord returns the chord this listener is bound to.
func (l *Listener) Chord() Chord {
	return l.chord
}

// Close releases the listener slot. It is safe to call on every exit
// path; only the first call has an effect.
func (l *Listener) Close() {
	l.closeOnce.Do(func() {
		installMu.Lock()
		installed = false
		installMu.Unlock()
	})
}
