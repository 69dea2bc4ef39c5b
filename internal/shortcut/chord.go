// Package shortcut implements the global palette shortcut: a single
// process-wide key interceptor that opens the command palette on a
// reserved modifier chord.
package shortcut

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// validModifiers are the modifier names accepted in a chord string.
// "cmd" is accepted as an alias for ctrl so config written on macOS
// muscle memory still works in a terminal.
var validModifiers = map[string]string{
	"ctrl": "ctrl",
	"cmd":  "ctrl",
	"alt":  "alt",
}

// Chord is a parsed modifier+key combination, e.g. "ctrl+p".
type Chord struct {
	raw     string
	binding key.Binding
}

// ParseChord parses a "modifier+key" string into a Chord. At least one
// modifier is required — a bare key would shadow ordinary typing.
func ParseChord(s string) (Chord, error) {
	parts := strings.Split(s, "+")
	if len(parts) < 2 {
		return Chord{}, fmt.Errorf("invalid chord %q: need modifier+key", s)
	}

	k := strings.TrimSpace(strings.ToLower(parts[len(parts)-1]))
	if len(k) != 1 {
		return Chord{}, fmt.Errorf("invalid chord %q: key must be a single character", s)
	}

	mods := make([]string, 0, len(parts)-1)
	for _, m := range parts[:len(parts)-1] {
		m = strings.TrimSpace(strings.ToLower(m))
		canonical, ok := validModifiers[m]
		if !ok {
			return Chord{}, fmt.Errorf("invalid chord %q: unknown modifier %q", s, m)
		}
		mods = append(mods, canonical)
	}

	// Bubble Tea reports chords as a single key string ("ctrl+p").
	keyStr := strings.Join(append(mods, k), "+")
	return Chord{
		raw:     s,
		binding: key.NewBinding(key.WithKeys(keyStr), key.WithHelp(keyStr, "open palette")),
	}, nil
}

// MustParseChord is ParseChord for compile-time-known chords.
func MustParseChord(s string) Chord {
	c, err := ParseChord(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the chord as originally written.
func (c Chord) String() string {
	return c.raw
}

// Binding returns the bubbles key binding for this chord.
func (c Chord) Binding() key.Binding {
	return c.binding
}

// Matches reports whether a key event is this chord.
func (c Chord) Matches(msg tea.KeyMsg) bool {
	return key.Matches(msg, c.binding)
}
