// Package command provides the central command registry for margo.
// Every invocable action in the application is registered here and
// dispatched by ID, whether it comes from the palette, a key binding,
// or the CLI.
package command

import "github.com/google/uuid"

// Command describes one invocable action.
// The registry treats Title, Keywords and ShortcutHint as opaque
// display metadata; only ID and Handler are interpreted.
type Command struct {
	// ID uniquely identifies the command within the registry.
	// Uniqueness is enforced at registration time: registering an ID
	// that already exists replaces the previous entry.
	ID string
	// Title is the label shown in the palette.
	Title string
	// Keywords are extra match terms for palette filtering.
	Keywords []string
	// ShortcutHint is a human-readable key hint (e.g., "ctrl+t").
	// It is display-only; bindings are wired elsewhere.
	ShortcutHint string
	// Handler runs the action. It is invoked synchronously by
	// Registry.Execute; any asynchronous work it starts is its own
	// responsibility.
	Handler func() error
}

// Owner identifies which activation registered a command.
// Owners arbitrate unregistration: an unregister only takes effect if
// the entry still belongs to the owner that issued it, so a delayed
// teardown from a stale scope cannot clobber a fresher registration.
type Owner string

// NewOwner mints a fresh owner token.
func NewOwner() Owner {
	return Owner(uuid.NewString())
}
