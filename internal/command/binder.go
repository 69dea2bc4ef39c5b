package command

// Binder ties a set of commands to the lifetime of a UI scope.
//
// A scope calls Bind when it activates (and again whenever its
// dependency key changes) and Release when it deactivates. Each Bind
// mints a fresh owner token, so a Release that arrives late — after
// another scope has re-registered the same IDs — is absorbed by the
// registry's owner check instead of clobbering the newer entries.
//
// Binder is not safe for concurrent use; it is driven from the event
// loop like the rest of the TUI.
type Binder struct {
	registry *Registry
	owner    Owner
	depKey   string
	bound    []string
	active   bool
}

// NewBinder creates a binder attached to registry.
func NewBinder(registry *Registry) *Binder {
	return &Binder{registry: registry}
}

// Bind registers cmds under a fresh owner token. If the binder is
// already active with the same dependency key, Bind is a no-op; if the
// key changed, the previous activation is released first. An empty
// cmds slice is legal and binds nothing.
func (b *Binder) Bind(depKey string, cmds ...Command) {
	if b.active && b.depKey == depKey {
		return
	}
	b.Release()

	b.owner = NewOwner()
	b.depKey = depKey
	b.active = true
	b.bound = make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		b.registry.Register(cmd, b.owner)
		b.bound = append(b.bound, cmd.ID)
	}
}

// Release unregisters every command from the current activation using
// that activation's owner token. Releasing an inactive binder is a
// no-op.
func (b *Binder) Release() {
	if !b.active {
		return
	}
	for _, id := range b.bound {
		b.registry.Unregister(id, b.owner)
	}
	b.bound = nil
	b.depKey = ""
	b.active = false
}

// Active reports whether the binder currently holds a registration.
func (b *Binder) Active() bool {
	return b.active
}
