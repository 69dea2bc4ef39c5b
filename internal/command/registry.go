package command

import (
	"fmt"
	"sync"
)

// ErrCommandNotFound is returned by Execute when no command is
// registered under the requested ID.
var ErrCommandNotFound = fmt.Errorf("command not found")

// entry pairs a command with the owner that registered it.
type entry struct {
	cmd   Command
	owner Owner
}

// Registry is the process-wide catalog of commands.
//
// It lives for the whole session: created once at startup, never torn
// down during normal operation. All mutation goes through Register and
// Unregister, which keeps the owner-token invariant enforceable.
//
// Registration collisions are not errors. The last writer wins, so a
// context-specific command can legitimately shadow a global one under
// a shared ID (e.g., a paper tab overriding "reload"). Callers must
// not rely on registration rejecting duplicates.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]entry
	order    []string
	watchers map[int]func()
	nextID   int
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:  make(map[string]entry),
		watchers: make(map[int]func()),
	}
}

// Register inserts or replaces the entry for cmd.ID and notifies
// watchers. Re-registering an existing ID moves it to the end of the
// listing order; a same-owner re-register is a single atomic swap, so
// observers never see the command missing in between.
func (r *Registry) Register(cmd Command, owner Owner) {
	r.mu.Lock()
	if _, ok := r.entries[cmd.ID]; ok {
		r.removeFromOrder(cmd.ID)
	}
	r.entries[cmd.ID] = entry{cmd: cmd, owner: owner}
	r.order = append(r.order, cmd.ID)
	r.mu.Unlock()

	r.notify()
}

// Unregister removes the entry for id, but only if it still belongs to
// owner. A stale unregister (the ID was re-registered by someone else
// in the meantime) is a silent no-op. Unregister never fails.
func (r *Registry) Unregister(id string, owner Owner) {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok || e.owner != owner {
		r.mu.Unlock()
		return
	}
	delete(r.entries, id)
	r.removeFromOrder(id)
	r.mu.Unlock()

	r.notify()
}

// removeFromOrder drops id from the ordering slice.
// Caller must hold r.mu.
func (r *Registry) removeFromOrder(id string) {
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// List returns a snapshot of the registered commands in registration
// order. Owner tokens are stripped; the slice is a copy, so callers
// can iterate while the registry keeps mutating.
func (r *Registry) List() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmds := make([]Command, 0, len(r.order))
	for _, id := range r.order {
		cmds = append(cmds, r.entries[id].cmd)
	}
	return cmds
}

// Get retrieves a command by ID.
func (r *Registry) Get(id string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	return e.cmd, ok
}

// Count returns the number of registered commands.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Execute looks up id and invokes its handler. It returns
// ErrCommandNotFound if no command is registered under id; otherwise
// it returns whatever the handler returns synchronously. Asynchronous
// work started by the handler is fire-and-forget: the registry does
// not track or await it.
func (r *Registry) Execute(id string) error {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %q", ErrCommandNotFound, id)
	}
	if e.cmd.Handler == nil {
		return nil
	}
	return e.cmd.Handler()
}

// Watch subscribes fn to command-list changes. fn is called after
// every mutation that actually changed the visible set. The returned
// cancel func removes the subscription; calling it more than once is
// harmless.
func (r *Registry) Watch(fn func()) (cancel func()) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.watchers[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.watchers, id)
		r.mu.Unlock()
	}
}

// notify invokes watchers outside the registry lock so a watcher may
// call back into the registry.
func (r *Registry) notify() {
	r.mu.RLock()
	fns := make([]func(), 0, len(r.watchers))
	for _, fn := range r.watchers {
		fns = append(fns, fn)
	}
	r.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
