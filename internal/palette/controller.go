// Package palette owns the open/closed state of the command palette.
// The rendering surface lives in the TUI; this package only holds the
// visibility flag and the transition contract around it.
package palette

// Controller holds the palette's open/closed state.
//
// Two parties drive it: the shortcut listener opens it, and the
// palette UI closes (or re-opens) it. SetOpen is idempotent — setting
// the current value again produces no notification.
type Controller struct {
	open     bool
	watchers []func(open bool)
}

// NewController creates a controller in the closed state.
func NewController() *Controller {
	return &Controller{}
}

// Open reports whether the palette is currently open.
func (c *Controller) Open() bool {
	return c.open
}

// SetOpen transitions the palette to the requested state. Setting the
// current value is a no-op with no side effects.
func (c *Controller) SetOpen(open bool) {
	if c.open == open {
		return
	}
	c.open = open
	for _, fn := range c.watchers {
		fn(open)
	}
}

// Watch subscribes fn to open/close transitions. Watchers are invoked
// only on actual state changes.
func (c *Controller) Watch(fn func(open bool)) {
	c.watchers = append(c.watchers, fn)
}
