package tooltip

import "sync"

// Handle is anything the coordinator can force back to hidden
type Handle interface {
	Dismiss()
}

// Coordinator owns the single active-overlay slot. Only RequestActive and
// ReleaseIfActive touch it.
type Coordinator struct {
	mu     sync.Mutex
	active Handle
}

// NewCoordinator creates an empty coordinator
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

var defaultCoordinator = NewCoordinator()

// DefaultCoordinator returns the process-wide coordinator shared by every
// tooltip that was not given its own
func DefaultCoordinator() *Coordinator {
	return defaultCoordinator
}

// RequestActive makes h the active handle. A different previous holder is
// dismissed before h is installed.
func (c *Coordinator) RequestActive(h Handle) {
	c.mu.Lock()
	prev := c.active
	c.mu.Unlock()

	if prev == h {
		return
	}
	// Dismiss runs unlocked: it calls back into ReleaseIfActive
	if prev != nil {
		prev.Dismiss()
	}

	c.mu.Lock()
	c.active = h
	c.mu.Unlock()
}

// ReleaseIfActive clears the slot only when h still holds it
func (c *Coordinator) ReleaseIfActive(h Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == h {
		c.active = nil
	}
}

// holds reports whether h is the active handle
func (c *Coordinator) holds(h Handle) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active != nil && c.active == h
}
