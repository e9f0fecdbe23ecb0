package modal

import (
	"log/slog"
	"sync"

	"github.com/lattice-dev/lattice/internal/logging"
	"github.com/lattice-dev/lattice/pkg/domain"
)

// Observer receives modal lifecycle events. Implementations must not block.
type Observer interface {
	ModalOpened(name string)
	ModalClosed(name string)
	ModalSuperseded(name string)
}

// outcome carries a close payload or a failure to a suspended Open call.
type outcome struct {
	payload any
	err     error
}

// pendingHandle is the in-memory continuation created by Open and completed
// by Close. The channel is buffered so completion never blocks the closer.
type pendingHandle struct {
	ch chan outcome
}

func newHandle() *pendingHandle {
	return &pendingHandle{ch: make(chan outcome, 1)}
}

// Controller owns the global current-modal slot and the pending resolutions.
// All registered modals share one controller.
type Controller struct {
	mu       sync.Mutex
	current  string
	pending  map[string]*pendingHandle
	logger   *slog.Logger
	observer Observer
}

// Option configures the Controller.
type Option func(*Controller)

// WithLogger configures a logger for lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithObserver registers a lifecycle observer (e.g. metrics).
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		c.observer = o
	}
}

// NewController creates a controller with no modal active.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		pending: make(map[string]*pendingHandle),
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the name of the active modal, or "" when none is open.
func (c *Controller) Current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Snapshot describes the controller state for debugging surfaces.
type Snapshot struct {
	Current string   `json:"current"`
	Pending []string `json:"pending"`
}

// Snapshot returns the current modal and the names with unresolved opens.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := Snapshot{Current: c.current}
	for name := range c.pending {
		s.Pending = append(s.Pending, name)
	}
	return s
}

// takeOver makes name the current modal. Any pending resolution for the
// previous current modal, or a previous open of the same modal, is completed
// with domain.ErrSuperseded rather than abandoned.
func (c *Controller) takeOver(name string) *pendingHandle {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current != "" && c.current != name {
		c.supersedeLocked(c.current)
	}
	c.supersedeLocked(name)

	c.current = name
	h := newHandle()
	c.pending[name] = h
	return h
}

// supersedeLocked completes and removes the pending handle for name, if any.
// Caller holds c.mu.
func (c *Controller) supersedeLocked(name string) {
	h, ok := c.pending[name]
	if !ok {
		return
	}
	delete(c.pending, name)
	h.ch <- outcome{err: domain.ErrSuperseded}
	c.logger.Debug("modal superseded", "modal", name)
	if c.observer != nil {
		c.observer.ModalSuperseded(name)
	}
}

// settle removes and returns the pending handle for name, clearing the
// current slot if it points at name. Returns nil when nothing is pending.
func (c *Controller) settle(name string) *pendingHandle {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.pending[name]
	if ok {
		delete(c.pending, name)
	}
	if c.current == name {
		c.current = ""
	}
	if !ok {
		return nil
	}
	return h
}

// abandon removes the handle for name only if it is still the registered one,
// used when an Open call stops waiting (context cancellation).
func (c *Controller) abandon(name string, h *pendingHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending[name] != h {
		return
	}
	delete(c.pending, name)
	if c.current == name {
		c.current = ""
	}
}

func (c *Controller) notifyOpened(name string) {
	c.logger.Debug("modal opened", "modal", name)
	if c.observer != nil {
		c.observer.ModalOpened(name)
	}
}

func (c *Controller) notifyClosed(name string) {
	c.logger.Debug("modal closed", "modal", name)
	if c.observer != nil {
		c.observer.ModalClosed(name)
	}
}
