package lattice

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	httpadapter "github.com/lattice-dev/lattice/internal/adapters/http"
	"github.com/lattice-dev/lattice/internal/logging"
	"github.com/lattice-dev/lattice/internal/metrics"
	"github.com/lattice-dev/lattice/pkg/flow"
	"github.com/lattice-dev/lattice/pkg/modal"
	"github.com/lattice-dev/lattice/pkg/state"
)

// Version is the library version, surfaced by the CLI.
const Version = "0.3.0"

// Client is the high-level entry point for the Lattice library.
// It wires the state container, the modal controller and the effect
// collaborators into the App context that gated actions run against.
type Client struct {
	app      *flow.App
	registry *prometheus.Registry
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Client.
type Option func(*Client)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithEffects injects the external collaborators.
func WithEffects(effects flow.Effects) Option {
	return func(c *Client) {
		c.app.Effects = effects
	}
}

// WithMetrics enables Prometheus instrumentation on the given registry.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(c *Client) {
		c.registry = reg
	}
}

// New creates a Client. Effects default to empty; gates skip side effects for
// absent collaborators, so a bare Client is usable in tests.
func New(opts ...Option) *Client {
	c := &Client{
		app:    &flow.App{State: state.New()},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.app.Logger = c.logger
	if c.registry != nil {
		c.app.Metrics = metrics.New(c.registry)
	}

	controllerOpts := []modal.Option{modal.WithLogger(c.logger)}
	if c.app.Metrics != nil {
		controllerOpts = append(controllerOpts, modal.WithObserver(c.app.Metrics))
	}
	c.app.Modals = flow.NewModals(modal.NewController(controllerOpts...))

	return c
}

// App returns the shared action context.
func (c *Client) App() *flow.App {
	return c.app
}

// State returns the client-state container.
func (c *Client) State() *state.Container {
	return c.app.State
}

// Modals returns the modal registry.
func (c *Client) Modals() *flow.Modals {
	return c.app.Modals
}

// LoadApp runs the one-time bootstrap with no continuation. Safe to call
// repeatedly; later calls are no-ops.
func (c *Client) LoadApp(ctx context.Context) error {
	gate := flow.WithLoadApp[struct{}](nil)
	return gate(ctx, c.app, struct{}{})
}

// DebugHandler returns the debug HTTP handler exposing session, sandbox and
// modal state, plus /metrics when instrumentation is enabled.
func (c *Client) DebugHandler() http.Handler {
	var gatherer prometheus.Gatherer
	if c.registry != nil {
		gatherer = c.registry
	}
	return httpadapter.NewHandler(c.app.State, c.app.Modals.Controller, gatherer)
}
