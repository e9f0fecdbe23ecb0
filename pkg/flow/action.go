package flow

import (
	"context"
	"log/slog"

	"github.com/lattice-dev/lattice/internal/logging"
	"github.com/lattice-dev/lattice/internal/metrics"
	"github.com/lattice-dev/lattice/pkg/ports"
	"github.com/lattice-dev/lattice/pkg/state"
)

// Action is a unit of orchestrated business logic. It receives the shared App
// context and a payload, and reports failure through its error.
type Action[P any] func(ctx context.Context, app *App, payload P) error

// Effects bundles the external collaborators available to actions. Optional
// collaborators may be nil; the gates skip the corresponding side effects.
type Effects struct {
	Auth          ports.AuthClient
	Store         ports.KeyValueStore
	Analytics     ports.Analytics
	Notifier      ports.Notifier
	Reporter      ports.ErrorReporter
	Connection    ports.ConnectionMonitor
	Live          ports.LiveClient
	Contributors  ports.ContributorSource
	Settings      ports.SettingsLoader
	Survey        ports.SurveyPrompter
	Templates     ports.TemplateWarmer
	Notifications ports.NotificationState
	Forker        ports.Forker
}

// App is the dependency-injected context shared by all actions: state
// container, effects, modal registry and instrumentation.
type App struct {
	State   *state.Container
	Effects Effects
	Modals  *Modals
	Logger  *slog.Logger
	Metrics *metrics.Set
}

var nopLogger = logging.NewNop()

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return nopLogger
}

// report routes a critical failure to the centralized reporter. Falls back to
// the logger when no reporter is configured.
func (a *App) report(msg string, err error) {
	if a.Effects.Reporter != nil {
		a.Effects.Reporter.Report(msg, err)
		return
	}
	a.logger().Error(msg, "err", err)
}

// bestEffort is the silent failure lane: fn's error is logged at debug level
// and swallowed. Only explicitly non-critical steps go through here.
func (a *App) bestEffort(step string, fn func() error) {
	if err := fn(); err != nil {
		a.logger().Debug("best-effort step failed", "step", step, "err", err)
	}
}

// runAction invokes a, treating nil as a no-op.
func runAction[P any](ctx context.Context, app *App, a Action[P], payload P) error {
	if a == nil {
		return nil
	}
	return a(ctx, app, payload)
}
