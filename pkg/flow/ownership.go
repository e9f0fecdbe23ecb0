package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/lattice-dev/lattice/pkg/domain"
)

// errForkInProgress guards against concurrent duplicate forks.
var errForkInProgress = errors.New("fork already in progress")

// WithOwnedSandbox wraps cont so it only runs when the active sandbox is
// confirmed owned (or satisfies required, when required is not AuthNone) and
// is not blocked by an unresolved freeze prompt. Every path that does not
// reach cont returns the result of cancel instead; cancel may be nil for a
// no-op. When no sandbox is active, gating is skipped entirely.
//
// On an access denial the gate forks the sandbox and, if the fork succeeds,
// falls through to cont against the fork.
func WithOwnedSandbox[P any](cont, cancel Action[P], required domain.AuthLevel) Action[P] {
	return func(ctx context.Context, app *App, payload P) error {
		sb := app.State.Sandbox()
		if sb == nil {
			return runAction(ctx, app, cont, payload)
		}

		var denied bool
		if required == domain.AuthNone {
			denied = !sb.Owned
		} else {
			denied = !sb.Authorization.Satisfies(required)
		}

		if denied {
			if app.State.Forking() {
				return runAction(ctx, app, cancel, payload)
			}
			if err := app.forkSandbox(ctx, sb); err != nil {
				return runAction(ctx, app, cancel, payload)
			}
			return runAction(ctx, app, cont, payload)
		}

		if sb.Frozen && sb.SessionFrozen {
			choice, err := app.Modals.ForkFrozen.Open(ctx, ForkFrozenPrompt{
				SandboxID: sb.ID,
				Message:   "This sandbox is frozen. Fork it, or edit it for this session?",
			})
			if err != nil {
				// Superseded or cancelled prompt blocks the continuation.
				return runAction(ctx, app, cancel, payload)
			}
			switch choice {
			case ChoiceFork:
				if app.State.Forking() {
					return runAction(ctx, app, cancel, payload)
				}
				if err := app.forkSandbox(ctx, sb); err != nil {
					return runAction(ctx, app, cancel, payload)
				}
			case ChoiceUnfreeze:
				app.State.ClearSessionFreeze()
			default:
				return runAction(ctx, app, cancel, payload)
			}
		}

		return runAction(ctx, app, cont, payload)
	}
}

// forkSandbox forks sb and replaces the active sandbox reference on success.
// Only one fork may be in flight at a time.
func (a *App) forkSandbox(ctx context.Context, sb *domain.Sandbox) error {
	if a.Effects.Forker == nil {
		return errors.New("no forker configured")
	}
	if !a.State.BeginFork() {
		return errForkInProgress
	}
	defer a.State.EndFork()

	fork, err := a.Effects.Forker.Fork(ctx, sb.ID)
	a.Metrics.ForkAttempt(err == nil)
	if err != nil {
		a.logger().Debug("fork failed", "sandbox", sb.ID, "err", err)
		return fmt.Errorf("fork sandbox %s: %w", sb.ID, err)
	}

	a.State.SetSandbox(fork)
	if a.Effects.Analytics != nil {
		a.Effects.Analytics.Track("sandbox_forked", map[string]any{
			"from": sb.ID,
			"to":   fork.ID,
		})
	}
	a.logger().Debug("sandbox forked", "from", sb.ID, "to", fork.ID)
	return nil
}
