package flow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lattice-dev/lattice/pkg/domain"
)

// Storage keys used by the bootstrap sequence.
const (
	// KeyLegacyToken is the pre-migration auth token slot. Its presence means
	// the stored session predates the current auth scheme.
	KeyLegacyToken = "jwt"

	// KeyLegacySession is the pre-migration session cookie slot.
	KeyLegacySession = "legacy_session"

	// KeySelectedTeam persists the team selected in a previous session.
	KeySelectedTeam = "selected_team"

	// KeyTeamMembership records the last confirmed team membership.
	KeyTeamMembership = "team_membership"

	// KeyAnonymousID persists the analytics id for anonymous sessions.
	KeyAnonymousID = "anonymous_uid"
)

// loadUserError is the fixed user-facing message for login sequence failures.
const loadUserError = "We had trouble signing you in"

// WithLoadApp wraps cont so the one-time app bootstrap runs first. On every
// later call the bootstrap is skipped and only cont runs, so the returned
// action is safe to use on every dispatch. cont may be nil.
//
// Once any action observes HasLoadedApp true, the full bootstrap side effects
// have already occurred: the completion flag flips only after the login
// branch and the continuation have finished.
func WithLoadApp[P any](cont Action[P]) Action[P] {
	return func(ctx context.Context, app *App, payload P) error {
		// Claiming the slot and checking completion are one atomic step.
		// A dispatch that loses the claim runs only the continuation.
		if !app.State.BeginBootstrap() {
			return runAction(ctx, app, cont, payload)
		}

		started := time.Now()

		// Fire-and-forget wiring of external collaborators.
		if app.Effects.Connection != nil {
			app.Effects.Connection.AddListener(app.State.SetConnected)
		}
		if app.Effects.Settings != nil {
			app.bestEffort("settings load", func() error {
				settings, err := app.Effects.Settings.Load(ctx)
				if err != nil {
					return err
				}
				app.State.SetSettings(settings)
				return nil
			})
		}
		if app.Effects.Live != nil {
			app.Effects.Live.Listen(func(event string, data []byte) {
				app.logger().Debug("live message", "event", event, "bytes", len(data))
			})
		}

		app.migrateLegacyToken(ctx)

		if app.State.HasLogIn() {
			if err := app.loadLoggedInUser(ctx); err != nil {
				app.report(loadUserError, err)
				app.Metrics.LoginOutcome("error")
			} else {
				app.Metrics.LoginOutcome("user")
			}
		} else {
			app.identifyAnonymous(ctx)
			app.Metrics.LoginOutcome("anonymous")
		}

		err := runAction(ctx, app, cont, payload)

		app.State.CompleteBootstrap()
		app.Metrics.ObserveBootstrap(time.Since(started))

		app.fetchContributors(ctx)

		return err
	}
}

// migrateLegacyToken clears a pre-migration auth session and prompts the user
// to sign in again. Without this, a stale token would shadow the new scheme.
func (a *App) migrateLegacyToken(ctx context.Context) {
	if a.Effects.Store == nil {
		return
	}
	token, err := a.Effects.Store.Get(ctx, KeyLegacyToken)
	if err != nil || token == "" {
		return
	}

	_ = a.Effects.Store.Delete(ctx, KeyLegacySession)
	_ = a.Effects.Store.Delete(ctx, KeyLegacyToken)
	a.State.SetHasLogIn(false)

	if a.Effects.Notifier == nil {
		return
	}
	a.Effects.Notifier.Notify(domain.Notification{
		Title:    "Session expired",
		Message:  "Sign in again to keep your sandboxes synced.",
		Severity: domain.SeverityNotice,
		Sticky:   true,
		Actions: []domain.NotificationAction{
			{
				Label: "Sign in",
				Run: func() {
					if a.Effects.Auth == nil {
						return
					}
					if err := a.Effects.Auth.SignIn(context.Background()); err != nil {
						a.report(loadUserError, err)
					}
				},
			},
		},
	})
}

// loadLoggedInUser runs the logged-in half of bootstrap. Any error aborts the
// remainder of this sequence only; the caller reports it and bootstrap goes
// on.
func (a *App) loadLoggedInUser(ctx context.Context) error {
	if a.Effects.Auth == nil {
		return domain.ErrNotLoggedIn
	}
	user, err := a.Effects.Auth.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("fetch current user: %w", err)
	}
	user.PatronPrice = user.Subscription.MonthlyPrice()

	if a.Effects.Analytics != nil {
		a.Effects.Analytics.Identify(user.ID, map[string]any{
			"username": user.Username,
			"email":    user.Email,
		})
	}

	if a.Effects.Store != nil {
		if teamID, err := a.Effects.Store.Get(ctx, KeySelectedTeam); err == nil && teamID != "" {
			a.State.SetActiveTeam(teamID)
			a.bestEffort("record team membership", func() error {
				return a.Effects.Store.Set(ctx, KeyTeamMembership, teamID)
			})
		}
	}

	if a.Effects.Survey != nil {
		a.bestEffort("user survey", func() error {
			return a.Effects.Survey.Prompt(ctx, user)
		})
	}

	if a.Effects.Live != nil {
		if err := a.Effects.Live.Connect(ctx); err != nil {
			return fmt.Errorf("connect live socket: %w", err)
		}
	}
	if a.Effects.Notifications != nil {
		if err := a.Effects.Notifications.Initialize(ctx, user); err != nil {
			return fmt.Errorf("initialize notifications: %w", err)
		}
	}
	if a.Effects.Templates != nil {
		if err := a.Effects.Templates.Prefetch(ctx); err != nil {
			return fmt.Errorf("prefetch templates: %w", err)
		}
	}

	a.State.SetUser(user)
	a.State.SetHasLogIn(true)
	return nil
}

// identifyAnonymous tags the session with a stable anonymous analytics id,
// creating and persisting one on first run.
func (a *App) identifyAnonymous(ctx context.Context) {
	if a.Effects.Analytics == nil {
		return
	}
	a.Effects.Analytics.Identify("", map[string]any{"signed_in": false})

	var id string
	if a.Effects.Store != nil {
		id, _ = a.Effects.Store.Get(ctx, KeyAnonymousID)
	}
	if id == "" {
		id = uuid.NewString()
		if a.Effects.Store != nil {
			a.bestEffort("persist anonymous id", func() error {
				return a.Effects.Store.Set(ctx, KeyAnonymousID, id)
			})
		}
	}
	a.Effects.Analytics.SetAnonymousID(id)
}

// fetchContributors stores the normalized contributor display names.
// Non-critical display data: fetch and parse failures are swallowed.
func (a *App) fetchContributors(ctx context.Context) {
	if a.Effects.Contributors == nil {
		return
	}
	a.bestEffort("contributors fetch", func() error {
		names, err := a.Effects.Contributors.Fetch(ctx)
		if err != nil {
			return err
		}
		a.State.SetContributors(names)
		return nil
	})
}
