package ports

import (
	"context"

	"github.com/lattice-dev/lattice/pkg/domain"
)

// AuthClient fetches the authenticated profile and triggers sign-in.
type AuthClient interface {
	// CurrentUser returns the profile of the logged-in user, or an error.
	CurrentUser(ctx context.Context) (*domain.User, error)

	// SignIn starts the sign-in flow. Used by the re-authentication notice.
	SignIn(ctx context.Context) error
}

// Analytics identifies users and records events. All methods are
// fire-and-forget: implementations must not block on network delivery.
type Analytics interface {
	// Identify attaches the user id and traits to subsequent events.
	Identify(id string, traits map[string]any)

	// SetAnonymousID assigns the analytics id used for anonymous sessions.
	SetAnonymousID(id string)

	// Track records a named event.
	Track(event string, props map[string]any)
}

// Notifier presents a notification to the user.
type Notifier interface {
	Notify(n domain.Notification)
}

// ErrorReporter is the centralized error sink. Report accepts a human-facing
// message plus the causing error.
type ErrorReporter interface {
	Report(msg string, err error)
}

// ConnectionMonitor reports connectivity changes to registered listeners.
type ConnectionMonitor interface {
	AddListener(fn func(connected bool))
}

// LiveClient acquires the realtime collaboration socket and registers
// protocol message listeners.
type LiveClient interface {
	// Connect establishes the collaboration socket. May fail.
	Connect(ctx context.Context) error

	// Listen registers a handler for collaboration protocol messages.
	Listen(fn func(event string, data []byte))
}

// ContributorSource fetches the project contributor display names.
type ContributorSource interface {
	Fetch(ctx context.Context) ([]string, error)
}

// SettingsLoader loads the persisted editor settings.
type SettingsLoader interface {
	Load(ctx context.Context) (domain.EditorSettings, error)
}

// SurveyPrompter triggers the user survey when eligible. Best-effort.
type SurveyPrompter interface {
	Prompt(ctx context.Context, user *domain.User) error
}

// TemplateWarmer prefetches sandbox templates for faster first use.
type TemplateWarmer interface {
	Prefetch(ctx context.Context) error
}

// NotificationState initializes the server-backed user notification state.
type NotificationState interface {
	Initialize(ctx context.Context, user *domain.User) error
}

// Forker forks the active sandbox and returns the fork.
type Forker interface {
	Fork(ctx context.Context, sandboxID string) (*domain.Sandbox, error)
}
