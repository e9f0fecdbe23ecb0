// Package state provides the mutable client-state container shared by all
// gated actions. The source environment assumed a single cooperative thread;
// here every field is guarded by a mutex so actions may be dispatched from any
// goroutine.
package state

import (
	"sync"

	"github.com/lattice-dev/lattice/pkg/domain"
)

// Container holds the process-wide session state and the active sandbox
// reference. All access goes through methods; the zero value is not usable,
// use New.
type Container struct {
	mu      sync.Mutex
	session domain.Session
	sandbox *domain.Sandbox
	forking bool
}

// New creates an empty container.
func New() *Container {
	return &Container{}
}

// Session returns a snapshot of the session state.
func (c *Container) Session() domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session
	if c.session.Contributors != nil {
		s.Contributors = append([]string(nil), c.session.Contributors...)
	}
	return s
}

// HasLoadedApp reports whether bootstrap completed.
func (c *Container) HasLoadedApp() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.HasLoadedApp
}

// HasLogIn reports the login flag.
func (c *Container) HasLogIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.HasLogIn
}

// SetHasLogIn sets the login flag.
func (c *Container) SetHasLogIn(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.HasLogIn = v
}

// BeginBootstrap claims the bootstrap slot and opens the authentication
// window. Returns false when bootstrap already completed or another dispatch
// holds the slot, so the one-time side effects run at most once.
func (c *Container) BeginBootstrap() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.HasLoadedApp || c.session.IsAuthenticating {
		return false
	}
	c.session.IsAuthenticating = true
	return true
}

// CompleteBootstrap marks bootstrap done and closes the authentication
// window. HasLoadedApp never transitions back to false.
func (c *Container) CompleteBootstrap() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.HasLoadedApp = true
	c.session.IsAuthenticating = false
}

// SetConnected records the connection status.
func (c *Container) SetConnected(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Connected = v
}

// SetUser stores the authenticated profile.
func (c *Container) SetUser(u *domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.User = u
}

// User returns the authenticated profile, nil when anonymous.
func (c *Container) User() *domain.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.User
}

// SetActiveTeam records the restored team id.
func (c *Container) SetActiveTeam(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.ActiveTeam = id
}

// SetContributors stores the normalized contributor display names.
func (c *Container) SetContributors(names []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Contributors = append([]string(nil), names...)
}

// SetSettings stores the loaded editor settings.
func (c *Container) SetSettings(s domain.EditorSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.session.Settings = s
}

// Sandbox returns the active sandbox reference, nil when none is open.
func (c *Container) Sandbox() *domain.Sandbox {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sandbox
}

// SetSandbox replaces the active sandbox reference.
func (c *Container) SetSandbox(sb *domain.Sandbox) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sandbox = sb
}

// ClearSessionFreeze clears the session-level freeze override on the active
// sandbox. No-op when no sandbox is open.
func (c *Container) ClearSessionFreeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sandbox != nil {
		c.sandbox.SessionFrozen = false
	}
}

// Forking reports whether a fork is in progress.
func (c *Container) Forking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forking
}

// BeginFork marks a fork as in progress. Returns false if one already is,
// so concurrent duplicate forks are prevented.
func (c *Container) BeginFork() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.forking {
		return false
	}
	c.forking = true
	return true
}

// EndFork clears the fork-in-progress flag.
func (c *Container) EndFork() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forking = false
}
