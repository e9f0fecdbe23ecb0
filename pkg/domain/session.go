package domain

// Session represents the client session snapshot.
type Session struct {
	// HasLoadedApp reports whether the one-time bootstrap has completed.
	// It transitions false -> true exactly once per process lifetime.
	HasLoadedApp bool `json:"hasLoadedApp"`

	// IsAuthenticating is true only during the bootstrap window.
	IsAuthenticating bool `json:"isAuthenticating"`

	// HasLogIn reports whether the client holds a (presumed valid) login.
	HasLogIn bool `json:"hasLogIn"`

	// Connected reflects the last known connection status.
	Connected bool `json:"connected"`

	// User is the authenticated profile, nil when anonymous.
	User *User `json:"user,omitempty"`

	// ActiveTeam is the id of the team restored from persistent storage, if any.
	ActiveTeam string `json:"activeTeam,omitempty"`

	// Contributors holds the normalized display names of project contributors.
	// Best-effort display data; may be empty.
	Contributors []string `json:"contributors,omitempty"`

	// Settings holds the editor settings loaded during bootstrap.
	Settings EditorSettings `json:"settings"`
}
