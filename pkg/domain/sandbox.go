package domain

// AuthLevel is an ordered authorization level on a sandbox.
// The zero value means "no specific level required" when used as a requirement.
type AuthLevel int

const (
	AuthNone AuthLevel = iota
	AuthRead
	AuthComment
	AuthWrite
	AuthOwner
)

// String returns the lowercase name of the level.
func (l AuthLevel) String() string {
	switch l {
	case AuthRead:
		return "read"
	case AuthComment:
		return "comment"
	case AuthWrite:
		return "write"
	case AuthOwner:
		return "owner"
	default:
		return "none"
	}
}

// Satisfies reports whether the level grants at least the required level.
func (l AuthLevel) Satisfies(required AuthLevel) bool {
	return l >= required
}

// Sandbox is a reference to the currently edited resource.
// It is mutated by editor actions outside this layer; the gates only read it,
// except for replacing it after a fork.
type Sandbox struct {
	// ID identifies the sandbox at the backend.
	ID string `json:"id"`

	// Owned reports whether the current user owns the sandbox.
	Owned bool `json:"owned"`

	// Authorization is the current user's level on the sandbox.
	Authorization AuthLevel `json:"authorization"`

	// Frozen marks the sandbox as read-only at the resource level.
	Frozen bool `json:"frozen"`

	// SessionFrozen is the session-level freeze override. When false the user
	// already chose to edit the frozen sandbox for the rest of the session.
	SessionFrozen bool `json:"sessionFrozen"`
}
