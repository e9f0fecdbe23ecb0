package domain

// Severity classifies a notification.
type Severity string

const (
	SeverityNotice  Severity = "notice"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
)

// NotificationAction is a labeled button attached to a notification.
// Run is invoked by the host when the user activates it.
type NotificationAction struct {
	Label string
	Run   func()
}

// Notification is a user-facing notice presented by the host.
type Notification struct {
	Title    string
	Message  string
	Severity Severity

	// Sticky notifications stay visible until dismissed explicitly.
	Sticky bool

	Actions []NotificationAction
}
