package domain

// User is the authenticated profile returned by the auth client.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`

	// Subscription is nil for users without a paid plan.
	Subscription *Subscription `json:"subscription,omitempty"`

	// PatronPrice is the derived monthly price of the subscription.
	// Computed during bootstrap, zero when there is no subscription.
	PatronPrice float64 `json:"patronPrice"`
}

// Subscription describes a paid plan attached to a user.
type Subscription struct {
	// Amount is the total paid per billing period.
	Amount float64 `json:"amount"`

	// Duration is the billing period, "monthly" or "yearly".
	Duration string `json:"duration"`
}

// MonthlyPrice derives the per-month price of the subscription.
func (s *Subscription) MonthlyPrice() float64 {
	if s == nil {
		return 0
	}
	if s.Duration == "yearly" {
		return s.Amount / 12
	}
	return s.Amount
}
