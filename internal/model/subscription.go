package model

// SubscriptionRequest is the newsletter sign-up payload.
type SubscriptionRequest struct {
	Email string `json:"email" binding:"required,loose_email"`
}

// Subscription is a newsletter record as listed by the admin API.
type Subscription struct {
	ID           int    `json:"id"`
	EmailAddress string `json:"email_address"`
	CreatedAt    string `json:"created_at"`
}

// DisplayDate renders CreatedAt the way the dashboard shows it.
func (s Subscription) DisplayDate() string {
	return displayDate(s.CreatedAt)
}
