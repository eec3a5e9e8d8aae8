package model

// AdminStats is the server-computed summary shown on the dashboard.
type AdminStats struct {
	TotalSubscriptions int            `json:"totalSubscriptions"`
	TotalBookings      int            `json:"totalBookings"`
	TotalFeedback      int            `json:"totalFeedback"`
	AverageRating      float64        `json:"averageRating"`
	RecentActivity     RecentActivity `json:"recentActivity"`
}

// RecentActivity holds 7-day counts per collection.
type RecentActivity struct {
	Subscriptions int `json:"subscriptions"`
	Bookings      int `json:"bookings"`
	Feedback      int `json:"feedback"`
}
