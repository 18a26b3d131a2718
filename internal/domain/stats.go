package domain

// StatusCounts tallies records by status within one table.
type StatusCounts struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	Applications          StatusCounts                       `json:"applications"`
	Volunteers            map[VolunteerCategory]StatusCounts `json:"volunteers"`
	NewsletterSubscribers int                                `json:"newsletter_subscribers"`
	MediaItems            int                                `json:"media_items"`
}
