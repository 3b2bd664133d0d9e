package domain

// EvolutionPoint is one weekly application-count bucket. Responses is a
// documented stub and always zero.
type EvolutionPoint struct {
	Name         string `json:"name"`
	Applications int    `json:"applications"`
	Responses    int    `json:"responses"`
}

// PlatformCount is one slice of the platform distribution.
type PlatformCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// FollowUpReminder surfaces a single follow-up date inside the upcoming
// 7-day window. One application contributes up to three reminders.
type FollowUpReminder struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Date     string `json:"date"`
	Type     string `json:"type"`
}

// DashboardStats is the derived read model behind /dashboard/stats.
type DashboardStats struct {
	TotalDMSent       int                `json:"total_dm_sent"`
	TotalResponses    int                `json:"total_responses"`
	ResponseRate      float64            `json:"response_rate"`
	TotalApplications int                `json:"total_applications"`
	Interviews        int                `json:"interviews"`
	Evolution         []EvolutionPoint   `json:"evolution"`
	Platforms         []PlatformCount    `json:"platforms"`
	UpcomingFollowUps []FollowUpReminder `json:"upcoming_followups"`
}

// GlobalStats is the admin-facing overview. On storage failure the service
// serves a zeroed placeholder rather than an error.
type GlobalStats struct {
	TotalUsers             int64           `json:"total_users"`
	TotalApplications      int64           `json:"total_applications"`
	TotalOffers            int64           `json:"total_offers"`
	TotalCompanies         int64           `json:"total_companies"`
	ApplicationsByPlatform []PlatformCount `json:"applications_by_platform"`
}

// UserOverview is one row of the admin user listing.
type UserOverview struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	FullName          string `json:"full_name,omitempty"`
	Role              string `json:"role"`
	ApplicationsCount int64  `json:"applications_count"`
	OffersCount       int64  `json:"offers_count"`
}
