package domain

// LinkedInActivity records a post, comment or similar networking action.
type LinkedInActivity struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	ActivityDate Date   `json:"activity_date"`
	ActivityType string `json:"activity_type"`
	Description  string `json:"description,omitempty"`
	Link         string `json:"link,omitempty"`
}
