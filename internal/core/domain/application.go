package domain

// StatusInterview is the final status marking a landed interview. The
// dashboard counts on this exact (French) label, case-sensitive.
const StatusInterview = "Entretien"

// Application is a privately owned job application with its three scheduled
// follow-up dates (J+5, J+15, J+30 from the outreach date).
type Application struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Company       string `json:"company"`
	Position      string `json:"position"`
	CompanyLink   string `json:"company_link,omitempty"`
	OfferLink     string `json:"offer_link,omitempty"`
	RecruiterName string `json:"recruiter_name,omitempty"`
	DMSentDate    Date   `json:"dm_sent_date"`
	FollowUp5     Date   `json:"follow_up_5_date"`
	FollowUp15    Date   `json:"follow_up_15_date"`
	FollowUp30    Date   `json:"follow_up_30_date"`
	FinalStatus   string `json:"final_status"`
	Notes         string `json:"notes,omitempty"`
}
