package domain

// Recruiter is a privately owned outreach contact.
type Recruiter struct {
	ID                    string `json:"id"`
	UserID                string `json:"user_id"`
	Name                  string `json:"name"`
	Company               string `json:"company"`
	LinkedinProfile       string `json:"linkedin_profile,omitempty"`
	Sector                string `json:"sector,omitempty"`
	ConnectionRequestSent bool   `json:"connection_request_sent"`
	RequestDate           Date   `json:"request_date"`
	ConnectionStatus      string `json:"connection_status"`
	DMSent                bool   `json:"dm_sent"`
	DMDate                Date   `json:"dm_date"`
	MessageType           string `json:"message_type,omitempty"`
	ResponseReceived      bool   `json:"response_received"`
	Notes                 string `json:"notes,omitempty"`
}
