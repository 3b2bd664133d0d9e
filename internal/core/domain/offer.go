package domain

// JobOffer is a job posting tracked on the shared board. Offers are readable
// by every user but only the owner may mutate or delete them.
type JobOffer struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	Platform         string `json:"platform"`
	Type             string `json:"type,omitempty"`
	RegistrationDone bool   `json:"registration_done"`
	RegistrationDate Date   `json:"registration_date"`
	ProfileLink      string `json:"profile_link,omitempty"`
	OfferTitle       string `json:"offer_title"`
	OfferLink        string `json:"offer_link,omitempty"`
	SaveDate         Date   `json:"save_date"`
	ApplicationSent  bool   `json:"application_sent"`
	ApplicationDate  Date   `json:"application_date"`
	Status           string `json:"status"`
}
