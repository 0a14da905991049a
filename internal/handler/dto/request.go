package dto

// CreateBookingRequest mirrors the public booking form. Field-level
// validation happens in the service so failures come back with per-field
// messages.
type CreateBookingRequest struct {
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	Instagram           string   `json:"instagram"`
	Services            []string `json:"services"`
	EventDate           string   `json:"eventDate"`
	EventTime           string   `json:"eventTime"`
	Location            string   `json:"location"`
	GuestCount          string   `json:"guestCount"`
	EventType           string   `json:"eventType"`
	FlavourPreferences  string   `json:"flavourPreferences"`
	SpecialRequirements string   `json:"specialRequirements"`
	Budget              string   `json:"budget"`
	SelectedPackage     string   `json:"selectedPackage"`
	SelectedMembership  string   `json:"selectedMembership"`
	TermsAccepted       bool     `json:"termsAccepted"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CalculateDiscountRequest struct {
	Email           string   `json:"email"`
	MembershipType  string   `json:"membershipType"`
	EstimatedAmount *float64 `json:"estimatedAmount"`
}
