package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// MembershipNone is the booking form sentinel for "no membership selected".
const MembershipNone = "none"

type Booking struct {
	ID                  string        `json:"id"`
	FirstName           string        `json:"firstName"`
	LastName            string        `json:"lastName"`
	Email               string        `json:"email"`
	Phone               string        `json:"phone"`
	Instagram           string        `json:"instagram,omitempty"`
	Services            []string      `json:"services"`
	EventDate           string        `json:"eventDate"`
	EventTime           string        `json:"eventTime"`
	Location            string        `json:"location"`
	GuestCount          string        `json:"guestCount"`
	EventType           string        `json:"eventType,omitempty"`
	FlavourPreferences  string        `json:"flavourPreferences,omitempty"`
	SpecialRequirements string        `json:"specialRequirements,omitempty"`
	Budget              string        `json:"budget,omitempty"`
	SelectedPackage     string        `json:"selectedPackage,omitempty"`
	SelectedMembership  string        `json:"selectedMembership,omitempty"`
	TermsAccepted       bool          `json:"termsAccepted"`
	Status              BookingStatus `json:"status"`
	CreatedAt           time.Time     `json:"createdAt"`
}

type BookingInput struct {
	FirstName           string
	LastName            string
	Email               string
	Phone               string
	Instagram           string
	Services            []string
	EventDate           string
	EventTime           string
	Location            string
	GuestCount          string
	EventType           string
	FlavourPreferences  string
	SpecialRequirements string
	Budget              string
	SelectedPackage     string
	SelectedMembership  string
	TermsAccepted       bool
}
