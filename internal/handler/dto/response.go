package dto

import (
	"time"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
)

type BookingResponse struct {
	ID                  string   `json:"id"`
	FirstName           string   `json:"firstName"`
	LastName            string   `json:"lastName"`
	Email               string   `json:"email"`
	Phone               string   `json:"phone"`
	Instagram           string   `json:"instagram,omitempty"`
	Services            []string `json:"services"`
	EventDate           string   `json:"eventDate"`
	EventTime           string   `json:"eventTime"`
	Location            string   `json:"location"`
	GuestCount          string   `json:"guestCount"`
	EventType           string   `json:"eventType,omitempty"`
	FlavourPreferences  string   `json:"flavourPreferences,omitempty"`
	SpecialRequirements string   `json:"specialRequirements,omitempty"`
	Budget              string   `json:"budget,omitempty"`
	SelectedPackage     string   `json:"selectedPackage,omitempty"`
	SelectedMembership  string   `json:"selectedMembership,omitempty"`
	TermsAccepted       bool     `json:"termsAccepted"`
	Status              string   `json:"status"`
	CreatedAt           string   `json:"createdAt"`
}

type MemberResponse struct {
	ID               string `json:"id"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Instagram        string `json:"instagram,omitempty"`
	MembershipType   string `json:"membershipType"`
	MembershipStatus string `json:"membershipStatus"`
	PaymentStatus    string `json:"paymentStatus"`
	PaymentAmount    string `json:"paymentAmount,omitempty"`
	PaymentDate      string `json:"paymentDate,omitempty"`
	StartDate        string `json:"startDate"`
	ExpiryDate       string `json:"expiryDate"`
	TotalBookings    string `json:"totalBookings"`
	DiscountEligible bool   `json:"discountEligible"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

type BookingSuccessResponse struct {
	Success bool            `json:"success"`
	Booking BookingResponse `json:"booking"`
}

type MemberSuccessResponse struct {
	Success bool           `json:"success"`
	Member  MemberResponse `json:"member"`
	Message string         `json:"message,omitempty"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DiscountResponse struct {
	Success          bool    `json:"success"`
	MembershipType   string  `json:"membershipType"`
	IsExistingMember bool    `json:"isExistingMember"`
	Percentage       float64 `json:"percentage"`
	Discount         float64 `json:"discount"`
	DiscountedAmount float64 `json:"discountedAmount"`
	OriginalAmount   float64 `json:"originalAmount"`
}

type ErrorResponse struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:                  b.ID,
		FirstName:           b.FirstName,
		LastName:            b.LastName,
		Email:               b.Email,
		Phone:               b.Phone,
		Instagram:           b.Instagram,
		Services:            b.Services,
		EventDate:           b.EventDate,
		EventTime:           b.EventTime,
		Location:            b.Location,
		GuestCount:          b.GuestCount,
		EventType:           b.EventType,
		FlavourPreferences:  b.FlavourPreferences,
		SpecialRequirements: b.SpecialRequirements,
		Budget:              b.Budget,
		SelectedPackage:     b.SelectedPackage,
		SelectedMembership:  b.SelectedMembership,
		TermsAccepted:       b.TermsAccepted,
		Status:              string(b.Status),
		CreatedAt:           b.CreatedAt.Format(time.RFC3339),
	}
}

func ToMemberResponse(m *domain.Member) MemberResponse {
	resp := MemberResponse{
		ID:               m.ID,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Email:            m.Email,
		Phone:            m.Phone,
		Instagram:        m.Instagram,
		MembershipType:   string(m.MembershipType),
		MembershipStatus: string(m.MembershipStatus),
		PaymentStatus:    string(m.PaymentStatus),
		PaymentAmount:    m.PaymentAmount,
		StartDate:        m.StartDate.Format(time.RFC3339),
		ExpiryDate:       m.ExpiryDate.Format(time.RFC3339),
		TotalBookings:    m.TotalBookings,
		DiscountEligible: m.DiscountEligible,
		CreatedAt:        m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        m.UpdatedAt.Format(time.RFC3339),
	}
	if m.PaymentDate != nil {
		resp.PaymentDate = m.PaymentDate.Format(time.RFC3339)
	}
	return resp
}

func ToDiscountResponse(d *domain.DiscountBreakdown) DiscountResponse {
	return DiscountResponse{
		Success:          true,
		MembershipType:   string(d.MembershipType),
		IsExistingMember: d.IsExistingMember,
		Percentage:       d.Percentage,
		Discount:         d.Discount,
		DiscountedAmount: d.DiscountedAmount,
		OriginalAmount:   d.OriginalAmount,
	}
}
