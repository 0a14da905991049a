package domain

import "time"

type MembershipTier string

const (
	TierGold     MembershipTier = "Gold"
	TierPlatinum MembershipTier = "Platinum"
)

func (t MembershipTier) Valid() bool {
	return t == TierGold || t == TierPlatinum
}

type MembershipStatus string

const (
	MembershipStatusPendingPayment MembershipStatus = "pending_payment"
	MembershipStatusActive         MembershipStatus = "active"
	MembershipStatusExpired        MembershipStatus = "expired"
	MembershipStatusCancelled      MembershipStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Member is a recurring customer enrolled in a paid discount tier.
// There is no foreign key to bookings; the association is by email.
type Member struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Instagram        string           `json:"instagram,omitempty"`
	MembershipType   MembershipTier   `json:"membershipType"`
	MembershipStatus MembershipStatus `json:"membershipStatus"`
	PaymentStatus    PaymentStatus    `json:"paymentStatus"`
	PaymentAmount    string           `json:"paymentAmount,omitempty"`
	PaymentDate      *time.Time       `json:"paymentDate,omitempty"`
	StartDate        time.Time        `json:"startDate"`
	ExpiryDate       time.Time        `json:"expiryDate"`
	TotalBookings    string           `json:"totalBookings"`
	DiscountEligible bool             `json:"discountEligible"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}
