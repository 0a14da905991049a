package domain

import "math"

type Discount struct {
	Percentage       float64 `json:"percentage"`
	Discount         float64 `json:"discount"`
	DiscountedAmount float64 `json:"discountedAmount"`
}

// DiscountBreakdown is the result of a discount calculation for a specific
// customer, including how the tier was resolved.
type DiscountBreakdown struct {
	MembershipType   MembershipTier `json:"membershipType"`
	IsExistingMember bool           `json:"isExistingMember"`
	Percentage       float64        `json:"percentage"`
	Discount         float64        `json:"discount"`
	DiscountedAmount float64        `json:"discountedAmount"`
	OriginalAmount   float64        `json:"originalAmount"`
}

type DiscountQuery struct {
	Email           string
	MembershipType  string
	EstimatedAmount *float64
}

// TierPercentage maps a membership tier to its discount percentage.
// Unrecognized tiers (including the empty tier) get no discount.
func TierPercentage(tier MembershipTier) float64 {
	switch tier {
	case TierGold:
		return 10
	case TierPlatinum:
		return 20
	default:
		return 0
	}
}

// CalculateMembershipDiscount is total over all inputs. Amounts are rounded
// half away from zero to 2 decimal places (currency cents).
func CalculateMembershipDiscount(tier MembershipTier, amount float64) Discount {
	pct := TierPercentage(tier)
	discount := round2(amount * pct / 100)
	return Discount{
		Percentage:       pct,
		Discount:         discount,
		DiscountedAmount: round2(amount - discount),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
