package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMembershipDiscount(t *testing.T) {
	tests := []struct {
		name       string
		tier       MembershipTier
		amount     float64
		percentage float64
		discount   float64
		discounted float64
	}{
		{"gold 10 percent", TierGold, 100, 10, 10, 90},
		{"platinum 20 percent", TierPlatinum, 250, 20, 50, 200},
		{"unknown tier no discount", MembershipTier("silver"), 100, 0, 0, 100},
		{"empty tier no discount", MembershipTier(""), 80, 0, 0, 80},
		{"zero amount", TierPlatinum, 0, 20, 0, 0},
		{"rounds to cents", TierGold, 33.33, 10, 3.33, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateMembershipDiscount(tt.tier, tt.amount)
			assert.Equal(t, tt.percentage, got.Percentage)
			assert.Equal(t, tt.discount, got.Discount)
			assert.Equal(t, tt.discounted, got.DiscountedAmount)
		})
	}
}

func TestMembershipTier_Valid(t *testing.T) {
	assert.True(t, TierGold.Valid())
	assert.True(t, TierPlatinum.Valid())
	assert.False(t, MembershipTier("silver").Valid())
	assert.False(t, MembershipTier("").Valid())
}

func TestBookingStatus_Valid(t *testing.T) {
	for _, s := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled} {
		assert.True(t, s.Valid())
	}
	assert.False(t, BookingStatus("archived").Valid())
	assert.False(t, BookingStatus("").Valid())
}
