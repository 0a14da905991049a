package ports

import (
	"context"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
)

// Notifier delivers fire-and-forget notifications. Implementations log
// failures and never surface them to the caller.
type Notifier interface {
	NotifyBookingReceived(ctx context.Context, b *domain.Booking)
	NotifyMembershipExpired(ctx context.Context, m *domain.Member)
}
