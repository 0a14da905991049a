package notification

import (
	"context"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
	"github.com/Daudahmd/shisha-cafe/internal/service/ports"
)

// Multi fans a notification out to every configured channel.
type Multi struct {
	notifiers []ports.Notifier
}

func NewMulti(notifiers ...ports.Notifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) NotifyBookingReceived(ctx context.Context, b *domain.Booking) {
	for _, n := range m.notifiers {
		n.NotifyBookingReceived(ctx, b)
	}
}

func (m *Multi) NotifyMembershipExpired(ctx context.Context, member *domain.Member) {
	for _, n := range m.notifiers {
		n.NotifyMembershipExpired(ctx, member)
	}
}
