package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
	"github.com/Daudahmd/shisha-cafe/internal/service/ports"
)

type MemberService struct {
	repo     ports.MemberRepo
	notifier ports.Notifier
	logger   logger.Logger

	renewMonths int
	// allowPendingPayment widens the accepted status-update targets with
	// pending_payment, which is otherwise only set at creation.
	allowPendingPayment bool
}

func NewMemberService(
	repo ports.MemberRepo,
	notifier ports.Notifier,
	log logger.Logger,
	renewMonths int,
	allowPendingPayment bool,
) *MemberService {
	return &MemberService{
		repo:                repo,
		notifier:            notifier,
		logger:              log,
		renewMonths:         renewMonths,
		allowPendingPayment: allowPendingPayment,
	}
}

func (s *MemberService) List(ctx context.Context) ([]*domain.Member, error) {
	return s.repo.List(ctx)
}

func (s *MemberService) Get(ctx context.Context, id string) (*domain.Member, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *MemberService) UpdateStatus(ctx context.Context, id, status string) (*domain.Member, error) {
	target := domain.MembershipStatus(status)
	if !s.statusAllowed(target) {
		return nil, fmt.Errorf("%w: %q is not a valid membership status", domain.ErrInvalidStatus, status)
	}

	member, err := s.repo.UpdateStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}

	s.logger.Info("membership status updated",
		logger.String("member_id", id),
		logger.String("status", status),
	)
	return member, nil
}

func (s *MemberService) Renew(ctx context.Context, id string) (*domain.Member, error) {
	member, err := s.repo.Renew(ctx, id, s.renewMonths)
	if err != nil {
		return nil, err
	}

	s.logger.Info("membership renewed",
		logger.String("member_id", id),
		logger.String("expiry_date", member.ExpiryDate.Format(time.RFC3339)),
	)
	return member, nil
}

// ExpireLapsed marks active members past their expiry as expired and notifies
// them after the fact.
func (s *MemberService) ExpireLapsed(ctx context.Context) ([]*domain.Member, error) {
	expired, err := s.repo.ExpireLapsed(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("expire lapsed: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("memberships expired", logger.Int("count", len(expired)))

		go func(ctx context.Context, members []*domain.Member) {
			for _, m := range members {
				s.notifier.NotifyMembershipExpired(ctx, m)
			}
		}(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

func (s *MemberService) statusAllowed(status domain.MembershipStatus) bool {
	switch status {
	case domain.MembershipStatusActive, domain.MembershipStatusExpired, domain.MembershipStatusCancelled:
		return true
	case domain.MembershipStatusPendingPayment:
		return s.allowPendingPayment
	}
	return false
}
