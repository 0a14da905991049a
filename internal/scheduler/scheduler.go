package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
)

type memberSweeper interface {
	ExpireLapsed(ctx context.Context) ([]*domain.Member, error)
}

// Scheduler periodically sweeps memberships whose expiry date has passed.
type Scheduler struct {
	memberService memberSweeper
	interval      time.Duration
	logger        logger.Logger
}

func New(
	memberService memberSweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		memberService: memberService,
		interval:      interval,
		logger:        logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.memberService.ExpireLapsed(ctx)
	if err != nil {
		s.logger.Error("failed to expire lapsed memberships",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, m := range expired {
		s.logger.Info("membership expired",
			logger.String("member_id", m.ID),
			logger.String("email", m.Email),
			logger.String("tier", string(m.MembershipType)),
		)
	}
}
