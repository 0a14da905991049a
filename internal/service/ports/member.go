package ports

import (
	"context"
	"time"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
)

type MemberRepo interface {
	Create(ctx context.Context, m *domain.Member) error
	List(ctx context.Context) ([]*domain.Member, error)
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	Update(ctx context.Context, m *domain.Member) error
	UpdateStatus(ctx context.Context, id string, status domain.MembershipStatus) (*domain.Member, error)
	// Renew extends the expiry by the given number of calendar months from the
	// current expiry (not from now) and sets the membership active.
	Renew(ctx context.Context, id string, months int) (*domain.Member, error)
	// ExpireLapsed transitions active members whose expiry is before now to
	// expired and returns the affected records.
	ExpireLapsed(ctx context.Context, now time.Time) ([]*domain.Member, error)
}
