package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
)

type MemberRepository struct {
	mu      sync.RWMutex
	members map[string]*domain.Member
}

func NewMemberRepo() *MemberRepository {
	return &MemberRepository{
		members: make(map[string]*domain.Member),
	}
}

func (r *MemberRepository) Create(_ context.Context, m *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneMember(m)
	r.members[stored.ID] = stored
	return nil
}

func (r *MemberRepository) List(_ context.Context) ([]*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Member, 0, len(r.members))
	for _, m := range r.members {
		res = append(res, cloneMember(m))
	}
	return res, nil
}

func (r *MemberRepository) GetByID(_ context.Context, id string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.members[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return cloneMember(m), nil
}

// GetByEmail scans for the first member with an equal email. Email is a
// natural dedup key, not a storage-level unique constraint.
func (r *MemberRepository) GetByEmail(_ context.Context, email string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members {
		if m.Email == email {
			return cloneMember(m), nil
		}
	}
	return nil, domain.ErrMemberNotFound
}

func (r *MemberRepository) Update(_ context.Context, m *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[m.ID]; !ok {
		return domain.ErrMemberNotFound
	}
	r.members[m.ID] = cloneMember(m)
	return nil
}

func (r *MemberRepository) UpdateStatus(_ context.Context, id string, status domain.MembershipStatus) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	m.MembershipStatus = status
	m.UpdatedAt = time.Now().UTC()
	return cloneMember(m), nil
}

func (r *MemberRepository) Renew(_ context.Context, id string, months int) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	// Extension compounds on the current expiry, not on now.
	m.ExpiryDate = m.ExpiryDate.AddDate(0, months, 0)
	m.MembershipStatus = domain.MembershipStatusActive
	m.UpdatedAt = time.Now().UTC()
	return cloneMember(m), nil
}

func (r *MemberRepository) ExpireLapsed(_ context.Context, now time.Time) ([]*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []*domain.Member
	for _, m := range r.members {
		if m.MembershipStatus == domain.MembershipStatusActive && m.ExpiryDate.Before(now) {
			m.MembershipStatus = domain.MembershipStatusExpired
			m.UpdatedAt = now
			res = append(res, cloneMember(m))
		}
	}
	return res, nil
}

func cloneMember(m *domain.Member) *domain.Member {
	c := *m
	if m.PaymentDate != nil {
		d := *m.PaymentDate
		c.PaymentDate = &d
	}
	return &c
}
