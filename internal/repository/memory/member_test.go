package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
)

func newMember(id, email string) *domain.Member {
	return &domain.Member{
		ID:               id,
		FirstName:        "Alice",
		LastName:         "Smith",
		Email:            email,
		MembershipType:   domain.TierGold,
		MembershipStatus: domain.MembershipStatusActive,
		PaymentStatus:    domain.PaymentStatusPending,
		StartDate:        time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		ExpiryDate:       time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		TotalBookings:    "1",
		DiscountEligible: true,
	}
}

func TestMemberRepository_CreateAndGet(t *testing.T) {
	repo := NewMemberRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newMember("m1", "alice@example.com")))

	got, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, domain.TierGold, got.MembershipType)
}

func TestMemberRepository_GetByEmail(t *testing.T) {
	repo := NewMemberRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newMember("m1", "alice@example.com")))

	got, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "m1", got.ID)

	_, err = repo.GetByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestMemberRepository_Update(t *testing.T) {
	repo := NewMemberRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newMember("m1", "alice@example.com")))

	m, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	m.TotalBookings = "2"
	require.NoError(t, repo.Update(ctx, m))

	got, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "2", got.TotalBookings)
}

func TestMemberRepository_Update_NotFound(t *testing.T) {
	repo := NewMemberRepo()

	err := repo.Update(context.Background(), newMember("missing", "x@example.com"))

	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestMemberRepository_UpdateStatus(t *testing.T) {
	repo := NewMemberRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newMember("m1", "alice@example.com")))

	updated, err := repo.UpdateStatus(ctx, "m1", domain.MembershipStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, domain.MembershipStatusCancelled, updated.MembershipStatus)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestMemberRepository_Renew_CompoundsOnCurrentExpiry(t *testing.T) {
	repo := NewMemberRepo()
	ctx := context.Background()

	m := newMember("m1", "alice@example.com")
	m.MembershipStatus = domain.MembershipStatusExpired
	require.NoError(t, repo.Create(ctx, m))

	renewed, err := repo.Renew(ctx, "m1", 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), renewed.ExpiryDate)
	assert.Equal(t, domain.MembershipStatusActive, renewed.MembershipStatus)

	// A second renewal extends from the new expiry, not from now.
	renewed, err = repo.Renew(ctx, "m1", 1)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), renewed.ExpiryDate)
}

func TestMemberRepository_Renew_NotFound(t *testing.T) {
	repo := NewMemberRepo()

	_, err := repo.Renew(context.Background(), "missing", 1)

	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestMemberRepository_ExpireLapsed(t *testing.T) {
	repo := NewMemberRepo()
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	lapsed := newMember("m1", "a@example.com")
	lapsed.ExpiryDate = now.AddDate(0, -1, 0)

	current := newMember("m2", "b@example.com")
	current.ExpiryDate = now.AddDate(0, 1, 0)

	cancelled := newMember("m3", "c@example.com")
	cancelled.ExpiryDate = now.AddDate(0, -1, 0)
	cancelled.MembershipStatus = domain.MembershipStatusCancelled

	require.NoError(t, repo.Create(ctx, lapsed))
	require.NoError(t, repo.Create(ctx, current))
	require.NoError(t, repo.Create(ctx, cancelled))

	expired, err := repo.ExpireLapsed(ctx, now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "m1", expired[0].ID)
	assert.Equal(t, domain.MembershipStatusExpired, expired[0].MembershipStatus)

	// Idempotent: the already-expired record is not picked up again.
	expired, err = repo.ExpireLapsed(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, expired)

	got, err := repo.GetByID(ctx, "m2")
	require.NoError(t, err)
	assert.Equal(t, domain.MembershipStatusActive, got.MembershipStatus)
}

func TestMemberRepository_IsolatesStoredRecords(t *testing.T) {
	repo := NewMemberRepo()
	ctx := context.Background()

	m := newMember("m1", "alice@example.com")
	require.NoError(t, repo.Create(ctx, m))

	m.TotalBookings = "99"

	got, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "1", got.TotalBookings)
}
