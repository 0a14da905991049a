package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
	"github.com/Daudahmd/shisha-cafe/internal/service/ports/mocks"
)

func newMemberService(t *testing.T, allowPendingPayment bool) (*MemberService, *mocks.MockMemberRepo, *mocks.MockNotifier) {
	t.Helper()
	repo := mocks.NewMockMemberRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewMemberService(repo, notifier, newTestLogger(t), 1, allowPendingPayment)
	return svc, repo, notifier
}

func TestMemberService_List(t *testing.T) {
	svc, repo, _ := newMemberService(t, false)

	members := []*domain.Member{{ID: "m1"}, {ID: "m2"}}
	repo.EXPECT().List(mock.Anything).Return(members, nil)

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestMemberService_Get_NotFound(t *testing.T) {
	svc, repo, _ := newMemberService(t, false)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrMemberNotFound)

	_, err := svc.Get(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestMemberService_UpdateStatus_Success(t *testing.T) {
	svc, repo, _ := newMemberService(t, false)

	updated := &domain.Member{ID: "m1", MembershipStatus: domain.MembershipStatusCancelled}
	repo.EXPECT().UpdateStatus(mock.Anything, "m1", domain.MembershipStatusCancelled).Return(updated, nil)

	member, err := svc.UpdateStatus(context.Background(), "m1", "cancelled")

	require.NoError(t, err)
	assert.Equal(t, domain.MembershipStatusCancelled, member.MembershipStatus)
}

func TestMemberService_UpdateStatus_Invalid(t *testing.T) {
	svc, _, _ := newMemberService(t, false)

	_, err := svc.UpdateStatus(context.Background(), "m1", "frozen")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestMemberService_UpdateStatus_PendingPaymentRejectedByDefault(t *testing.T) {
	svc, _, _ := newMemberService(t, false)

	_, err := svc.UpdateStatus(context.Background(), "m1", "pending_payment")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestMemberService_UpdateStatus_PendingPaymentAllowedWhenEnabled(t *testing.T) {
	svc, repo, _ := newMemberService(t, true)

	updated := &domain.Member{ID: "m1", MembershipStatus: domain.MembershipStatusPendingPayment}
	repo.EXPECT().UpdateStatus(mock.Anything, "m1", domain.MembershipStatusPendingPayment).Return(updated, nil)

	member, err := svc.UpdateStatus(context.Background(), "m1", "pending_payment")

	require.NoError(t, err)
	assert.Equal(t, domain.MembershipStatusPendingPayment, member.MembershipStatus)
}

func TestMemberService_Renew(t *testing.T) {
	svc, repo, _ := newMemberService(t, false)

	expiry := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	renewed := &domain.Member{
		ID:               "m1",
		MembershipStatus: domain.MembershipStatusActive,
		ExpiryDate:       expiry,
	}
	repo.EXPECT().Renew(mock.Anything, "m1", 1).Return(renewed, nil)

	member, err := svc.Renew(context.Background(), "m1")

	require.NoError(t, err)
	assert.Equal(t, expiry, member.ExpiryDate)
	assert.Equal(t, domain.MembershipStatusActive, member.MembershipStatus)
}

func TestMemberService_Renew_NotFound(t *testing.T) {
	svc, repo, _ := newMemberService(t, false)

	repo.EXPECT().Renew(mock.Anything, "missing", 1).Return(nil, domain.ErrMemberNotFound)

	_, err := svc.Renew(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestMemberService_ExpireLapsed_NotifiesEachMember(t *testing.T) {
	svc, repo, notifier := newMemberService(t, false)

	expired := []*domain.Member{
		{ID: "m1", Email: "a@example.com"},
		{ID: "m2", Email: "b@example.com"},
	}
	repo.EXPECT().ExpireLapsed(mock.Anything, mock.Anything).Return(expired, nil)
	notifier.EXPECT().NotifyMembershipExpired(mock.Anything, expired[0]).Return()
	notifier.EXPECT().NotifyMembershipExpired(mock.Anything, expired[1]).Return()

	got, err := svc.ExpireLapsed(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestMemberService_ExpireLapsed_NoneExpired(t *testing.T) {
	svc, repo, _ := newMemberService(t, false)

	repo.EXPECT().ExpireLapsed(mock.Anything, mock.Anything).Return(nil, nil)

	got, err := svc.ExpireLapsed(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemberService_ExpireLapsed_RepoError(t *testing.T) {
	svc, repo, _ := newMemberService(t, false)

	repo.EXPECT().ExpireLapsed(mock.Anything, mock.Anything).Return(nil, errors.New("store unavailable"))

	_, err := svc.ExpireLapsed(context.Background())

	require.Error(t, err)
}
