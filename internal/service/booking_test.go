package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
	"github.com/Daudahmd/shisha-cafe/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func validInput() domain.BookingInput {
	return domain.BookingInput{
		FirstName:          "Alice",
		LastName:           "Smith",
		Email:              "alice@example.com",
		Phone:              "0123456789",
		Services:           []string{"shisha-catering"},
		EventDate:          "2026-10-01",
		EventTime:          "19:00",
		Location:           "12 High Street, London",
		GuestCount:         "25",
		SelectedMembership: domain.MembershipNone,
		TermsAccepted:      true,
	}
}

func newBookingService(t *testing.T) (*BookingService, *mocks.MockBookingRepo, *mocks.MockMemberRepo, *mocks.MockNotifier) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	memberRepo := mocks.NewMockMemberRepo(t)
	notifier := mocks.NewMockNotifier(t)
	svc := NewBookingService(bookingRepo, memberRepo, notifier, newTestLogger(t), 1)
	return svc, bookingRepo, memberRepo, notifier
}

func TestBookingService_Submit_Success(t *testing.T) {
	svc, bookingRepo, _, notifier := newBookingService(t)

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingReceived(mock.Anything, mock.Anything).Return()

	booking, err := svc.Submit(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "alice@example.com", booking.Email)
	assert.False(t, booking.CreatedAt.IsZero())

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Submit_ValidationFails(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	_, err := svc.Submit(context.Background(), domain.BookingInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	fields := make([]string, 0, len(vErr.Fields))
	for _, f := range vErr.Fields {
		fields = append(fields, f.Field)
	}
	assert.Contains(t, fields, "firstName")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "services")
	assert.Contains(t, fields, "termsAccepted")
}

func TestBookingService_Submit_RejectsUnacceptedTerms(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	input := validInput()
	input.TermsAccepted = false

	_, err := svc.Submit(context.Background(), input)

	require.Error(t, err)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "termsAccepted", vErr.Fields[0].Field)
	assert.Equal(t, "You must accept the terms and conditions", vErr.Fields[0].Message)
}

func TestBookingService_Submit_RejectsShortPhone(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	input := validInput()
	input.Phone = "12345"

	_, err := svc.Submit(context.Background(), input)

	require.Error(t, err)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "phone", vErr.Fields[0].Field)
}

func TestBookingService_Submit_CreateError(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Submit(context.Background(), validInput())

	require.Error(t, err)
}

func TestBookingService_Submit_EnrollsNewMember(t *testing.T) {
	svc, bookingRepo, memberRepo, notifier := newBookingService(t)

	input := validInput()
	input.SelectedMembership = string(domain.TierGold)

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	memberRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, domain.ErrMemberNotFound)
	memberRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, m *domain.Member) {
		assert.Equal(t, "alice@example.com", m.Email)
		assert.Equal(t, domain.TierGold, m.MembershipType)
		assert.Equal(t, domain.MembershipStatusActive, m.MembershipStatus)
		assert.Equal(t, domain.PaymentStatusPending, m.PaymentStatus)
		assert.Equal(t, "1", m.TotalBookings)
		assert.True(t, m.DiscountEligible)
		assert.Equal(t, m.StartDate.AddDate(0, 1, 0), m.ExpiryDate)
	}).Return(nil)
	notifier.EXPECT().NotifyBookingReceived(mock.Anything, mock.Anything).Return()

	_, err := svc.Submit(context.Background(), input)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Submit_IncrementsExistingMember(t *testing.T) {
	svc, bookingRepo, memberRepo, notifier := newBookingService(t)

	input := validInput()
	input.SelectedMembership = string(domain.TierPlatinum)

	existing := &domain.Member{
		ID:             "m1",
		Email:          "alice@example.com",
		MembershipType: domain.TierPlatinum,
		TotalBookings:  "3",
	}

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	memberRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(existing, nil)
	memberRepo.EXPECT().Update(mock.Anything, mock.Anything).Run(func(ctx context.Context, m *domain.Member) {
		assert.Equal(t, "m1", m.ID)
		assert.Equal(t, "4", m.TotalBookings)
	}).Return(nil)
	notifier.EXPECT().NotifyBookingReceived(mock.Anything, mock.Anything).Return()

	_, err := svc.Submit(context.Background(), input)

	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Submit_UnknownTierSkipsEnrollment(t *testing.T) {
	svc, bookingRepo, _, notifier := newBookingService(t)

	input := validInput()
	input.SelectedMembership = "silver"

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingReceived(mock.Anything, mock.Anything).Return()

	booking, err := svc.Submit(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Submit_MembershipFailureKeepsBooking(t *testing.T) {
	svc, bookingRepo, memberRepo, notifier := newBookingService(t)

	input := validInput()
	input.SelectedMembership = string(domain.TierGold)

	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	memberRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(nil, errors.New("store unavailable"))
	notifier.EXPECT().NotifyBookingReceived(mock.Anything, mock.Anything).Return()

	booking, err := svc.Submit(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_List_BackfillsMissingStatus(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	legacy := &domain.Booking{ID: "b1"}
	current := &domain.Booking{ID: "b2", Status: domain.BookingStatusConfirmed}
	migrated := &domain.Booking{ID: "b1", Status: domain.BookingStatusPending}

	bookingRepo.EXPECT().List(mock.Anything).Return([]*domain.Booking{legacy, current}, nil)
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusPending).Return(migrated, nil)

	bookings, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, domain.BookingStatusPending, bookings[0].Status)
	assert.Equal(t, domain.BookingStatusConfirmed, bookings[1].Status)
}

func TestBookingService_UpdateStatus_Success(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	updated := &domain.Booking{ID: "b1", Status: domain.BookingStatusCompleted}
	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "b1", domain.BookingStatusCompleted).Return(updated, nil)

	booking, err := svc.UpdateStatus(context.Background(), "b1", "completed")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, booking.Status)
}

func TestBookingService_UpdateStatus_Invalid(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	_, err := svc.UpdateStatus(context.Background(), "b1", "archived")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestBookingService_UpdateStatus_NotFound(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	bookingRepo.EXPECT().UpdateStatus(mock.Anything, "missing", domain.BookingStatusConfirmed).Return(nil, domain.ErrBookingNotFound)

	_, err := svc.UpdateStatus(context.Background(), "missing", "confirmed")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Delete(t *testing.T) {
	svc, bookingRepo, _, _ := newBookingService(t)

	bookingRepo.EXPECT().Delete(mock.Anything, "b1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "b1"))
}

func TestBookingService_CalculateDiscount_ExplicitTier(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	amount := 100.0
	got, err := svc.CalculateDiscount(context.Background(), domain.DiscountQuery{
		Email:           "alice@example.com",
		MembershipType:  string(domain.TierGold),
		EstimatedAmount: &amount,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TierGold, got.MembershipType)
	assert.False(t, got.IsExistingMember)
	assert.Equal(t, 10.0, got.Percentage)
	assert.Equal(t, 10.0, got.Discount)
	assert.Equal(t, 90.0, got.DiscountedAmount)
	assert.Equal(t, 100.0, got.OriginalAmount)
}

func TestBookingService_CalculateDiscount_ActiveMemberLookup(t *testing.T) {
	svc, _, memberRepo, _ := newBookingService(t)

	member := &domain.Member{
		ID:               "m1",
		Email:            "alice@example.com",
		MembershipType:   domain.TierPlatinum,
		MembershipStatus: domain.MembershipStatusActive,
		ExpiryDate:       time.Now().AddDate(0, 1, 0),
	}
	memberRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(member, nil)

	amount := 250.0
	got, err := svc.CalculateDiscount(context.Background(), domain.DiscountQuery{
		Email:           "alice@example.com",
		EstimatedAmount: &amount,
	})

	require.NoError(t, err)
	assert.True(t, got.IsExistingMember)
	assert.Equal(t, domain.TierPlatinum, got.MembershipType)
	assert.Equal(t, 20.0, got.Percentage)
	assert.Equal(t, 50.0, got.Discount)
	assert.Equal(t, 200.0, got.DiscountedAmount)
}

func TestBookingService_CalculateDiscount_ExpiredMemberGetsNothing(t *testing.T) {
	svc, _, memberRepo, _ := newBookingService(t)

	member := &domain.Member{
		ID:               "m1",
		Email:            "alice@example.com",
		MembershipType:   domain.TierGold,
		MembershipStatus: domain.MembershipStatusActive,
		ExpiryDate:       time.Now().AddDate(0, -1, 0),
	}
	memberRepo.EXPECT().GetByEmail(mock.Anything, "alice@example.com").Return(member, nil)

	amount := 100.0
	got, err := svc.CalculateDiscount(context.Background(), domain.DiscountQuery{
		Email:           "alice@example.com",
		EstimatedAmount: &amount,
	})

	require.NoError(t, err)
	assert.True(t, got.IsExistingMember)
	assert.Equal(t, 0.0, got.Percentage)
	assert.Equal(t, 100.0, got.DiscountedAmount)
}

func TestBookingService_CalculateDiscount_UnknownEmail(t *testing.T) {
	svc, _, memberRepo, _ := newBookingService(t)

	memberRepo.EXPECT().GetByEmail(mock.Anything, "new@example.com").Return(nil, domain.ErrMemberNotFound)

	got, err := svc.CalculateDiscount(context.Background(), domain.DiscountQuery{Email: "new@example.com"})

	require.NoError(t, err)
	assert.False(t, got.IsExistingMember)
	assert.Equal(t, 0.0, got.Percentage)
	assert.Equal(t, 0.0, got.Discount)
}

func TestBookingService_CalculateDiscount_MissingEmail(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	_, err := svc.CalculateDiscount(context.Background(), domain.DiscountQuery{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_CalculateDiscount_NegativeAmount(t *testing.T) {
	svc, _, _, _ := newBookingService(t)

	amount := -10.0
	_, err := svc.CalculateDiscount(context.Background(), domain.DiscountQuery{
		Email:           "alice@example.com",
		EstimatedAmount: &amount,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
