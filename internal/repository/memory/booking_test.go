package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
)

func newBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Services:  []string{"shisha-catering"},
		Status:    domain.BookingStatusPending,
	}
}

func TestBookingRepository_CreateAndGet(t *testing.T) {
	repo := NewBookingRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking("b1")))

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.ID)
	assert.Equal(t, domain.BookingStatusPending, got.Status)
}

func TestBookingRepository_GetByID_NotFound(t *testing.T) {
	repo := NewBookingRepo()

	_, err := repo.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_List(t *testing.T) {
	repo := NewBookingRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking("b1")))
	require.NoError(t, repo.Create(ctx, newBooking("b2")))

	bookings, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestBookingRepository_UpdateStatus(t *testing.T) {
	repo := NewBookingRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking("b1")))

	updated, err := repo.UpdateStatus(ctx, "b1", domain.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, updated.Status)

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
}

func TestBookingRepository_UpdateStatus_NotFound(t *testing.T) {
	repo := NewBookingRepo()

	_, err := repo.UpdateStatus(context.Background(), "missing", domain.BookingStatusConfirmed)

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_Delete(t *testing.T) {
	repo := NewBookingRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newBooking("b1")))
	require.NoError(t, repo.Delete(ctx, "b1"))

	_, err := repo.GetByID(ctx, "b1")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, "b1"), domain.ErrBookingNotFound)
}

func TestBookingRepository_IsolatesStoredRecords(t *testing.T) {
	repo := NewBookingRepo()
	ctx := context.Background()

	b := newBooking("b1")
	require.NoError(t, repo.Create(ctx, b))

	// Mutating the caller's copy must not leak into the store.
	b.Status = domain.BookingStatusCancelled
	b.Services[0] = "mutated"

	got, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, got.Status)
	assert.Equal(t, "shisha-catering", got.Services[0])

	// Same for records handed back to callers.
	got.Status = domain.BookingStatusCompleted

	again, err := repo.GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, again.Status)
}
