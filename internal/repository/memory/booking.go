package memory

import (
	"context"
	"sync"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
)

// BookingRepository keeps bookings in a process-local map. State does not
// survive a restart. All access goes through the mutex so concurrent request
// handlers cannot interleave read-modify-write sequences.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
}

func NewBookingRepo() *BookingRepository {
	return &BookingRepository{
		bookings: make(map[string]*domain.Booking),
	}
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneBooking(b)
	r.bookings[stored.ID] = stored
	return nil
}

func (r *BookingRepository) List(_ context.Context) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		res = append(res, cloneBooking(b))
	}
	return res, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return cloneBooking(b), nil
}

func (r *BookingRepository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.Status = status
	return cloneBooking(b), nil
}

func (r *BookingRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.bookings, id)
	return nil
}

// cloneBooking isolates stored records from caller mutation.
func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	if b.Services != nil {
		c.Services = append([]string(nil), b.Services...)
	}
	return &c
}
