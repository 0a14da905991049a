package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
	"github.com/Daudahmd/shisha-cafe/internal/service/ports"
)

const minPhoneLength = 10

// BookingService is the single entry point for booking submissions. It
// validates input, persists the booking, applies the conditional membership
// side effect and fires notifications after the fact.
type BookingService struct {
	bookingRepo      ports.BookingRepo
	memberRepo       ports.MemberRepo
	notifier         ports.Notifier
	logger           logger.Logger
	membershipMonths int
	emailLocks       keyedMutex
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	memberRepo ports.MemberRepo,
	notifier ports.Notifier,
	log logger.Logger,
	membershipMonths int,
) *BookingService {
	return &BookingService{
		bookingRepo:      bookingRepo,
		memberRepo:       memberRepo,
		notifier:         notifier,
		logger:           log,
		membershipMonths: membershipMonths,
	}
}

func (s *BookingService) Submit(ctx context.Context, input domain.BookingInput) (*domain.Booking, error) {
	if err := validateBooking(input); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:                  uuid.New().String(),
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		Email:               input.Email,
		Phone:               input.Phone,
		Instagram:           input.Instagram,
		Services:            input.Services,
		EventDate:           input.EventDate,
		EventTime:           input.EventTime,
		Location:            input.Location,
		GuestCount:          input.GuestCount,
		EventType:           input.EventType,
		FlavourPreferences:  input.FlavourPreferences,
		SpecialRequirements: input.SpecialRequirements,
		Budget:              input.Budget,
		SelectedPackage:     input.SelectedPackage,
		SelectedMembership:  input.SelectedMembership,
		TermsAccepted:       input.TermsAccepted,
		Status:              domain.BookingStatusPending,
		CreatedAt:           time.Now().UTC(),
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("email", booking.Email),
		logger.String("event_date", booking.EventDate),
	)

	// Best-effort: the booking stays committed even if the membership side
	// effect fails.
	if input.SelectedMembership != "" && input.SelectedMembership != domain.MembershipNone {
		if err := s.applyMembership(ctx, booking); err != nil {
			s.logger.Error("membership side effect failed",
				logger.String("booking_id", booking.ID),
				logger.String("email", booking.Email),
				logger.String("error", err.Error()),
			)
		}
	}

	go s.notifier.NotifyBookingReceived(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// applyMembership creates a member on first enrollment or bumps the booking
// counter of an existing one. The per-email lock closes the
// lookup-then-create window so at most one member exists per email.
func (s *BookingService) applyMembership(ctx context.Context, b *domain.Booking) error {
	tier := domain.MembershipTier(b.SelectedMembership)
	if !tier.Valid() {
		s.logger.Warn("unknown membership tier selected, skipping enrollment",
			logger.String("booking_id", b.ID),
			logger.String("tier", b.SelectedMembership),
		)
		return nil
	}

	unlock := s.emailLocks.lock(b.Email)
	defer unlock()

	member, err := s.memberRepo.GetByEmail(ctx, b.Email)
	switch {
	case errors.Is(err, domain.ErrMemberNotFound):
		now := time.Now().UTC()
		member = &domain.Member{
			ID:               uuid.New().String(),
			FirstName:        b.FirstName,
			LastName:         b.LastName,
			Email:            b.Email,
			Phone:            b.Phone,
			Instagram:        b.Instagram,
			MembershipType:   tier,
			MembershipStatus: domain.MembershipStatusActive,
			PaymentStatus:    domain.PaymentStatusPending,
			StartDate:        now,
			ExpiryDate:       now.AddDate(0, s.membershipMonths, 0),
			TotalBookings:    "1",
			DiscountEligible: true,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := s.memberRepo.Create(ctx, member); err != nil {
			return fmt.Errorf("create member: %w", err)
		}
		s.logger.Info("member enrolled",
			logger.String("member_id", member.ID),
			logger.String("email", member.Email),
			logger.String("tier", string(tier)),
		)
	case err != nil:
		return fmt.Errorf("lookup member: %w", err)
	default:
		count, parseErr := strconv.Atoi(member.TotalBookings)
		if parseErr != nil {
			count = 0
		}
		member.TotalBookings = strconv.Itoa(count + 1)
		member.UpdatedAt = time.Now().UTC()
		if err := s.memberRepo.Update(ctx, member); err != nil {
			return fmt.Errorf("update member: %w", err)
		}
		s.logger.Info("member booking counter incremented",
			logger.String("member_id", member.ID),
			logger.String("total_bookings", member.TotalBookings),
		)
	}

	return nil
}

// List returns all bookings. Records persisted without a status (legacy rows)
// are defaulted to pending and the default is written back.
func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	for i, b := range bookings {
		if b.Status != "" {
			continue
		}
		migrated, err := s.bookingRepo.UpdateStatus(ctx, b.ID, domain.BookingStatusPending)
		if err != nil {
			return nil, fmt.Errorf("backfill booking status: %w", err)
		}
		bookings[i] = migrated
	}

	return bookings, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) (*domain.Booking, error) {
	target := domain.BookingStatus(status)
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %q is not a valid booking status", domain.ErrInvalidStatus, status)
	}

	booking, err := s.bookingRepo.UpdateStatus(ctx, id, target)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking status updated",
		logger.String("booking_id", id),
		logger.String("status", status),
	)
	return booking, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("booking deleted", logger.String("booking_id", id))
	return nil
}

// CalculateDiscount resolves the tier to use (explicit tier wins; otherwise
// the member record for the email, provided it is active and unexpired) and
// delegates to the pure calculator.
func (s *BookingService) CalculateDiscount(ctx context.Context, q domain.DiscountQuery) (*domain.DiscountBreakdown, error) {
	if q.Email == "" {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "email", Message: "Email is required"},
		}}
	}
	if q.EstimatedAmount != nil && *q.EstimatedAmount < 0 {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "estimatedAmount", Message: "Estimated amount must not be negative"},
		}}
	}

	var amount float64
	if q.EstimatedAmount != nil {
		amount = *q.EstimatedAmount
	}

	tier := domain.MembershipTier(q.MembershipType)
	isExisting := false
	if !tier.Valid() {
		tier = ""
		member, err := s.memberRepo.GetByEmail(ctx, q.Email)
		switch {
		case errors.Is(err, domain.ErrMemberNotFound):
		case err != nil:
			return nil, fmt.Errorf("lookup member: %w", err)
		default:
			isExisting = true
			if member.MembershipStatus == domain.MembershipStatusActive && member.ExpiryDate.After(time.Now()) {
				tier = member.MembershipType
			}
		}
	}

	d := domain.CalculateMembershipDiscount(tier, amount)
	return &domain.DiscountBreakdown{
		MembershipType:   tier,
		IsExistingMember: isExisting,
		Percentage:       d.Percentage,
		Discount:         d.Discount,
		DiscountedAmount: d.DiscountedAmount,
		OriginalAmount:   amount,
	}, nil
}

func validateBooking(input domain.BookingInput) error {
	var fields []domain.FieldError
	add := func(field, message string) {
		fields = append(fields, domain.FieldError{Field: field, Message: message})
	}

	if input.FirstName == "" {
		add("firstName", "First name is required")
	}
	if input.LastName == "" {
		add("lastName", "Last name is required")
	}
	if _, err := mail.ParseAddress(input.Email); input.Email == "" || err != nil {
		add("email", "Please enter a valid email address")
	}
	if len(input.Phone) < minPhoneLength {
		add("phone", "Please enter a valid phone number")
	}
	if len(input.Services) == 0 {
		add("services", "Please select at least one service")
	}
	if input.EventDate == "" {
		add("eventDate", "Event date is required")
	}
	if input.EventTime == "" {
		add("eventTime", "Event time is required")
	}
	if input.Location == "" {
		add("location", "Location is required")
	}
	if input.GuestCount == "" {
		add("guestCount", "Guest count is required")
	}
	if !input.TermsAccepted {
		add("termsAccepted", "You must accept the terms and conditions")
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
