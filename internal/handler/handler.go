package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Daudahmd/shisha-cafe/internal/domain"
	"github.com/Daudahmd/shisha-cafe/internal/handler/dto"
)

type BookingSvc interface {
	Submit(ctx context.Context, input domain.BookingInput) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	CalculateDiscount(ctx context.Context, q domain.DiscountQuery) (*domain.DiscountBreakdown, error)
}

type MemberSvc interface {
	List(ctx context.Context) ([]*domain.Member, error)
	Get(ctx context.Context, id string) (*domain.Member, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Member, error)
	Renew(ctx context.Context, id string) (*domain.Member, error)
}

type Handler struct {
	bookingService BookingSvc
	memberService  MemberSvc
}

func NewHandler(bookingService BookingSvc, memberService MemberSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		memberService:  memberService,
	}
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.BookingInput{
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Email:               req.Email,
		Phone:               req.Phone,
		Instagram:           req.Instagram,
		Services:            req.Services,
		EventDate:           req.EventDate,
		EventTime:           req.EventTime,
		Location:            req.Location,
		GuestCount:          req.GuestCount,
		EventType:           req.EventType,
		FlavourPreferences:  req.FlavourPreferences,
		SpecialRequirements: req.SpecialRequirements,
		Budget:              req.Budget,
		SelectedPackage:     req.SelectedPackage,
		SelectedMembership:  req.SelectedMembership,
		TermsAccepted:       req.TermsAccepted,
	}

	booking, err := h.bookingService.Submit(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingSuccessResponse{
		Success: true,
		Booking: dto.ToBookingResponse(booking),
	})
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Booking not found"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	id := c.Param("id")

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookingSuccessResponse{
		Success: true,
		Booking: dto.ToBookingResponse(booking),
	})
}

func (h *Handler) DeleteBooking(c *ginext.Context) {
	id := c.Param("id")

	if err := h.bookingService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Booking deleted successfully",
	})
}

func (h *Handler) CalculateDiscount(c *ginext.Context) {
	var req dto.CalculateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	breakdown, err := h.bookingService.CalculateDiscount(c.Request.Context(), domain.DiscountQuery{
		Email:           req.Email,
		MembershipType:  req.MembershipType,
		EstimatedAmount: req.EstimatedAmount,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDiscountResponse(breakdown))
}

// Members

func (h *Handler) ListMembers(c *ginext.Context) {
	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToMemberResponse(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMember(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Member not found"})
		return
	}

	member, err := h.memberService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *Handler) UpdateMemberStatus(c *ginext.Context) {
	id := c.Param("id")

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	member, err := h.memberService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MemberSuccessResponse{
		Success: true,
		Member:  dto.ToMemberResponse(member),
	})
}

func (h *Handler) RenewMembership(c *ginext.Context) {
	id := c.Param("id")

	member, err := h.memberService.Renew(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MemberSuccessResponse{
		Success: true,
		Member:  dto.ToMemberResponse(member),
		Message: "Membership renewed successfully",
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Validation failed",
			Details: validationErr.Fields,
		})

	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Booking not found"})

	case errors.Is(err, domain.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Member not found"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}
