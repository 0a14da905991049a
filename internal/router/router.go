package router

import (
	"net/http"
	"time"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	DeleteBooking(c *ginext.Context)
	CalculateDiscount(c *ginext.Context)
	ListMembers(c *ginext.Context)
	GetMember(c *ginext.Context)
	UpdateMemberStatus(c *ginext.Context)
	RenewMembership(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings", h.ListBookings)
		api.POST("/bookings/calculate-discount", h.CalculateDiscount)
		api.GET("/bookings/:id", h.GetBooking)
		api.PUT("/bookings/:id/status", h.UpdateBookingStatus)
		api.DELETE("/bookings/:id", h.DeleteBooking)

		// Members
		api.GET("/members", h.ListMembers)
		api.GET("/members/:id", h.GetMember)
		api.PUT("/members/:id/status", h.UpdateMemberStatus)
		api.POST("/members/:id/renew", h.RenewMembership)
	}

	api.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	return router
}
