package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sajid-dev/doctors-portal-api/internal/middleware"
	"github.com/sajid-dev/doctors-portal-api/internal/models"
)

// CreateBooking inserts a new appointment unless the patient already
// holds one for the same treatment on the same date. A duplicate is a
// business refusal, not a transport error: the response is 200 with
// acknowledged=false and an explanatory message.
//
// The duplicate check is read-then-insert and not atomic; two
// concurrent identical requests can both pass it.
func (h *Handler) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if booking.AppointmentDate == "" || booking.Treatment == "" || booking.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "appointmentDate, treatment and email are required"})
		return
	}

	exists, err := h.Store.Bookings.Exists(c.Request.Context(), booking.AppointmentDate, booking.Treatment, booking.Email)
	if err != nil {
		h.serverError(c, "failed to check existing bookings", err)
		return
	}
	if exists {
		c.JSON(http.StatusOK, gin.H{
			"acknowledged": false,
			"message":      fmt.Sprintf("You already have a booking on %s", booking.AppointmentDate),
		})
		return
	}

	result, err := h.Store.Bookings.Insert(c.Request.Context(), &booking)
	if err != nil {
		h.serverError(c, "failed to create booking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBookings lists the authenticated user's bookings. The email query
// parameter must match the token's email claim.
func (h *Handler) GetBookings(c *gin.Context) {
	email := c.Query("email")
	if email != middleware.ClaimEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.Store.Bookings.ByEmail(c.Request.Context(), email)
	if err != nil {
		h.serverError(c, "failed to load bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking fetches a single booking by id; an absent booking is a
// null body, not an error.
func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	booking, err := h.Store.Bookings.ByID(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "failed to load booking", err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DeleteBooking removes a booking by id.
func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.Store.Bookings.Delete(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "failed to delete booking", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
