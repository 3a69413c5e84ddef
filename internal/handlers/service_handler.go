package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetServices lists the treatment catalog with each service's slots
// reduced to the ones still free on the requested date.
func (h *Handler) GetServices(c *gin.Context) {
	date := c.Query("date")

	services, err := h.Store.Services.All(c.Request.Context())
	if err != nil {
		h.serverError(c, "failed to load services", err)
		return
	}
	booked, err := h.Store.Bookings.ByDate(c.Request.Context(), date)
	if err != nil {
		h.serverError(c, "failed to load bookings", err)
		return
	}

	bookedByTreatment := map[string][]string{}
	for _, b := range booked {
		bookedByTreatment[b.Treatment] = append(bookedByTreatment[b.Treatment], b.Slot)
	}
	for i := range services {
		services[i].Slots = remainingSlots(services[i].Slots, bookedByTreatment[services[i].Name])
	}

	c.JSON(http.StatusOK, services)
}

// remainingSlots filters booked slots out of the catalog list,
// preserving the catalog order.
func remainingSlots(slots, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, s := range booked {
		taken[s] = struct{}{}
	}
	remaining := make([]string, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; !ok {
			remaining = append(remaining, s)
		}
	}
	return remaining
}

// GetAppointmentSpecialties returns the catalog projected to names,
// for the specialty picker.
func (h *Handler) GetAppointmentSpecialties(c *gin.Context) {
	names, err := h.Store.Services.Names(c.Request.Context())
	if err != nil {
		h.serverError(c, "failed to load specialties", err)
		return
	}
	c.JSON(http.StatusOK, names)
}
