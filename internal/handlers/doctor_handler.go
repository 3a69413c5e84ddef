package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sajid-dev/doctors-portal-api/internal/models"
)

// Doctor routes are admin-only; the auth and admin guards run as
// middleware before these handlers.

func (h *Handler) GetDoctors(c *gin.Context) {
	doctors, err := h.Store.Doctors.All(c.Request.Context())
	if err != nil {
		h.serverError(c, "failed to load doctors", err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	result, err := h.Store.Doctors.Insert(c.Request.Context(), &doctor)
	if err != nil {
		h.serverError(c, "failed to create doctor", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	result, err := h.Store.Doctors.Delete(c.Request.Context(), id)
	if err != nil {
		h.serverError(c, "failed to delete doctor", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
