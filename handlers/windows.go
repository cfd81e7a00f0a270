package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slotwise/models"
	"slotwise/services/scheduler"
	"slotwise/utils"
)

// WindowHandler manages the availability-window configuration of an event.
type WindowHandler struct {
	Scheduler scheduler.SchedulerService
}

// NewWindowHandler constructs the handler with its service dependency.
func NewWindowHandler(svc scheduler.SchedulerService) *WindowHandler {
	return &WindowHandler{Scheduler: svc}
}

// GetEventWindows handles GET /api/businesses/:id/events/:eventId/windows.
func (h *WindowHandler) GetEventWindows(c *gin.Context) {
	businessID := c.Param("id")
	eventID := c.Param("eventId")

	windows, err := h.Scheduler.EventWindows(c.Request.Context(), businessID, eventID)
	if err != nil {
		respondSchedulerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"windows": windows})
}

type setWindowsInput struct {
	Windows []models.AvailabilityWindow `json:"windows" binding:"required"`
}

// SetEventWindows handles PUT /api/businesses/:id/events/:eventId/windows,
// replacing the full window set for the event.
func (h *WindowHandler) SetEventWindows(c *gin.Context) {
	businessID := c.Param("id")
	eventID := c.Param("eventId")

	var input setWindowsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	if err := h.Scheduler.SetEventWindows(c.Request.Context(), businessID, eventID, input.Windows); err != nil {
		respondSchedulerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated", "count": len(input.Windows)})
}
