package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"slotwise/services/scheduler"
	"slotwise/utils"
)

// AvailabilityHandler exposes the scheduler's read path.
type AvailabilityHandler struct {
	Scheduler scheduler.SchedulerService
}

// NewAvailabilityHandler constructs the handler with its service dependency.
func NewAvailabilityHandler(svc scheduler.SchedulerService) *AvailabilityHandler {
	return &AvailabilityHandler{Scheduler: svc}
}

// GetOverview handles
// GET /api/businesses/:id/availability/overview?startDate&endDate[&eventId][&limit]
func (h *AvailabilityHandler) GetOverview(c *gin.Context) {
	businessID := c.Param("id")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	eventID := c.Query("eventId")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.JSONError(c, http.StatusBadRequest, "validation", "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	dates, err := h.Scheduler.Overview(c.Request.Context(), businessID, eventID, startDate, endDate, limit)
	if err != nil {
		respondSchedulerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableDates": dates})
}

// GetSlots handles
// GET /api/businesses/:id/availability/slots?date[&eventId][&duration]
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	businessID := c.Param("id")
	date := c.Query("date")
	eventID := c.Query("eventId")

	duration := 0
	if raw := c.Query("duration"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "validation", "duration must be a positive integer")
			return
		}
		duration = n
	}

	slots, err := h.Scheduler.Slots(c.Request.Context(), businessID, eventID, date, duration)
	if err != nil {
		respondSchedulerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"availableSlots": slots})
}

// GetNextAvailable handles
// GET /api/businesses/:id/availability/next?startDate&endDate[&eventId]
func (h *AvailabilityHandler) GetNextAvailable(c *gin.Context) {
	businessID := c.Param("id")
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	eventID := c.Query("eventId")

	next, err := h.Scheduler.NextAvailable(c.Request.Context(), businessID, eventID, startDate, endDate)
	if err != nil {
		respondSchedulerError(c, err)
		return
	}
	if next == nil {
		c.JSON(http.StatusOK, gin.H{"nextAvailable": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"nextAvailable": next})
}

// respondSchedulerError maps the scheduler error taxonomy onto HTTP.
// Conflicts are an expected outcome of racing clients, not a fault.
func respondSchedulerError(c *gin.Context, err error) {
	switch {
	case scheduler.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, "validation", err.Error())
	case scheduler.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": "conflict"})
	case scheduler.IsUnavailable(err):
		utils.JSONError(c, http.StatusServiceUnavailable, "unavailable", "temporarily unable to compute availability, retry with backoff")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
	}
}
