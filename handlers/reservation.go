package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slotwise/services/scheduler"
	"slotwise/utils"
)

// ReservationHandler exposes the scheduler's write path.
type ReservationHandler struct {
	Scheduler scheduler.SchedulerService
}

// NewReservationHandler constructs the handler with its service dependency.
func NewReservationHandler(svc scheduler.SchedulerService) *ReservationHandler {
	return &ReservationHandler{Scheduler: svc}
}

type reservationInput struct {
	EventID        string `json:"eventId"`
	Date           string `json:"date" binding:"required"`
	Start          *int   `json:"start" binding:"required"`
	IdempotencyKey string `json:"idempotencyKey"`
	Customer       struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone"`
	} `json:"customer"`
}

// CreateReservation handles POST /api/businesses/:id/availability/reservations.
// 201 on success, 409 when another booking won the race, 400 on bad
// input, 503 when storage or the reservation lock is unavailable.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	businessID := c.Param("id")

	var input reservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	booking, err := h.Scheduler.Reserve(c.Request.Context(), scheduler.ReserveRequest{
		BusinessID:     businessID,
		EventID:        input.EventID,
		Date:           input.Date,
		Start:          *input.Start,
		IdempotencyKey: input.IdempotencyKey,
		CustomerName:   input.Customer.Name,
		CustomerEmail:  input.Customer.Email,
		CustomerPhone:  input.Customer.Phone,
	})
	if err != nil {
		respondSchedulerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// CancelBooking handles DELETE /api/businesses/:id/bookings/:bookingId.
func (h *ReservationHandler) CancelBooking(c *gin.Context) {
	businessID := c.Param("id")
	bookingID := c.Param("bookingId")

	if err := h.Scheduler.Cancel(c.Request.Context(), businessID, bookingID); err != nil {
		respondSchedulerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ListBookings handles GET /api/businesses/:id/bookings?date.
func (h *ReservationHandler) ListBookings(c *gin.Context) {
	businessID := c.Param("id")
	date := c.Query("date")

	bookings, err := h.Scheduler.ListBookings(c.Request.Context(), businessID, date)
	if err != nil {
		respondSchedulerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
