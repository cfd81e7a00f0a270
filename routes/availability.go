package routes

import (
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers all endpoints of the scheduling boundary.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	biz := r.Group("/api/businesses/:id")
	{
		availability := biz.Group("/availability")
		availability.GET("/overview", hb.Availability.GetOverview)
		availability.GET("/slots", hb.Availability.GetSlots)
		availability.GET("/next", hb.Availability.GetNextAvailable)
		availability.POST("/reservations", hb.Reservation.CreateReservation)

		biz.GET("/bookings", hb.Reservation.ListBookings)
		biz.DELETE("/bookings/:bookingId", hb.Reservation.CancelBooking)

		biz.GET("/events/:eventId/windows", hb.Windows.GetEventWindows)
		biz.PUT("/events/:eventId/windows", hb.Windows.SetEventWindows)
	}
}
