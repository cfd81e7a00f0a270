package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"slotwise/handlers"
)

// HandlerBundle groups the constructed handlers for route registration.
type HandlerBundle struct {
	Availability *handlers.AvailabilityHandler
	Reservation  *handlers.ReservationHandler
	Windows      *handlers.WindowHandler
}

// SetupCORS configures cross-origin access for the dashboard frontend.
func SetupCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))
}

// RegisterRoutes wires all endpoints onto the engine.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.GET("/health", handlers.HealthCheck)
	RegisterAvailabilityRoutes(r, hb)
}
