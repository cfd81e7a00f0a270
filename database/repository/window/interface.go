package windowRepo

import (
	"context"

	"slotwise/models"
)

// WindowRepository stores the availability windows configured per event:
// weekly recurring windows plus date-bounded overrides. The resolver
// reads the whole set for an event and applies precedence in memory.
type WindowRepository interface {
	ListByEvent(ctx context.Context, eventID string) ([]models.AvailabilityWindow, error)
	// ReplaceForEvent swaps the full window set for an event. Window
	// configuration is small and edited as a whole from the dashboard.
	ReplaceForEvent(ctx context.Context, eventID string, windows []models.AvailabilityWindow) error
}
