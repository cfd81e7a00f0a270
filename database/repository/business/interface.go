package businessRepo

import (
	"context"

	"slotwise/models"
)

// BusinessRepository provides read access to tenant records. The
// scheduler needs the business mainly for its timezone.
type BusinessRepository interface {
	GetByID(ctx context.Context, businessID string) (*models.Business, error)
}
