package notification

import (
	"context"

	"go.uber.org/zap"

	"slotwise/models"
	"slotwise/utils"
)

// NotificationService delivers booking lifecycle messages to customers.
// Transport (mail, SMS, push) is pluggable; the scheduler only sees this
// interface.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking) error
}

// LogNotificationService records notifications in the application log.
// It stands in wherever no delivery channel is configured.
type LogNotificationService struct{}

func (s *LogNotificationService) SendBookingConfirmation(_ context.Context, booking models.Booking) error {
	utils.GetLogger().Info("booking confirmation",
		zap.String("bookingID", booking.ID),
		zap.String("eventID", booking.EventID),
		zap.String("date", booking.Date),
		zap.Int("start", booking.Start),
		zap.String("customer", booking.CustomerEmail),
	)
	return nil
}
