package notification

import (
	"context"

	"wellnest/models"

	"go.uber.org/zap"
)

// DefaultNotificationService records booking events in the structured log.
// The actual push/email backend lives behind this interface and is swapped
// in at wiring time.
type DefaultNotificationService struct {
	Logger *zap.Logger
}

func NewDefaultNotificationService(logger *zap.Logger) *DefaultNotificationService {
	return &DefaultNotificationService{Logger: logger}
}

func (s *DefaultNotificationService) BookingCancelled(ctx context.Context, booking *models.Booking) error {
	s.Logger.Info("booking cancelled notification",
		zap.String("bookingId", booking.ID),
		zap.String("customerId", booking.CustomerID),
		zap.String("therapistId", booking.TherapistID),
	)
	return nil
}

func (s *DefaultNotificationService) BookingRescheduled(ctx context.Context, booking *models.Booking) error {
	s.Logger.Info("booking rescheduled notification",
		zap.String("bookingId", booking.ID),
		zap.String("customerId", booking.CustomerID),
		zap.String("date", booking.Date.Format("2006-01-02")),
		zap.String("time", booking.Time),
	)
	return nil
}
