package notification

import (
	"context"

	"wellnest/models"
)

// NotificationService defines methods for telling the involved parties that
// a booking changed. Delivery is best-effort; callers never fail a request
// on a notification error.
type NotificationService interface {
	BookingCancelled(ctx context.Context, booking *models.Booking) error
	BookingRescheduled(ctx context.Context, booking *models.Booking) error
}
