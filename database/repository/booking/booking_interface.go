package bookingRepo

import "wellnest/models"

// BookingRepository defines data access methods for bookings.
type BookingRepository interface {
	// GetByID returns the booking or (nil, nil) when no document matches.
	GetByID(id string) (*models.Booking, error)
	// Create inserts a new booking document.
	Create(booking *models.Booking) error
	// Update replaces the stored fields of an existing booking.
	Update(booking *models.Booking) error
	// ListByServiceIDs returns a page of bookings whose service is in the
	// given set, newest first, optionally filtered by status.
	ListByServiceIDs(serviceIDs []string, statuses []string, page, limit int) ([]models.Booking, int64, error)
	// ListByCustomer returns a page of a customer's bookings, newest first.
	ListByCustomer(customerID string, page, limit int) ([]models.Booking, int64, error)
	// ListWithBusinessResponse returns a page of a therapist's bookings the
	// business has acted on (confirmed, cancelled or rescheduled).
	ListWithBusinessResponse(therapistID string, page, limit int) ([]models.Booking, int64, error)
}
