package workflow

import "wellnest/models"

// Actions a business may take on a booking response.
const (
	ActionConfirm    = "confirm"
	ActionCancel     = "cancel"
	ActionReschedule = "reschedule"
)

// ResponseRequest is the body of a business response to a booking.
type ResponseRequest struct {
	Action  string `json:"action"`
	NewDate string `json:"newDate,omitempty"` // "YYYY-MM-DD", reschedule only
	NewTime string `json:"newTime,omitempty"` // "HH:MM", reschedule only
	Notes   string `json:"notes,omitempty"`
}

// ListQuery carries the offset-pagination and status filter of a listing.
type ListQuery struct {
	Page   int
	Limit  int
	Status string
}

// BookingPage is one page of populated booking rows.
type BookingPage struct {
	Bookings   []models.PopulatedBooking `json:"bookings"`
	Pagination models.Pagination         `json:"pagination"`
}

// CustomerPage is one page of customer-facing booking rows with the
// visibility gate applied.
type CustomerPage struct {
	Bookings   []models.CustomerBooking `json:"bookings"`
	Pagination models.Pagination        `json:"pagination"`
}

// BookingWorkflowService drives the booking status transitions and the
// per-role booking projections.
type BookingWorkflowService interface {
	// RespondToBooking applies a business confirm/cancel/reschedule to a
	// booking owned by the caller's business.
	RespondToBooking(ownerID, bookingID string, req ResponseRequest) (*models.PopulatedBooking, error)
	// CancelAssignedBooking cancels an admin-assigned booking, releases the
	// matching availability slot and fires an async notification.
	CancelAssignedBooking(ownerID, bookingID string) (*models.PopulatedBooking, error)
	// TherapistRespond records a therapist's confirm/cancel on an
	// admin-assigned booking, raising the visibility gate.
	TherapistRespond(therapistID, bookingID, action string) (*models.Booking, error)

	ListBookingResponses(ownerID string, q ListQuery) (*BookingPage, error)
	ListTherapistResponses(ownerID string, q ListQuery) (*BookingPage, error)
	ListBusinessResponses(therapistID string, q ListQuery) (*BookingPage, error)
	ListCustomerBookings(customerID string, q ListQuery) (*CustomerPage, error)
}
