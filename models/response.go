package models

// Pagination describes an offset-paginated listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// PopulatedBooking is a booking row with its manually-joined service and
// business (currency) sub-objects.
type PopulatedBooking struct {
	Booking
	Service  *Service         `json:"service,omitempty"`
	Business *BusinessSummary `json:"business,omitempty"`
}

// BookingActions tells a customer UI which actions it may offer for a row.
type BookingActions struct {
	CanConfirm    bool `json:"canConfirm"`
	CanCancel     bool `json:"canCancel"`
	CanReschedule bool `json:"canReschedule"`
}

// CustomerBooking is a customer-facing booking row with the visibility gate
// already applied to its status.
type CustomerBooking struct {
	PopulatedBooking
	Actions BookingActions `json:"actions"`
}
