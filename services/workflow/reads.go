package workflow

import (
	"wellnest/models"

	"go.uber.org/zap"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

func normalize(q ListQuery) ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}
	return q
}

func pagination(q ListQuery, total int64) models.Pagination {
	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return models.Pagination{Page: q.Page, Limit: q.Limit, Total: total, TotalPages: totalPages}
}

// listForBusiness fetches one page of bookings belonging to the caller's
// business. The service and currency sub-objects are joined manually
// per row; the database cannot express the booking→service→business chain
// in a single populate.
func (s *DefaultBookingWorkflowService) listForBusiness(ownerID string, q ListQuery, statuses []string) (*BookingPage, error) {
	business, err := s.Businesses.GetByOwner(ownerID)
	if err != nil {
		return nil, internal(err.Error())
	}
	if business == nil {
		return nil, notFound("Business profile not found")
	}

	services, err := s.Services.ListByBusiness(business.ID)
	if err != nil {
		return nil, internal(err.Error())
	}
	if len(services) == 0 {
		return &BookingPage{Bookings: []models.PopulatedBooking{}, Pagination: pagination(q, 0)}, nil
	}

	serviceIDs := make([]string, 0, len(services))
	byID := make(map[string]*models.Service, len(services))
	for i := range services {
		serviceIDs = append(serviceIDs, services[i].ID)
		byID[services[i].ID] = &services[i]
	}

	bookings, total, err := s.Bookings.ListByServiceIDs(serviceIDs, statuses, q.Page, q.Limit)
	if err != nil {
		return nil, internal(err.Error())
	}

	rows := make([]models.PopulatedBooking, 0, len(bookings))
	for i := range bookings {
		rows = append(rows, *s.populate(&bookings[i], byID[bookings[i].ServiceID]))
	}
	return &BookingPage{Bookings: rows, Pagination: pagination(q, total)}, nil
}

// ListBookingResponses returns the business's bookings, optionally filtered
// by a single status.
func (s *DefaultBookingWorkflowService) ListBookingResponses(ownerID string, q ListQuery) (*BookingPage, error) {
	q = normalize(q)
	var statuses []string
	if q.Status != "" {
		statuses = []string{q.Status}
	}
	return s.listForBusiness(ownerID, q, statuses)
}

// ListTherapistResponses returns the bookings therapists have answered.
// Without an explicit filter it shows both confirmations and rejections.
func (s *DefaultBookingWorkflowService) ListTherapistResponses(ownerID string, q ListQuery) (*BookingPage, error) {
	q = normalize(q)
	statuses := []string{models.BookingStatusTherapistConfirmed, models.BookingStatusTherapistRejected}
	if q.Status != "" {
		statuses = []string{q.Status}
	}
	return s.listForBusiness(ownerID, q, statuses)
}

// ListBusinessResponses returns the therapist's bookings the business has
// acted on. Each row resolves its service and business with follow-up
// lookups.
func (s *DefaultBookingWorkflowService) ListBusinessResponses(therapistID string, q ListQuery) (*BookingPage, error) {
	q = normalize(q)

	bookings, total, err := s.Bookings.ListWithBusinessResponse(therapistID, q.Page, q.Limit)
	if err != nil {
		return nil, internal(err.Error())
	}

	rows := make([]models.PopulatedBooking, 0, len(bookings))
	for i := range bookings {
		service, err := s.Services.GetByID(bookings[i].ServiceID)
		if err != nil {
			s.Logger.Warn("failed to join service for booking row",
				zap.String("serviceId", bookings[i].ServiceID), zap.Error(err))
		}
		rows = append(rows, *s.populate(&bookings[i], service))
	}
	return &BookingPage{Bookings: rows, Pagination: pagination(q, total)}, nil
}

// ListCustomerBookings returns the customer's bookings with the visibility
// gate applied: while a response is business-only the row shows "pending"
// and offers reschedule as the only action.
func (s *DefaultBookingWorkflowService) ListCustomerBookings(customerID string, q ListQuery) (*CustomerPage, error) {
	q = normalize(q)

	bookings, total, err := s.Bookings.ListByCustomer(customerID, q.Page, q.Limit)
	if err != nil {
		return nil, internal(err.Error())
	}

	rows := make([]models.CustomerBooking, 0, len(bookings))
	for i := range bookings {
		service, err := s.Services.GetByID(bookings[i].ServiceID)
		if err != nil {
			s.Logger.Warn("failed to join service for booking row",
				zap.String("serviceId", bookings[i].ServiceID), zap.Error(err))
		}

		gated := bookings[i].ResponseVisibleToBusinessOnly
		row := models.CustomerBooking{
			PopulatedBooking: *s.populate(&bookings[i], service),
			Actions: models.BookingActions{
				CanConfirm:    !gated,
				CanCancel:     !gated,
				CanReschedule: true,
			},
		}
		row.Booking.Status = bookings[i].DisplayStatus()
		rows = append(rows, row)
	}
	return &CustomerPage{Bookings: rows, Pagination: pagination(q, total)}, nil
}
