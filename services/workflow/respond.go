package workflow

import (
	"context"
	"regexp"
	"time"

	"wellnest/models"

	"go.uber.org/zap"
)

// Strict 24-hour "HH:MM".
var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

const dateLayout = "2006-01-02"

// Statuses counting as evidence of a prior therapist response. Everything
// except completed and cancelled passes, which makes the check nearly
// vacuous; it is kept as the source system had it.
var therapistRespondedStatuses = []string{
	models.BookingStatusTherapistConfirmed,
	models.BookingStatusTherapistRejected,
	models.BookingStatusConfirmed,
	models.BookingStatusPaid,
	models.BookingStatusPending,
	models.BookingStatusNoShow,
	models.BookingStatusRescheduled,
}

// RespondToBooking applies a business confirm, cancel or reschedule.
//
// Confirm preserves the current status when the booking is paid or partially
// paid, stamping only the audit pair; cancel always moves to cancelled;
// reschedule moves to confirmed and captures originalDate/originalTime from
// the pre-update values on the first reschedule only. Every action clears
// the customer visibility gate.
func (s *DefaultBookingWorkflowService) RespondToBooking(ownerID, bookingID string, req ResponseRequest) (*models.PopulatedBooking, error) {
	if !statusIn(req.Action, ActionConfirm, ActionCancel, ActionReschedule) {
		return nil, badRequest("Invalid action, expected 'confirm', 'cancel' or 'reschedule'")
	}

	// Reschedule input is validated before any read or write happens.
	var newDate time.Time
	if req.Action == ActionReschedule {
		if req.NewDate == "" || req.NewTime == "" {
			return nil, badRequest("newDate and newTime are required for a reschedule")
		}
		parsed, err := time.Parse(dateLayout, req.NewDate)
		if err != nil {
			return nil, badRequest("Invalid date format")
		}
		if !timePattern.MatchString(req.NewTime) {
			return nil, badRequest("Invalid time format")
		}
		newDate = parsed
	}

	_, booking, service, err := s.authorize(ownerID, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.BookingStatusCompleted {
		return nil, forbidden("Completed bookings cannot be modified")
	}
	// A cancelled booking blocks confirm and cancel but may still be
	// rescheduled.
	if booking.Status == models.BookingStatusCancelled && req.Action != ActionReschedule {
		return nil, forbidden("Cancelled bookings can only be rescheduled")
	}
	if req.Action != ActionReschedule && !statusIn(booking.Status, therapistRespondedStatuses...) {
		return nil, forbidden("Booking has no therapist response yet")
	}

	now := time.Now().UTC()
	booking.ResponseVisibleToBusinessOnly = false

	switch req.Action {
	case ActionConfirm:
		booking.ConfirmedBy = ownerID
		booking.ConfirmedAt = &now
		// Paid and partially-paid bookings keep their status; only the
		// audit stamp and the visibility gate change.
		if booking.Status != models.BookingStatusPaid && booking.PaymentStatus != models.PaymentStatusPartial {
			booking.Status = models.BookingStatusConfirmed
		}
	case ActionCancel:
		booking.Status = models.BookingStatusCancelled
		booking.CancelledBy = ownerID
		booking.CancelledAt = &now
	case ActionReschedule:
		if booking.OriginalDate == nil {
			prevDate := booking.Date
			booking.OriginalDate = &prevDate
			booking.OriginalTime = booking.Time
		}
		booking.Date = newDate
		booking.Time = req.NewTime
		booking.Status = models.BookingStatusConfirmed
		booking.RescheduledBy = ownerID
		booking.RescheduledAt = &now
	}
	if req.Notes != "" {
		booking.Notes = req.Notes
	}

	if err := s.Bookings.Update(booking); err != nil {
		return nil, internal("Failed to update booking: " + err.Error())
	}

	if req.Action == ActionReschedule {
		s.notifyAsync(booking, s.Notifier.BookingRescheduled)
	}

	return s.populate(booking, service), nil
}

// TherapistRespond records a therapist's confirm or cancel on an
// admin-assigned booking. The result stays hidden from the customer until
// the business signs off.
func (s *DefaultBookingWorkflowService) TherapistRespond(therapistID, bookingID, action string) (*models.Booking, error) {
	if !statusIn(action, ActionConfirm, ActionCancel) {
		return nil, badRequest("Invalid action, expected 'confirm' or 'cancel'")
	}

	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, internal(err.Error())
	}
	if booking == nil {
		return nil, notFound("Booking not found")
	}
	if booking.TherapistID != therapistID {
		return nil, forbidden("You are not assigned to this booking")
	}
	if !booking.AssignedByAdmin {
		return nil, forbidden("Only admin-assigned bookings can be responded to")
	}
	if booking.Status != models.BookingStatusPending {
		return nil, forbidden("Booking has already been responded to")
	}

	if action == ActionConfirm {
		booking.Status = models.BookingStatusTherapistConfirmed
	} else {
		booking.Status = models.BookingStatusTherapistRejected
	}
	booking.TherapistResponded = true
	booking.ResponseVisibleToBusinessOnly = true

	if err := s.Bookings.Update(booking); err != nil {
		return nil, internal("Failed to update booking: " + err.Error())
	}
	return booking, nil
}

// notifyAsync dispatches a notification without blocking the request.
// Failures are logged and swallowed.
func (s *DefaultBookingWorkflowService) notifyAsync(booking *models.Booking, send func(context.Context, *models.Booking) error) {
	snapshot := *booking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := send(ctx, &snapshot); err != nil {
			s.Logger.Warn("booking notification failed",
				zap.String("bookingId", snapshot.ID), zap.Error(err))
		}
	}()
}
