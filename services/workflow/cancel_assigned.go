package workflow

import (
	"time"

	"wellnest/models"

	"go.uber.org/zap"
)

// CancelAssignedBooking cancels an admin-assigned booking on behalf of the
// business, releases the matching availability slot and fires an async
// cancellation notification. Slot release and notification are best-effort;
// neither failure reaches the client.
func (s *DefaultBookingWorkflowService) CancelAssignedBooking(ownerID, bookingID string) (*models.PopulatedBooking, error) {
	_, booking, service, err := s.authorize(ownerID, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.AssignedByAdmin {
		return nil, forbidden("Only admin-assigned bookings can be cancelled here")
	}
	if !statusIn(booking.Status,
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusRescheduled) {
		return nil, forbidden("Booking cannot be cancelled in its current status")
	}

	now := time.Now().UTC()
	booking.Status = models.BookingStatusCancelled
	booking.CancelledBy = ownerID
	booking.CancelledAt = &now
	// A business-initiated cancellation counts as the therapist's response.
	booking.TherapistResponded = true
	booking.ResponseVisibleToBusinessOnly = false

	if err := s.Bookings.Update(booking); err != nil {
		return nil, internal("Failed to cancel booking: " + err.Error())
	}

	s.releaseSlot(booking)
	s.notifyAsync(booking, s.Notifier.BookingCancelled)

	return s.populate(booking, service), nil
}

// releaseSlot flips the availability slot containing the booking's time back
// to available. Missing slots are silently skipped; at most one slot is
// mutated.
func (s *DefaultBookingWorkflowService) releaseSlot(booking *models.Booking) {
	slot, err := s.Availability.FindSlotCovering(booking.TherapistID, booking.Date, booking.Time)
	if err != nil {
		s.Logger.Warn("failed to look up availability slot",
			zap.String("bookingId", booking.ID), zap.Error(err))
		return
	}
	if slot == nil {
		return
	}
	if err := s.Availability.SetStatus(slot.ID, models.SlotStatusAvailable); err != nil {
		s.Logger.Warn("failed to release availability slot",
			zap.String("slotId", slot.ID),
			zap.String("bookingId", booking.ID),
			zap.Error(err))
	}
}
