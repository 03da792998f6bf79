package workflow

import (
	"testing"

	"wellnest/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondConfirm(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusTherapistConfirmed, func(b *models.Booking) {
		b.ResponseVisibleToBusinessOnly = true
	})

	row, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{Action: ActionConfirm})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, row.Status)
	assert.Equal(t, "own-1", row.ConfirmedBy)
	require.NotNil(t, row.ConfirmedAt)
	assert.False(t, row.ResponseVisibleToBusinessOnly)

	require.NotNil(t, row.Business)
	assert.Equal(t, "USD", row.Business.Currency.Code)
}

func TestRespondConfirmPreservesPaidStatus(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusPaid, func(b *models.Booking) {
		b.PaymentStatus = models.PaymentStatusCompleted
		b.ResponseVisibleToBusinessOnly = true
	})

	row, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{Action: ActionConfirm})
	require.NoError(t, err)

	// Status and payment status stay untouched; only the stamp and the
	// gate change.
	assert.Equal(t, models.BookingStatusPaid, row.Status)
	assert.Equal(t, models.PaymentStatusCompleted, row.PaymentStatus)
	assert.False(t, row.ResponseVisibleToBusinessOnly)
	require.NotNil(t, row.ConfirmedAt)
}

func TestRespondConfirmPreservesPartialPayment(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusTherapistConfirmed, func(b *models.Booking) {
		b.PaymentStatus = models.PaymentStatusPartial
	})

	row, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{Action: ActionConfirm})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusTherapistConfirmed, row.Status)
	assert.Equal(t, models.PaymentStatusPartial, row.PaymentStatus)
}

func TestRespondCancel(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusConfirmed)

	row, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{Action: ActionCancel})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusCancelled, row.Status)
	assert.Equal(t, "own-1", row.CancelledBy)
	require.NotNil(t, row.CancelledAt)
}

func TestRespondRescheduleCapturesOriginalOnce(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusTherapistConfirmed)

	row, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{
		Action: ActionReschedule, NewDate: "2025-06-01", NewTime: "14:30",
	})
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusConfirmed, row.Status)
	assert.Equal(t, day("2025-06-01"), row.Date)
	assert.Equal(t, "14:30", row.Time)
	require.NotNil(t, row.OriginalDate)
	assert.Equal(t, day("2025-05-10"), *row.OriginalDate)
	assert.Equal(t, "10:00", row.OriginalTime)
	require.NotNil(t, row.RescheduledAt)

	// A second reschedule moves date/time but not the originals.
	row, err = fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{
		Action: ActionReschedule, NewDate: "2025-06-15", NewTime: "09:00",
	})
	require.NoError(t, err)
	assert.Equal(t, day("2025-06-15"), row.Date)
	assert.Equal(t, "09:00", row.Time)
	assert.Equal(t, day("2025-05-10"), *row.OriginalDate)
	assert.Equal(t, "10:00", row.OriginalTime)
}

func TestRespondRescheduleInvalidTime(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusTherapistConfirmed)

	for _, bad := range []string{"25:00", "9:00", "14:60", "noon"} {
		_, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{
			Action: ActionReschedule, NewDate: "2025-06-01", NewTime: bad,
		})
		require.Error(t, err, bad)
		assert.Equal(t, 400, statusOf(err))
		assert.Contains(t, err.Error(), "Invalid time format")
	}
	// Validation rejects before any write happens.
	assert.Equal(t, 0, fx.bookings.updates)
}

func TestRespondRescheduleInvalidDate(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusTherapistConfirmed)

	_, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{
		Action: ActionReschedule, NewDate: "01-06-2025", NewTime: "14:30",
	})
	require.Error(t, err)
	assert.Equal(t, 400, statusOf(err))
	assert.Equal(t, 0, fx.bookings.updates)
}

func TestRespondInvalidAction(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusTherapistConfirmed)

	_, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{Action: "approve"})
	require.Error(t, err)
	assert.Equal(t, 400, statusOf(err))
}

func TestRespondCompletedBlocked(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusCompleted)

	for _, action := range []string{ActionConfirm, ActionCancel} {
		_, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{Action: action})
		require.Error(t, err, action)
		assert.Equal(t, 403, statusOf(err))
	}
	_, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{
		Action: ActionReschedule, NewDate: "2025-06-01", NewTime: "14:30",
	})
	require.Error(t, err)
	assert.Equal(t, 403, statusOf(err))
}

func TestRespondCancelledAllowsOnlyReschedule(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusCancelled)

	_, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{Action: ActionConfirm})
	require.Error(t, err)
	assert.Equal(t, 403, statusOf(err))

	_, err = fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{Action: ActionCancel})
	require.Error(t, err)
	assert.Equal(t, 403, statusOf(err))

	// A cancelled booking may still be rescheduled.
	row, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{
		Action: ActionReschedule, NewDate: "2025-06-01", NewTime: "14:30",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, row.Status)
}

func TestRespondOwnershipEnforced(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusTherapistConfirmed, func(b *models.Booking) {
		b.ServiceID = "svc-2" // belongs to biz-2
	})

	_, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{Action: ActionConfirm})
	require.Error(t, err)
	assert.Equal(t, 403, statusOf(err))
}

func TestRespondBookingNotFound(t *testing.T) {
	fx := newFixture()

	_, err := fx.svc.RespondToBooking("own-1", "bk-missing", ResponseRequest{Action: ActionConfirm})
	require.Error(t, err)
	assert.Equal(t, 404, statusOf(err))
}

func TestRespondNotesRecorded(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusTherapistConfirmed)

	row, err := fx.svc.RespondToBooking("own-1", "bk-1", ResponseRequest{
		Action: ActionConfirm, Notes: "bring own towel",
	})
	require.NoError(t, err)
	assert.Equal(t, "bring own towel", row.Notes)
}

func TestTherapistRespondConfirm(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusPending, func(b *models.Booking) {
		b.AssignedByAdmin = true
	})

	booking, err := fx.svc.TherapistRespond("ther-1", "bk-1", ActionConfirm)
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusTherapistConfirmed, booking.Status)
	assert.True(t, booking.TherapistResponded)
	// The response stays hidden from the customer until the business acts.
	assert.True(t, booking.ResponseVisibleToBusinessOnly)
}

func TestTherapistRespondCancel(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-1", models.BookingStatusPending, func(b *models.Booking) {
		b.AssignedByAdmin = true
	})

	booking, err := fx.svc.TherapistRespond("ther-1", "bk-1", ActionCancel)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusTherapistRejected, booking.Status)
}

func TestTherapistRespondGuards(t *testing.T) {
	fx := newFixture()
	fx.seedBooking("bk-assigned", models.BookingStatusPending, func(b *models.Booking) {
		b.AssignedByAdmin = true
	})
	fx.seedBooking("bk-organic", models.BookingStatusPending)
	fx.seedBooking("bk-done", models.BookingStatusTherapistConfirmed, func(b *models.Booking) {
		b.AssignedByAdmin = true
	})

	// Wrong therapist.
	_, err := fx.svc.TherapistRespond("ther-2", "bk-assigned", ActionConfirm)
	require.Error(t, err)
	assert.Equal(t, 403, statusOf(err))

	// Not admin-assigned.
	_, err = fx.svc.TherapistRespond("ther-1", "bk-organic", ActionConfirm)
	require.Error(t, err)
	assert.Equal(t, 403, statusOf(err))

	// Already responded.
	_, err = fx.svc.TherapistRespond("ther-1", "bk-done", ActionConfirm)
	require.Error(t, err)
	assert.Equal(t, 403, statusOf(err))

	// Invalid action.
	_, err = fx.svc.TherapistRespond("ther-1", "bk-assigned", "reschedule")
	require.Error(t, err)
	assert.Equal(t, 400, statusOf(err))
}
