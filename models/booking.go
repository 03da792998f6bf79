package models

import "time"

// Booking lifecycle statuses.
const (
	BookingStatusPending            = "pending"
	BookingStatusConfirmed          = "confirmed"
	BookingStatusTherapistConfirmed = "therapist_confirmed"
	BookingStatusTherapistRejected  = "therapist_rejected"
	BookingStatusCancelled          = "cancelled"
	BookingStatusRescheduled        = "rescheduled"
	BookingStatusPaid               = "paid"
	BookingStatusNoShow             = "no_show"
	BookingStatusCompleted          = "completed"
)

// Payment statuses. Independent axis from the booking status.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPartial   = "partial"
	PaymentStatusCompleted = "completed"
)

// Booking represents a single appointment between a customer and a therapist
// for one of a business's services.
type Booking struct {
	ID          string `bson:"id" json:"id"`
	CustomerID  string `bson:"customerId" json:"customerId"`
	TherapistID string `bson:"therapistId" json:"therapistId"`
	ServiceID   string `bson:"serviceId" json:"serviceId"`

	Date     time.Time `bson:"date" json:"date"`
	Time     string    `bson:"time" json:"time"`         // "HH:MM", 24-hour
	Duration int       `bson:"duration" json:"duration"` // minutes

	// Captured from the pre-update values the first time a reschedule
	// happens; never moved forward by later reschedules.
	OriginalDate *time.Time `bson:"originalDate,omitempty" json:"originalDate,omitempty"`
	OriginalTime string     `bson:"originalTime,omitempty" json:"originalTime,omitempty"`

	Status        string `bson:"status" json:"status"`
	PaymentStatus string `bson:"paymentStatus" json:"paymentStatus"`

	// Set once a therapist has acted on an admin-assigned booking.
	TherapistResponded bool `bson:"therapistResponded" json:"therapistResponded"`

	// While true the customer-facing view must mask the real status as
	// "pending". Cleared whenever the business acts on the booking.
	ResponseVisibleToBusinessOnly bool `bson:"responseVisibleToBusinessOnly" json:"responseVisibleToBusinessOnly"`

	// Audit stamps. Each is set once per action and never reset, so more
	// than one pair can coexist; consumers apply the precedence
	// cancelled > rescheduled > confirmed when rendering.
	ConfirmedBy   string     `bson:"confirmedBy,omitempty" json:"confirmedBy,omitempty"`
	ConfirmedAt   *time.Time `bson:"confirmedAt,omitempty" json:"confirmedAt,omitempty"`
	CancelledBy   string     `bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"`
	CancelledAt   *time.Time `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	RescheduledBy string     `bson:"rescheduledBy,omitempty" json:"rescheduledBy,omitempty"`
	RescheduledAt *time.Time `bson:"rescheduledAt,omitempty" json:"rescheduledAt,omitempty"`

	AssignedByAdmin bool   `bson:"assignedByAdmin" json:"assignedByAdmin"`
	AssignedByID    string `bson:"assignedById,omitempty" json:"assignedById,omitempty"`

	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DisplayStatus returns the status a customer is allowed to see.
func (b *Booking) DisplayStatus() string {
	if b.ResponseVisibleToBusinessOnly {
		return BookingStatusPending
	}
	return b.Status
}

// HasBusinessResponse reports whether the business has acted on the booking.
func (b *Booking) HasBusinessResponse() bool {
	return b.ConfirmedAt != nil || b.CancelledAt != nil || b.RescheduledAt != nil
}
