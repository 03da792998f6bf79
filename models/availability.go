package models

import "time"

// Availability slot statuses.
const (
	SlotStatusAvailable   = "available"
	SlotStatusBooked      = "booked"
	SlotStatusUnavailable = "unavailable"
	SlotStatusOnLeave     = "on-leave"
)

// TherapistAvailability is a bookable time slot. It is independent of
// Booking and correlated only by therapist plus overlapping date/time
// range at runtime.
type TherapistAvailability struct {
	ID          string    `bson:"id" json:"id"`
	TherapistID string    `bson:"therapistId" json:"therapistId"`
	Date        time.Time `bson:"date" json:"date"`
	StartTime   string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime     string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Covers reports whether the slot's time range contains the given "HH:MM"
// time. Times compare lexicographically in this format.
func (s *TherapistAvailability) Covers(at string) bool {
	return s.StartTime <= at && s.EndTime > at
}
