package availabilityRepo

import (
	"time"

	"wellnest/models"
)

// AvailabilityRepository defines data access methods for therapist
// availability slots.
type AvailabilityRepository interface {
	// FindSlotCovering returns the first slot of the therapist on the given
	// day whose [startTime, endTime) range contains the "HH:MM" time, or
	// (nil, nil) when none matches.
	FindSlotCovering(therapistID string, date time.Time, at string) (*models.TherapistAvailability, error)
	// SetStatus updates the status of a single slot.
	SetStatus(id, status string) error
}
