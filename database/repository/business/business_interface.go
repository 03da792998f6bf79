package businessRepo

import (
	"time"

	"wellnest/models"
)

// BusinessRepository defines data access methods for business profiles.
type BusinessRepository interface {
	// GetByID returns the business or (nil, nil) when no document matches.
	GetByID(id string) (*models.Business, error)
	// GetByOwner returns the business owned by the given account or
	// (nil, nil) when none exists.
	GetByOwner(ownerID string) (*models.Business, error)
	// AppendTherapist pushes a new therapist entry onto the therapists
	// array. It does not check for duplicates.
	AppendTherapist(businessID string, entry models.TherapistAssociation) error
	// PullTherapist removes every entry matching the therapist.
	PullTherapist(businessID, therapistID string) error
	// SetTherapistStatus moves the entry matching (therapistID, fromStatus)
	// to toStatus, stamping joinedAt when non-nil and clearing it otherwise.
	// Returns false when no entry matched.
	SetTherapistStatus(businessID, therapistID, fromStatus, toStatus string, joinedAt *time.Time) (bool, error)
}
