package therapistRepo

import (
	"time"

	"wellnest/models"
)

// TherapistRepository defines data access methods for therapist profiles.
type TherapistRepository interface {
	// GetByID returns the therapist or (nil, nil) when no document matches.
	GetByID(id string) (*models.Therapist, error)
	// AppendAssociation pushes a new business entry onto
	// associatedBusinesses. It does not check for duplicates.
	AppendAssociation(therapistID string, assoc models.BusinessAssociation) error
	// PullAssociation removes every entry matching the business. Used to
	// compensate a failed two-step registration.
	PullAssociation(therapistID, businessID string) error
	// SetAssociationStatus moves the entry matching (businessID, fromStatus)
	// to toStatus, stamping approvedAt when non-nil and clearing it
	// otherwise. Returns false when no entry matched.
	SetAssociationStatus(therapistID, businessID, fromStatus, toStatus string, approvedAt *time.Time) (bool, error)
}
