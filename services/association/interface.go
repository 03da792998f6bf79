package association

import (
	"time"

	"wellnest/models"
)

// Association actions a business may take on a pending request.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// Decision is the result of a business acting on a pending request.
type Decision struct {
	TherapistID string    `json:"therapistId"`
	BusinessID  string    `json:"businessId"`
	Action      string    `json:"action"`
	Timestamp   time.Time `json:"timestamp"`
}

// BusinessRequestView is a therapist-side association entry with the
// business joined in.
type BusinessRequestView struct {
	models.BusinessAssociation
	Business *models.BusinessSummary `json:"business,omitempty"`
}

// AssociationService maintains the bidirectional therapist/business links.
// The two mirrored arrays are independently mutated; the second write is
// compensated by undoing the first when it fails.
type AssociationService interface {
	// RequestBusiness registers a pending link on both sides.
	RequestBusiness(therapistID, businessID string) (*models.BusinessAssociation, error)
	// RespondToTherapist approves or rejects a pending link on both sides.
	RespondToTherapist(ownerID, therapistID, action string) (*Decision, error)
	// ListRequests returns the therapist's association entries, optionally
	// filtered by status, with the business joined per row.
	ListRequests(therapistID, status string) ([]BusinessRequestView, error)
	// ListApprovedBusinesses returns only the approved associations.
	ListApprovedBusinesses(therapistID string) ([]BusinessRequestView, error)
}
