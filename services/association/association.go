package association

import (
	"time"

	businessRepo "wellnest/database/repository/business"
	therapistRepo "wellnest/database/repository/therapist"
	"wellnest/models"

	"go.uber.org/zap"
)

// DefaultAssociationService is the production implementation.
type DefaultAssociationService struct {
	Therapists therapistRepo.TherapistRepository
	Businesses businessRepo.BusinessRepository
	Logger     *zap.Logger
}

// RequestBusiness appends a pending entry to the therapist's
// associatedBusinesses, then mirrors it onto the business's therapists
// array. If the mirror write fails the therapist-side entry is pulled
// again. A crash between the two writes leaves the registry inconsistent;
// there is no transaction boundary here.
func (s *DefaultAssociationService) RequestBusiness(therapistID, businessID string) (*models.BusinessAssociation, error) {
	if businessID == "" {
		return nil, badRequest("businessId is required")
	}

	therapist, err := s.Therapists.GetByID(therapistID)
	if err != nil {
		return nil, internal(err.Error())
	}
	if therapist == nil {
		return nil, notFound("Therapist profile not found")
	}

	business, err := s.Businesses.GetByID(businessID)
	if err != nil {
		return nil, internal(err.Error())
	}
	if business == nil {
		return nil, notFound("Business not found")
	}

	// Duplicate checks run independently per side; a pre-existing
	// inconsistency between the arrays is not reconciled here.
	if entry := therapist.AssociationWith(businessID); entry != nil &&
		(entry.Status == models.AssociationStatusPending || entry.Status == models.AssociationStatusApproved) {
		return nil, conflict("A request for this business is already pending or approved")
	}
	if entry := business.AssociationWith(therapistID); entry != nil &&
		(entry.Status == models.AssociationStatusPending || entry.Status == models.AssociationStatusApproved) {
		return nil, conflict("This business already has a pending or approved entry for you")
	}

	now := time.Now().UTC()
	assoc := models.BusinessAssociation{
		BusinessID:  businessID,
		Status:      models.AssociationStatusPending,
		RequestedAt: now,
	}

	if err := s.Therapists.AppendAssociation(therapistID, assoc); err != nil {
		return nil, internal("Failed to record association request: " + err.Error())
	}

	mirror := models.TherapistAssociation{
		TherapistID: therapistID,
		Status:      models.AssociationStatusPending,
		RequestedAt: &now,
	}
	if err := s.Businesses.AppendTherapist(businessID, mirror); err != nil {
		// Compensate the first write.
		if pullErr := s.Therapists.PullAssociation(therapistID, businessID); pullErr != nil {
			s.Logger.Error("failed to roll back therapist association",
				zap.String("therapistId", therapistID),
				zap.String("businessId", businessID),
				zap.Error(pullErr),
			)
		}
		return nil, internal("Failed to register request with business: " + err.Error())
	}

	return &assoc, nil
}

// RespondToTherapist moves the pending entries on both sides to approved or
// rejected. On approve, approvedAt (therapist side) and joinedAt (business
// side) carry the same timestamp. If the business-side write fails after the
// therapist side succeeded, the therapist side is rolled back to pending.
func (s *DefaultAssociationService) RespondToTherapist(ownerID, therapistID, action string) (*Decision, error) {
	if therapistID == "" {
		return nil, badRequest("therapistId is required")
	}
	if action != ActionApprove && action != ActionReject {
		return nil, badRequest("Invalid action, expected 'approve' or 'reject'")
	}

	business, err := s.Businesses.GetByOwner(ownerID)
	if err != nil {
		return nil, internal(err.Error())
	}
	if business == nil {
		return nil, notFound("Business profile not found")
	}

	therapist, err := s.Therapists.GetByID(therapistID)
	if err != nil {
		return nil, internal(err.Error())
	}
	if therapist == nil {
		return nil, notFound("Therapist not found")
	}

	// Both sides must hold a pending entry referencing each other.
	tEntry := therapist.AssociationWith(business.ID)
	bEntry := business.AssociationWith(therapistID)
	if tEntry == nil || tEntry.Status != models.AssociationStatusPending ||
		bEntry == nil || bEntry.Status != models.AssociationStatusPending {
		return nil, notFound("No pending request found")
	}

	now := time.Now().UTC()
	toStatus := models.AssociationStatusRejected
	var stamp *time.Time
	if action == ActionApprove {
		toStatus = models.AssociationStatusApproved
		stamp = &now
	}

	matched, err := s.Therapists.SetAssociationStatus(
		therapistID, business.ID, models.AssociationStatusPending, toStatus, stamp)
	if err != nil {
		return nil, internal("Failed to update therapist association: " + err.Error())
	}
	if !matched {
		return nil, notFound("No pending request found")
	}

	matched, err = s.Businesses.SetTherapistStatus(
		business.ID, therapistID, models.AssociationStatusPending, toStatus, stamp)
	if err != nil || !matched {
		// Roll the therapist side back to pending. A failed rollback is
		// logged only; the registry then stays inconsistent.
		if _, rbErr := s.Therapists.SetAssociationStatus(
			therapistID, business.ID, toStatus, models.AssociationStatusPending, nil); rbErr != nil {
			s.Logger.Error("failed to roll back therapist association status",
				zap.String("therapistId", therapistID),
				zap.String("businessId", business.ID),
				zap.Error(rbErr),
			)
		}
		if err != nil {
			return nil, internal("Failed to update business association: " + err.Error())
		}
		return nil, notFound("No pending request found")
	}

	return &Decision{
		TherapistID: therapistID,
		BusinessID:  business.ID,
		Action:      action,
		Timestamp:   now,
	}, nil
}

// ListRequests returns the therapist's association entries with the business
// joined per row. The join is a follow-up lookup per entry.
func (s *DefaultAssociationService) ListRequests(therapistID, status string) ([]BusinessRequestView, error) {
	therapist, err := s.Therapists.GetByID(therapistID)
	if err != nil {
		return nil, internal(err.Error())
	}
	if therapist == nil {
		return nil, notFound("Therapist profile not found")
	}

	views := make([]BusinessRequestView, 0, len(therapist.AssociatedBusinesses))
	for _, entry := range therapist.AssociatedBusinesses {
		if status != "" && entry.Status != status {
			continue
		}
		view := BusinessRequestView{BusinessAssociation: entry}
		business, err := s.Businesses.GetByID(entry.BusinessID)
		if err != nil {
			s.Logger.Warn("failed to join business for association entry",
				zap.String("businessId", entry.BusinessID), zap.Error(err))
		} else if business != nil {
			view.Business = business.Summary()
		}
		views = append(views, view)
	}
	return views, nil
}

// ListApprovedBusinesses returns only the approved associations.
func (s *DefaultAssociationService) ListApprovedBusinesses(therapistID string) ([]BusinessRequestView, error) {
	return s.ListRequests(therapistID, models.AssociationStatusApproved)
}
