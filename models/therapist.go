package models

import "time"

// Association statuses shared by both sides of a therapist/business link.
const (
	AssociationStatusPending  = "pending"
	AssociationStatusApproved = "approved"
	AssociationStatusRejected = "rejected"
)

// BusinessAssociation is the therapist-side entry of a therapist/business
// relationship. The business keeps its own mirrored entry; the two are kept
// in sync by the association service, not by the schema.
type BusinessAssociation struct {
	BusinessID  string     `bson:"businessId" json:"businessId"`
	Status      string     `bson:"status" json:"status"`
	RequestedAt time.Time  `bson:"requestedAt" json:"requestedAt"`
	ApprovedAt  *time.Time `bson:"approvedAt,omitempty" json:"approvedAt,omitempty"`
}

// Therapist is a professional profile.
type Therapist struct {
	ID          string   `bson:"id" json:"id"`
	UserID      string   `bson:"userId,omitempty" json:"userId,omitempty"`
	Name        string   `bson:"name" json:"name"`
	Email       string   `bson:"email" json:"email"`
	PhoneNumber string   `bson:"phoneNumber,omitempty" json:"phoneNumber,omitempty"`
	Specialties []string `bson:"specialties,omitempty" json:"specialties,omitempty"`

	AssociatedBusinesses []BusinessAssociation `bson:"associatedBusinesses" json:"associatedBusinesses"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AssociationWith returns the entry for the given business, if any.
func (t *Therapist) AssociationWith(businessID string) *BusinessAssociation {
	for i := range t.AssociatedBusinesses {
		if t.AssociatedBusinesses[i].BusinessID == businessID {
			return &t.AssociatedBusinesses[i]
		}
	}
	return nil
}
