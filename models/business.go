package models

import "time"

// TherapistAssociation is the business-side mirror of a therapist/business
// relationship.
type TherapistAssociation struct {
	TherapistID string     `bson:"therapistId" json:"therapistId"`
	Status      string     `bson:"status" json:"status"`
	RequestedAt *time.Time `bson:"requestedAt,omitempty" json:"requestedAt,omitempty"`
	JoinedAt    *time.Time `bson:"joinedAt,omitempty" json:"joinedAt,omitempty"`
}

// Currency is the display currency of a business.
type Currency struct {
	Code   string `bson:"code" json:"code"`     // e.g. "USD"
	Symbol string `bson:"symbol" json:"symbol"` // e.g. "$"
}

// Business is a provider profile owning services and therapist links.
type Business struct {
	ID       string   `bson:"id" json:"id"`
	Owner    string   `bson:"owner" json:"owner"`
	Name     string   `bson:"name" json:"name"`
	Email    string   `bson:"email,omitempty" json:"email,omitempty"`
	Address  string   `bson:"address,omitempty" json:"address,omitempty"`
	Currency Currency `bson:"currency" json:"currency"`

	Therapists []TherapistAssociation `bson:"therapists" json:"therapists"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AssociationWith returns the entry for the given therapist, if any.
func (b *Business) AssociationWith(therapistID string) *TherapistAssociation {
	for i := range b.Therapists {
		if b.Therapists[i].TherapistID == therapistID {
			return &b.Therapists[i]
		}
	}
	return nil
}

// BusinessSummary is the manually-joined sub-object embedded in booking
// listings (name and currency only).
type BusinessSummary struct {
	ID       string   `bson:"id" json:"id"`
	Name     string   `bson:"name" json:"name"`
	Currency Currency `bson:"currency" json:"currency"`
}

// Summary projects the business into its listing form.
func (b *Business) Summary() *BusinessSummary {
	return &BusinessSummary{ID: b.ID, Name: b.Name, Currency: b.Currency}
}
