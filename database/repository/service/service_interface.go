package serviceRepo

import "wellnest/models"

// ServiceRepository defines data access methods for bookable services.
type ServiceRepository interface {
	// GetByID returns the service or (nil, nil) when no document matches.
	GetByID(id string) (*models.Service, error)
	// ListByBusiness returns every service belonging to the business.
	ListByBusiness(businessID string) ([]models.Service, error)
}
