package serviceRepo

import "huzla/models"

// ServiceRepository defines methods for catalog data access.
type ServiceRepository interface {
	// GetByID retrieves a service by its unique ID. Returns (nil, nil) when
	// no listing exists.
	GetByID(id string) (*models.Service, error)
	// List retrieves listings matching the filter, newest first.
	List(filter models.ServiceFilter) ([]models.Service, error)
	// ListByProvider retrieves a provider's listings, newest first.
	ListByProvider(providerID string) ([]models.Service, error)
	// Create inserts a new listing.
	Create(service *models.Service) error
	// Update replaces an existing listing.
	Update(service *models.Service) error
	// Delete removes a listing by its ID.
	Delete(id string) error
}
