package catalog

import (
	"net/http"

	serviceRepo "huzla/database/repository/service"
	"huzla/models"
	"huzla/utils"
)

var (
	ErrServiceNotFound = utils.NewAppError(http.StatusNotFound, "Service not found")
	ErrNotOwner        = utils.NewAppError(http.StatusForbidden, "Not authorized to modify this service")
)

// ServiceInput carries a new listing into the catalog.
type ServiceInput struct {
	Title        string                   `json:"title" binding:"required,min=5,max=100"`
	Description  string                   `json:"description" binding:"required,min=20,max=1000"`
	Category     string                   `json:"category" binding:"required"`
	Price        float64                  `json:"price"`
	Duration     int                      `json:"duration" binding:"required"`
	Images       []string                 `json:"images"`
	Availability []models.DayAvailability `json:"availability" binding:"required,min=1,dive"`
}

// CatalogService defines catalog operations.
type CatalogService interface {
	Create(providerID string, input ServiceInput) (*models.Service, error)
	List(filter models.ServiceFilter) ([]models.Service, error)
	GetByID(id string) (*models.Service, error)
	ListByProvider(providerID string) ([]models.Service, error)
	Update(id, callerID string, update models.ServiceUpdate) (*models.Service, error)
	Delete(id, callerID string) error
}

// DefaultCatalogService is the standard implementation of CatalogService.
type DefaultCatalogService struct {
	Repo serviceRepo.ServiceRepository
}
