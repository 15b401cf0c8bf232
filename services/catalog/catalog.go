package catalog

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"huzla/models"
	"huzla/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minDurationMinutes = 15
	maxDurationMinutes = 480
	maxImages          = 10
)

func validationError(msg string) error {
	return utils.NewAppError(http.StatusBadRequest, msg)
}

// validateListing enforces the catalog's domain rules: non-negative 2-decimal
// price, duration bounds, and a well-formed availability template.
func validateListing(price float64, duration int, images []string, availability []models.DayAvailability) error {
	if price < 0 {
		return validationError("Price must not be negative")
	}
	// Compare in cents with a tolerance: many 2-decimal prices (4.35,
	// 19.99, 0.07) are not float-exact when multiplied by 100.
	if math.Abs(price*100-math.Round(price*100)) > 1e-9 {
		return validationError("Price must have at most 2 decimal places")
	}
	if duration < minDurationMinutes || duration > maxDurationMinutes {
		return validationError(fmt.Sprintf("Duration must be between %d and %d minutes", minDurationMinutes, maxDurationMinutes))
	}
	if len(images) > maxImages {
		return validationError(fmt.Sprintf("At most %d images are allowed", maxImages))
	}

	seen := map[string]bool{}
	for _, day := range availability {
		if !models.IsWeekday(day.Day) {
			return validationError(fmt.Sprintf("Invalid day %q in availability", day.Day))
		}
		if seen[day.Day] {
			return validationError(fmt.Sprintf("Day %q appears more than once in availability", day.Day))
		}
		seen[day.Day] = true
		if len(day.Slots) == 0 {
			return validationError(fmt.Sprintf("Day %q has no slots", day.Day))
		}
		for _, slot := range day.Slots {
			if err := slot.Validate(); err != nil {
				return validationError(err.Error())
			}
		}
	}
	return nil
}

// Create adds a new listing owned by providerID.
func (s *DefaultCatalogService) Create(providerID string, input ServiceInput) (*models.Service, error) {
	if err := validateListing(input.Price, input.Duration, input.Images, input.Availability); err != nil {
		return nil, err
	}

	svc := models.Service{
		ID:           uuid.New().String(),
		ProviderID:   providerID,
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Price:        input.Price,
		Duration:     input.Duration,
		Images:       input.Images,
		Availability: input.Availability,
	}

	if err := s.Repo.Create(&svc); err != nil {
		utils.GetLogger().Error("Create service failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &svc, nil
}

// List retrieves listings matching the filter.
func (s *DefaultCatalogService) List(filter models.ServiceFilter) ([]models.Service, error) {
	return s.Repo.List(filter)
}

// GetByID retrieves a single listing.
func (s *DefaultCatalogService) GetByID(id string) (*models.Service, error) {
	svc, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}
	return svc, nil
}

// ListByProvider retrieves a provider's own listings.
func (s *DefaultCatalogService) ListByProvider(providerID string) ([]models.Service, error) {
	return s.Repo.ListByProvider(providerID)
}

// Update applies the non-nil fields of the update to a listing the caller
// owns.
func (s *DefaultCatalogService) Update(id, callerID string, update models.ServiceUpdate) (*models.Service, error) {
	svc, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if svc.ProviderID != callerID {
		return nil, ErrNotOwner
	}

	if update.Title != nil {
		svc.Title = *update.Title
	}
	if update.Description != nil {
		svc.Description = *update.Description
	}
	if update.Category != nil {
		svc.Category = *update.Category
	}
	if update.Price != nil {
		svc.Price = *update.Price
	}
	if update.Duration != nil {
		svc.Duration = *update.Duration
	}
	if update.Images != nil {
		svc.Images = *update.Images
	}
	if update.Availability != nil {
		svc.Availability = *update.Availability
	}

	if err := validateListing(svc.Price, svc.Duration, svc.Images, svc.Availability); err != nil {
		return nil, err
	}

	svc.UpdatedAt = time.Now()
	if err := s.Repo.Update(svc); err != nil {
		utils.GetLogger().Error("Update service failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

// Delete removes a listing the caller owns.
func (s *DefaultCatalogService) Delete(id, callerID string) error {
	svc, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if svc.ProviderID != callerID {
		return ErrNotOwner
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}
