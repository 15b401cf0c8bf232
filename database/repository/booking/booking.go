package bookingRepo

import (
	"errors"

	"huzla/models"
)

// ErrDuplicateSlot is returned by Create when the storage-level uniqueness
// guard rejects a second active booking for the same (service, date, slot)
// tuple.
var ErrDuplicateSlot = errors.New("active booking already exists for this slot")

// BookingRepository defines methods for booking ledger access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID. Returns (nil, nil) when
	// no booking exists.
	GetByID(id string) (*models.Booking, error)
	// FindActiveSlot retrieves a non-cancelled booking matching the exact
	// (serviceID, date, slot) tuple, or (nil, nil) when the slot is free.
	FindActiveSlot(serviceID, date string, slot models.SlotWindow) (*models.Booking, error)
	// ListByCustomer retrieves a customer's bookings ordered by date ascending.
	ListByCustomer(customerID string) ([]models.Booking, error)
	// ListByProvider retrieves a provider's bookings ordered by date ascending.
	ListByProvider(providerID string) ([]models.Booking, error)
	// ListAll retrieves every booking ordered by date ascending.
	ListAll() ([]models.Booking, error)
	// Create inserts a new booking. Returns ErrDuplicateSlot when the active
	// slot uniqueness guard fires.
	Create(booking *models.Booking) error
	// Update replaces an existing booking record.
	Update(booking *models.Booking) error
}
