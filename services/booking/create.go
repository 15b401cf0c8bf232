package booking

import (
	"errors"
	"fmt"
	"time"

	bookingRepo "huzla/database/repository/booking"
	"huzla/models"
	"huzla/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create books a slot for a customer. The slot is free when no non-cancelled
// booking holds the exact same (service, date, window) tuple; overlapping but
// non-identical windows do not collide. The ledger's unique index backs up
// the existence check, so a concurrent identical request surfaces as
// ErrSlotTaken rather than a double booking.
func (s *DefaultBookingService) Create(customerID string, input CreateInput) (*models.BookingDetail, error) {
	logger := utils.GetLogger()

	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if err := validateWindow(input.Slot); err != nil {
		return nil, err
	}

	svc, err := s.Services.GetByID(input.ServiceID)
	if err != nil {
		logger.Error("Create booking: service lookup failed", zap.String("serviceId", input.ServiceID), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch service: %w", err)
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	existing, err := s.Bookings.FindActiveSlot(input.ServiceID, input.Date, input.Slot)
	if err != nil {
		logger.Error("Create booking: slot check failed", zap.String("serviceId", input.ServiceID), zap.Error(err))
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	if existing != nil {
		return nil, ErrSlotTaken
	}

	b := models.Booking{
		ID:         uuid.New().String(),
		ServiceID:  svc.ID,
		CustomerID: customerID,
		ProviderID: svc.ProviderID,
		Date:       input.Date,
		Slot:       input.Slot,
		Status:     models.BookingPending,
		Payment: models.Payment{
			Amount: svc.Price,
			Status: models.PaymentPending,
		},
	}

	if err := s.Bookings.Create(&b); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateSlot) {
			return nil, ErrSlotTaken
		}
		logger.Error("Create booking: insert failed", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return s.buildDetail(&b), nil
}

// validateDate requires a parseable calendar date strictly in the future.
func validateDate(date string) error {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ErrMalformedDate
	}
	if !d.After(time.Now()) {
		return ErrInvalidDate
	}
	return nil
}

// validateWindow requires both bounds to parse and end > start in
// minutes-since-midnight terms.
func validateWindow(slot models.SlotWindow) error {
	if err := slot.Validate(); err != nil {
		return ErrInvalidWindow
	}
	return nil
}
