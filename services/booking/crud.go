package booking

import (
	"fmt"

	"huzla/models"
	"huzla/utils"

	"go.uber.org/zap"
)

// buildDetail resolves the display fields of a booking via read-time joins.
// A failed lookup leaves the corresponding field empty rather than failing
// the whole request.
func (s *DefaultBookingService) buildDetail(b *models.Booking) *models.BookingDetail {
	detail := &models.BookingDetail{Booking: *b}

	if svc, err := s.Services.GetByID(b.ServiceID); err == nil && svc != nil {
		sum := svc.Summary()
		detail.Service = &sum
	} else if err != nil {
		utils.GetLogger().Warn("booking detail: service lookup failed", zap.String("serviceId", b.ServiceID), zap.Error(err))
	}
	if prov, err := s.Users.GetByID(b.ProviderID); err == nil && prov != nil {
		sum := prov.Summary()
		detail.Provider = &sum
	}
	if cust, err := s.Users.GetByID(b.CustomerID); err == nil && cust != nil {
		sum := cust.Summary()
		detail.Customer = &sum
	}
	return detail
}

// List returns the caller's bookings, date ascending: providers see bookings
// they fulfil, everyone else sees bookings they made.
func (s *DefaultBookingService) List(userID, role string) ([]models.BookingDetail, error) {
	var (
		bookings []models.Booking
		err      error
	)
	if role == models.RoleProvider {
		bookings, err = s.Bookings.ListByProvider(userID)
	} else {
		bookings, err = s.Bookings.ListByCustomer(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	details := make([]models.BookingDetail, 0, len(bookings))
	for i := range bookings {
		details = append(details, *s.buildDetail(&bookings[i]))
	}
	return details, nil
}

// Get retrieves a booking visible only to its two participants.
func (s *DefaultBookingService) Get(id, callerID string) (*models.BookingDetail, error) {
	b, err := s.getBooking(id)
	if err != nil {
		return nil, err
	}
	if !b.IsParticipant(callerID) {
		return nil, ErrNotBookingViewer
	}
	return s.buildDetail(b), nil
}

// ListAll returns every booking, for admin oversight.
func (s *DefaultBookingService) ListAll() ([]models.Booking, error) {
	return s.Bookings.ListAll()
}

func (s *DefaultBookingService) getBooking(id string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(id)
	if err != nil {
		utils.GetLogger().Error("booking lookup failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}
