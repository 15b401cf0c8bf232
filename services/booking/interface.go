package booking

import (
	"net/http"

	bookingRepo "huzla/database/repository/booking"
	serviceRepo "huzla/database/repository/service"
	userRepo "huzla/database/repository/user"
	"huzla/models"
	"huzla/utils"
)

var (
	ErrBookingNotFound   = utils.NewAppError(http.StatusNotFound, "Booking not found")
	ErrServiceNotFound   = utils.NewAppError(http.StatusNotFound, "Service not found")
	ErrSlotTaken         = utils.NewAppError(http.StatusBadRequest, "This slot is already booked")
	ErrInvalidWindow     = utils.NewAppError(http.StatusBadRequest, "End time must be after start time")
	ErrMalformedDate     = utils.NewAppError(http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	ErrInvalidDate       = utils.NewAppError(http.StatusBadRequest, "Booking date must be in the future")
	ErrInvalidStatus     = utils.NewAppError(http.StatusBadRequest, "Status must be one of: pending, confirmed, cancelled, completed")
	ErrNotBookingViewer  = utils.NewAppError(http.StatusForbidden, "Not authorized to view this booking")
	ErrNotBookingOwner   = utils.NewAppError(http.StatusForbidden, "Not authorized to update this booking")
	ErrNotBookingParty   = utils.NewAppError(http.StatusForbidden, "Not authorized to cancel this booking")
	ErrCancelCompleted   = utils.NewAppError(http.StatusBadRequest, "Cannot cancel a completed booking")
	ErrIllegalTransition = utils.NewAppError(http.StatusBadRequest, "Booking status transition not allowed")
)

// CreateInput carries a booking request into the coordinator.
type CreateInput struct {
	ServiceID string            `json:"serviceId" binding:"required"`
	Date      string            `json:"date" binding:"required"` // "YYYY-MM-DD"
	Slot      models.SlotWindow `json:"slot" binding:"required"`
}

// BookingService coordinates booking creation and lifecycle transitions.
type BookingService interface {
	Create(customerID string, input CreateInput) (*models.BookingDetail, error)
	List(userID, role string) ([]models.BookingDetail, error)
	Get(id, callerID string) (*models.BookingDetail, error)
	UpdateStatus(id, callerID string, status models.BookingStatus) (*models.BookingDetail, error)
	Cancel(id, callerID string) (*models.BookingDetail, error)
	ListAll() ([]models.Booking, error)
}

// DefaultBookingService is the standard implementation of BookingService.
type DefaultBookingService struct {
	Bookings bookingRepo.BookingRepository
	Services serviceRepo.ServiceRepository
	Users    userRepo.UserRepository
}
