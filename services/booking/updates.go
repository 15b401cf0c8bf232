package booking

import (
	"fmt"

	"huzla/models"
	"huzla/utils"

	"go.uber.org/zap"
)

// legalTransitions is the booking state machine. cancelled and completed are
// terminal; a same-status write is not a transition and is rejected.
var legalTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCompleted, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled},
	models.BookingCancelled: {},
	models.BookingCompleted: {},
}

func transitionAllowed(from, to models.BookingStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus moves a booking through its state machine. Only the booking's
// provider may do this.
func (s *DefaultBookingService) UpdateStatus(id, callerID string, status models.BookingStatus) (*models.BookingDetail, error) {
	if !models.IsValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}

	b, err := s.getBooking(id)
	if err != nil {
		return nil, err
	}
	if b.ProviderID != callerID {
		return nil, ErrNotBookingOwner
	}
	if !transitionAllowed(b.Status, status) {
		return nil, ErrIllegalTransition
	}

	b.Status = status
	if err := s.Bookings.Update(b); err != nil {
		utils.GetLogger().Error("UpdateStatus: persist failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return s.buildDetail(b), nil
}

// Cancel sets a booking to cancelled. Either participant may cancel; a
// completed booking cannot be cancelled, and re-cancelling an already
// cancelled booking is a no-op.
func (s *DefaultBookingService) Cancel(id, callerID string) (*models.BookingDetail, error) {
	b, err := s.getBooking(id)
	if err != nil {
		return nil, err
	}
	if !b.IsParticipant(callerID) {
		return nil, ErrNotBookingParty
	}
	if b.Status == models.BookingCompleted {
		return nil, ErrCancelCompleted
	}

	b.Status = models.BookingCancelled
	if err := s.Bookings.Update(b); err != nil {
		utils.GetLogger().Error("Cancel: persist failed", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}
	return s.buildDetail(b), nil
}
