package handlers

import (
	"net/http"

	"huzla/models"
	"huzla/services/booking"
	"huzla/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking lifecycle endpoints.
type BookingHandler struct {
	Bookings booking.BookingService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	customerID := c.GetString("userID")

	var req booking.CreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking create request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.Bookings.Create(customerID, req)
	if err != nil {
		logger.Warn("Booking create rejected", zap.String("serviceId", req.ServiceID), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Bookings.List(c.GetString("userID"), c.GetString("userRole"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Bookings.Get(c.Param("id"), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// UpdateBookingStatusHandler handles PUT /api/bookings/:id/status (provider only).
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Status models.BookingStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid status update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	b, err := h.Bookings.UpdateStatus(c.Param("id"), c.GetString("userID"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler handles PUT /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	b, err := h.Bookings.Cancel(c.Param("id"), c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
