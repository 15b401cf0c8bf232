package handlers

import (
	"net/http"

	"huzla/services/booking"
	"huzla/services/user"
	"huzla/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves admin oversight endpoints.
type AdminHandler struct {
	UserService    user.UserService
	BookingService booking.BookingService
}

// NewAdminHandler creates a new AdminHandler instance.
func NewAdminHandler(userSvc user.UserService, bookingSvc booking.BookingService) *AdminHandler {
	return &AdminHandler{UserService: userSvc, BookingService: bookingSvc}
}

// GetAllUsersHandler handles GET /api/admin/users.
func (h *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.UserService.GetAllUsers()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAllBookingsHandler handles GET /api/admin/bookings.
func (h *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.ListAll()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
