package routes

import (
	"net/http"
	"time"

	userRepo "huzla/database/repository/user"
	"huzla/handlers"
	"huzla/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers and shared dependencies the router
// needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth     *handlers.AuthHandler
	Services *handlers.ServiceHandler
	Bookings *handlers.BookingHandler
	Admin    *handlers.AdminHandler
	Storage  *handlers.StorageHandler
}

// RegisterAuthRoutes registers registration, login and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.CurrentUserHandler)
		api.PUT("/profile", hb.Auth.UpdateProfileHandler)
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterServiceRoutes registers catalog endpoints.
func RegisterServiceRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/services")
	{
		// Public catalog browsing.
		api.GET("", hb.Services.ListServicesHandler)

		// Provider-only catalog management.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole("provider"))
		protected.POST("", hb.Services.CreateServiceHandler)
		protected.GET("/provider/services", hb.Services.ProviderServicesHandler)
		protected.PUT("/:id", hb.Services.UpdateServiceHandler)
		protected.DELETE("/:id", hb.Services.DeleteServiceHandler)

		api.GET("/:id", hb.Services.GetServiceHandler)
	}
}

// RegisterBookingRoutes registers booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.GET("", hb.Bookings.ListBookingsHandler)
		api.GET("/:id", hb.Bookings.GetBookingHandler)
		api.PUT("/:id/cancel", hb.Bookings.CancelBookingHandler)
		api.PUT("/:id/status", middleware.RequireRole("provider"), hb.Bookings.UpdateBookingStatusHandler)
	}
}

// RegisterAdminRoutes registers admin oversight endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole("admin"))
		api.GET("/users", hb.Admin.GetAllUsersHandler)
		api.GET("/bookings", hb.Admin.GetAllBookingsHandler)
	}
}

// RegisterStorageRoutes registers listing-image upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *HandlerBundle) {
	if hb.Storage == nil {
		return
	}
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole("provider"))
		api.POST("/upload/:bucket", hb.Storage.UploadImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterServiceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
