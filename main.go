// File: huzla/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"huzla/config"
	"huzla/database"
	bookingRepoPkg "huzla/database/repository/booking"
	serviceRepoPkg "huzla/database/repository/service"
	userRepoPkg "huzla/database/repository/user"
	"huzla/handlers"
	"huzla/middleware"
	"huzla/routes"
	"huzla/services/booking"
	"huzla/services/catalog"
	"huzla/services/storage"
	"huzla/services/user"
	"huzla/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.SanitizeRequest())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// Services.
	userService := &user.DefaultUserService{Repo: userRepo}
	catalogService := &catalog.DefaultCatalogService{Repo: serviceRepo}
	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Services: serviceRepo,
		Users:    userRepo,
	}

	// Handlers.
	hb := &routes.HandlerBundle{
		UserRepo: userRepo,
		Auth:     handlers.NewAuthHandler(userService),
		Services: handlers.NewServiceHandler(catalogService),
		Bookings: handlers.NewBookingHandler(bookingService),
		Admin:    handlers.NewAdminHandler(userService, bookingService),
	}

	// Image storage is optional: without credentials the upload routes are
	// simply not registered.
	if cld, err := utils.Cloudinary(); err != nil {
		logger.Sugar().Warnf("main: cloudinary storage disabled: %v", err)
	} else {
		hb.Storage = handlers.NewStorageHandler(storage.NewStorageService(cld))
	}

	routes.RegisterRoutes(router, hb)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
