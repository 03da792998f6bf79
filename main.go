// File: wellnest/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wellnest/config"
	"wellnest/database"
	availabilityRepo "wellnest/database/repository/availability"
	bookingRepo "wellnest/database/repository/booking"
	businessRepo "wellnest/database/repository/business"
	serviceRepo "wellnest/database/repository/service"
	therapistRepo "wellnest/database/repository/therapist"
	"wellnest/handlers"
	"wellnest/middleware"
	"wellnest/routes"
	"wellnest/services/association"
	"wellnest/services/notification"
	"wellnest/services/workflow"
	"wellnest/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	therapists := therapistRepo.NewMongoTherapistRepo()
	businesses := businessRepo.NewMongoBusinessRepo()
	services := serviceRepo.NewMongoServiceRepo()
	availability := availabilityRepo.NewMongoAvailabilityRepo()

	// services.
	notifier := notification.NewDefaultNotificationService(logger)

	associationService := &association.DefaultAssociationService{
		Therapists: therapists,
		Businesses: businesses,
		Logger:     logger,
	}

	workflowService := &workflow.DefaultBookingWorkflowService{
		Bookings:     bookings,
		Services:     services,
		Businesses:   businesses,
		Availability: availability,
		Notifier:     notifier,
		Cache:        utils.GetCacheClient(),
		Logger:       logger,
	}

	businessHandler := handlers.NewBusinessHandler(workflowService, associationService)
	therapistHandler := handlers.NewTherapistHandler(workflowService, associationService)
	customerHandler := handlers.NewCustomerHandler(workflowService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Business endpoints.
		ApproveTherapistHandler:      businessHandler.ApproveTherapistHandler,
		BookingResponsesHandler:      businessHandler.BookingResponsesHandler,
		TherapistResponsesHandler:    businessHandler.TherapistResponsesHandler,
		RespondToBookingHandler:      businessHandler.RespondToBookingHandler,
		CancelAssignedBookingHandler: businessHandler.CancelAssignedBookingHandler,

		// Therapist endpoints.
		RequestBusinessHandler:          therapistHandler.RequestBusinessHandler,
		BusinessRequestsHandler:         therapistHandler.BusinessRequestsHandler,
		BusinessesHandler:               therapistHandler.BusinessesHandler,
		BusinessResponsesHandler:        therapistHandler.BusinessResponsesHandler,
		RespondToAssignedBookingHandler: therapistHandler.RespondToAssignedBookingHandler,

		// Customer endpoints.
		CustomerBookingsHandler: customerHandler.BookingsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
