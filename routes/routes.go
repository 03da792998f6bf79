package routes

import (
	"net/http"
	"time"

	"wellnest/handlers"
	"wellnest/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBusinessRoutes registers the business-side endpoints.
func RegisterBusinessRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/business")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("business"))
		api.PATCH("/approve-therapist", hb.ApproveTherapistHandler)
		api.GET("/booking-responses", hb.BookingResponsesHandler)
		api.GET("/therapist-responses", hb.TherapistResponsesHandler)
		api.PATCH("/therapist-responses/:bookingId", hb.RespondToBookingHandler)
		api.PATCH("/assigned-bookings/cancel/:bookingId", hb.CancelAssignedBookingHandler)
	}
}

// RegisterTherapistRoutes registers the therapist-side endpoints.
func RegisterTherapistRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/therapist")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("therapist"))
		api.POST("/request-business", hb.RequestBusinessHandler)
		api.GET("/business-requests", hb.BusinessRequestsHandler)
		api.GET("/businesses", hb.BusinessesHandler)
		api.GET("/business-responses", hb.BusinessResponsesHandler)
		api.PATCH("/assigned-bookings/:bookingId", hb.RespondToAssignedBookingHandler)
	}
}

// RegisterCustomerRoutes registers the customer-side endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customer")
	{
		api.Use(middleware.JWTAuthMiddleware(), middleware.RequireRole("customer"))
		api.GET("/bookings", hb.CustomerBookingsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Wellnest"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBusinessRoutes(r, hb)
	RegisterTherapistRoutes(r, hb)
	RegisterCustomerRoutes(r, hb)
	RegisterHealthRoute(r)
}
