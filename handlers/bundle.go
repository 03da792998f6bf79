package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Business endpoints.
	ApproveTherapistHandler      gin.HandlerFunc
	BookingResponsesHandler      gin.HandlerFunc
	TherapistResponsesHandler    gin.HandlerFunc
	RespondToBookingHandler      gin.HandlerFunc
	CancelAssignedBookingHandler gin.HandlerFunc

	// Therapist endpoints.
	RequestBusinessHandler          gin.HandlerFunc
	BusinessRequestsHandler         gin.HandlerFunc
	BusinessesHandler               gin.HandlerFunc
	BusinessResponsesHandler        gin.HandlerFunc
	RespondToAssignedBookingHandler gin.HandlerFunc

	// Customer endpoints.
	CustomerBookingsHandler gin.HandlerFunc
}
