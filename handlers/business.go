package handlers

import (
	"net/http"

	"wellnest/services/association"
	"wellnest/services/workflow"
	"wellnest/utils"

	"github.com/gin-gonic/gin"
)

// BusinessHandler serves the business-side booking and association endpoints.
type BusinessHandler struct {
	Workflow    workflow.BookingWorkflowService
	Association association.AssociationService
}

func NewBusinessHandler(wf workflow.BookingWorkflowService, assoc association.AssociationService) *BusinessHandler {
	return &BusinessHandler{Workflow: wf, Association: assoc}
}

// ApproveTherapistHandler lets a business approve or reject a therapist's
// pending join request.
func (h *BusinessHandler) ApproveTherapistHandler(c *gin.Context) {
	var input struct {
		TherapistID string `json:"therapistId" binding:"required"`
		Action      string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "therapistId and action are required")
		return
	}

	decision, err := h.Association.RespondToTherapist(authID(c), input.TherapistID, input.Action)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Therapist request rejected"
	if decision.Action == association.ActionApprove {
		message = "Therapist request approved"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    decision,
	})
}

// BookingResponsesHandler lists the business's bookings with the manual
// currency join, paginated.
func (h *BusinessHandler) BookingResponsesHandler(c *gin.Context) {
	page, err := h.Workflow.ListBookingResponses(authID(c), parseListQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       page.Bookings,
		"pagination": page.Pagination,
	})
}

// TherapistResponsesHandler lists the bookings therapists have answered.
func (h *BusinessHandler) TherapistResponsesHandler(c *gin.Context) {
	page, err := h.Workflow.ListTherapistResponses(authID(c), parseListQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       page.Bookings,
		"pagination": page.Pagination,
	})
}

// RespondToBookingHandler applies a business confirm/cancel/reschedule to a
// booking.
func (h *BusinessHandler) RespondToBookingHandler(c *gin.Context) {
	var req workflow.ResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	booking, err := h.Workflow.RespondToBooking(authID(c), c.Param("bookingId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking updated",
		"data":    booking,
	})
}

// CancelAssignedBookingHandler cancels an admin-assigned booking, releasing
// the matching availability slot.
func (h *BusinessHandler) CancelAssignedBookingHandler(c *gin.Context) {
	booking, err := h.Workflow.CancelAssignedBooking(authID(c), c.Param("bookingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking cancelled",
		"data":    booking,
	})
}
