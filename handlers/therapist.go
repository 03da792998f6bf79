package handlers

import (
	"net/http"

	"wellnest/services/association"
	"wellnest/services/workflow"
	"wellnest/utils"

	"github.com/gin-gonic/gin"
)

// TherapistHandler serves the therapist-side endpoints.
type TherapistHandler struct {
	Workflow    workflow.BookingWorkflowService
	Association association.AssociationService
}

func NewTherapistHandler(wf workflow.BookingWorkflowService, assoc association.AssociationService) *TherapistHandler {
	return &TherapistHandler{Workflow: wf, Association: assoc}
}

// RequestBusinessHandler registers a pending association with a business.
func (h *TherapistHandler) RequestBusinessHandler(c *gin.Context) {
	var input struct {
		BusinessID string `json:"businessId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "businessId is required")
		return
	}

	assoc, err := h.Association.RequestBusiness(authID(c), input.BusinessID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Request sent to business",
		"data":    assoc,
	})
}

// BusinessRequestsHandler lists the therapist's association entries.
func (h *TherapistHandler) BusinessRequestsHandler(c *gin.Context) {
	views, err := h.Association.ListRequests(authID(c), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": views})
}

// BusinessesHandler lists the businesses that approved the therapist.
func (h *TherapistHandler) BusinessesHandler(c *gin.Context) {
	views, err := h.Association.ListApprovedBusinesses(authID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": views})
}

// BusinessResponsesHandler lists the therapist's bookings the business has
// acted on.
func (h *TherapistHandler) BusinessResponsesHandler(c *gin.Context) {
	page, err := h.Workflow.ListBusinessResponses(authID(c), parseListQuery(c))
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

// RespondToAssignedBookingHandler records the therapist's confirm/cancel on
// an admin-assigned booking.
func (h *TherapistHandler) RespondToAssignedBookingHandler(c *gin.Context) {
	var input struct {
		Action string `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "action is required")
		return
	}

	booking, err := h.Workflow.TherapistRespond(authID(c), c.Param("bookingId"), input.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Response recorded",
		"data":    booking,
	})
}
