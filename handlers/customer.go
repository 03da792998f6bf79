package handlers

import (
	"net/http"

	"wellnest/services/workflow"

	"github.com/gin-gonic/gin"
)

// CustomerHandler serves the customer-side read endpoints.
type CustomerHandler struct {
	Workflow workflow.BookingWorkflowService
}

func NewCustomerHandler(wf workflow.BookingWorkflowService) *CustomerHandler {
	return &CustomerHandler{Workflow: wf}
}

// BookingsHandler lists the customer's bookings with the visibility gate
// applied.
func (h *CustomerHandler) BookingsHandler(c *gin.Context) {
	page, err := h.Workflow.ListCustomerBookings(authID(c), parseListQuery(c))
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
