package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"wellnest/services/association"
	"wellnest/services/workflow"
	"wellnest/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps typed service errors onto the JSON error envelope. Any
// other error becomes a 500 with its message passed through.
func respondError(c *gin.Context, err error) {
	var ae *association.Error
	if errors.As(err, &ae) {
		utils.JSONError(c, ae.Status, ae.Message)
		return
	}
	var we *workflow.Error
	if errors.As(err, &we) {
		utils.JSONError(c, we.Status, we.Message)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, err.Error())
}

// parseListQuery reads the page/limit/status query parameters.
func parseListQuery(c *gin.Context) workflow.ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	return workflow.ListQuery{
		Page:   page,
		Limit:  limit,
		Status: c.Query("status"),
	}
}

func authID(c *gin.Context) string {
	return c.GetString("authID")
}
