package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireRole aborts with 403 unless the token's role claim matches the
// endpoint's required role. Comparison is case-insensitive.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claimRole := c.GetString(ContextAuthRole)
		if !strings.EqualFold(claimRole, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "Insufficient role for this endpoint",
			})
			return
		}
		c.Next()
	}
}
