package middleware

import (
	"net/http"
	"strings"

	"wellnest/utils"

	"github.com/gin-gonic/gin"
)

// Context keys populated by JWTAuthMiddleware.
const (
	ContextAuthID    = "authID"
	ContextAuthEmail = "authEmail"
	ContextAuthRole  = "authRole"
)

// JWTAuthMiddleware validates the bearer token and stores its claims in the
// request context. Tokens are verified against the shared secret only; no
// session lookup happens here.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Missing or invalid Authorization header",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Invalid or expired token",
			})
			return
		}

		c.Set(ContextAuthID, claims.ID)
		c.Set(ContextAuthEmail, claims.Email)
		c.Set(ContextAuthRole, claims.Role)
		c.Next()
	}
}
