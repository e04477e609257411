package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradepilot-api/models"
	"github.com/tradepilot-api/services"
)

// RequireRole creates a middleware that ensures the user holds one of roles.
// This middleware should be used after AuthMiddleware
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authentication required",
			})
			return
		}

		if err := services.AuthorizeRole(identity, roles...); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": services.MessageOf(err),
			})
			return
		}

		c.Next()
	}
}
