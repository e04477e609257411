package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradepilot-api/services"
)

const identityKey = "identity"

// AuthMiddleware verifies the bearer token and stores the caller in the
// context as "identity", plus "userId", "email" and "role"
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := tokens.VerifyHeader(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": services.MessageOf(err),
			})
			return
		}

		c.Set(identityKey, identity)
		c.Set("userId", identity.ID)
		c.Set("email", identity.Email)
		c.Set("role", string(identity.Role))
		c.Next()
	}
}

// CurrentIdentity returns the caller stored by AuthMiddleware
func CurrentIdentity(c *gin.Context) (*services.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*services.Identity)
	return identity, ok
}
