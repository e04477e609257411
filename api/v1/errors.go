package v1

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tradepilot-api/middleware"
	"github.com/tradepilot-api/services"
)

func statusFor(kind services.Kind) int {
	switch kind {
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindUnauthorized:
		return http.StatusUnauthorized
	case services.KindForbidden:
		return http.StatusForbidden
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error body for a failed service call
func respondError(c *gin.Context, err error) {
	kind := services.KindOf(err)
	if kind == services.KindInternal {
		log.Printf("❌ [%s] %s %s: %v", middleware.GetRequestID(c.Request.Context()), c.Request.Method, c.FullPath(), err)
	}

	c.JSON(statusFor(kind), gin.H{
		"status":  "error",
		"message": services.MessageOf(err),
	})
}

// bindJSON parses the request body and writes a 400 when it is unusable
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": services.ValidationMessage(err),
		})
		return false
	}
	return true
}
