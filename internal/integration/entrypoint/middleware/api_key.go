package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finwise/backend/internal/integration/entrypoint/dto"
)

// APIKeyGate guards destructive administrative endpoints. The expected key
// is injected at startup; an empty key disables the surface entirely.
func APIKeyGate(expectedKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("X-API-Key")
		if expectedKey == "" || provided == "" ||
			subtle.ConstantTimeCompare([]byte(provided), []byte(expectedKey)) != 1 {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Message: "Unauthorized: Invalid or missing API key",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
