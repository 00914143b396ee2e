package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	APIKeys []string
}

// APIKeyAuth validates the Authorization bearer token against the configured
// API keys. The read API carries no user identity, a shared key is enough.
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		credentials := strings.TrimPrefix(authHeader, "Bearer ")
		if credentials == "" || credentials == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing or malformed Authorization header",
			})
			return
		}

		for _, key := range cfg.APIKeys {
			if key != "" && subtle.ConstantTimeCompare([]byte(credentials), []byte(key)) == 1 {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid API key",
		})
	}
}
