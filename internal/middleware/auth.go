package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequireAPIKey guards administrative endpoints with a static key, accepted
// through the X-API-Key header or as a bearer token. An unconfigured key
// denies every request rather than opening the endpoints.
func RequireAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-API-Key")
		if supplied == "" {
			auth := c.GetHeader("Authorization")
			if parts := strings.SplitN(auth, " ", 2); len(parts) == 2 && parts[0] == "Bearer" {
				supplied = parts[1]
			}
		}

		if key == "" || supplied == "" ||
			subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Unauthorized",
			})
			return
		}
		c.Next()
	}
}
