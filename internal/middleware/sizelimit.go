package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxRequestSize caps the declared request body at 1 MiB.
const MaxRequestSize = 1 << 20

// SizeLimit rejects requests whose declared content length exceeds the cap
// before any handler reads the body.
func SizeLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > MaxRequestSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "Request body too large",
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxRequestSize)
		c.Next()
	}
}
