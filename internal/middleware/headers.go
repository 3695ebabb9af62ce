package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecureHeaders sets the browser hardening headers for the console pages.
// Staged previews are presigned object-store URLs, so images may come from
// any https origin.
func SecureHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "same-origin")
		h.Set("Content-Security-Policy", "default-src 'self'; img-src 'self' https: http: data:; style-src 'self'; script-src 'self'; form-action 'self'; frame-ancestors 'none'")
		c.Next()
	}
}
