package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estateadmin/console/internal/security"
	"estateadmin/console/internal/session"
)

const (
	csrfField      = "csrf_token"
	csrfContextKey = "csrf_token"
)

// CSRF issues the form token for the current console session and rejects
// unsafe requests that do not echo it back.
func CSRF(key []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := session.FromContext(c).ID()
		if id != "" {
			c.Set(csrfContextKey, security.FormToken(key, id))
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		token := c.PostForm(csrfField)
		if token == "" {
			token = c.GetHeader("X-CSRF-Token")
		}
		if !security.ValidFormToken(key, id, token) {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"Title":     "Form expired",
				"Message":   "The form was open too long or came from elsewhere. Reload the page and try again.",
				"RequestID": GetRequestID(c),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func CSRFToken(c *gin.Context) string {
	return c.GetString(csrfContextKey)
}
