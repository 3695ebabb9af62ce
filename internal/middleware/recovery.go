package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery turns a panic into a 500. Browsers get the error page, anything
// else a JSON body.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Interface("error", r).
					Str("path", c.Request.URL.Path).
					Str("request_id", GetRequestID(c)).
					Msg("panic recovered")

				if strings.Contains(c.GetHeader("Accept"), "text/html") {
					c.HTML(http.StatusInternalServerError, "error.html", gin.H{
						"Title":     "Something went wrong",
						"Message":   "The page failed to render. Try again.",
						"RequestID": GetRequestID(c),
					})
					c.Abort()
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal_server_error",
				})
			}
		}()
		c.Next()
	}
}
