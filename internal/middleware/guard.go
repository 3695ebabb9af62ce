package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estateadmin/console/internal/guard"
	"estateadmin/console/internal/session"
)

// Guard applies the route table before any screen handler runs.
func Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := guard.Resolve(c.Request.URL.Path, session.FromContext(c).Authorized())
		if decision.Render {
			c.Next()
			return
		}

		status := http.StatusFound
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			status = http.StatusSeeOther
		}
		c.Redirect(status, decision.Redirect)
		c.Abort()
	}
}
