package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/guard"
	"estateadmin/console/internal/session"
)

type Hydrator interface {
	Hydrate(ctx context.Context, id string) session.Session
}

// Session opens the browser cookie, carries its upstream credentials on the
// request context and resolves who is signed in. Infrastructure paths skip it.
func Session(jar *session.CookieJar, hydrator Hydrator, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if guard.Classify(c.Request.URL.Path) == guard.KindPublic {
			c.Next()
			return
		}

		cookie := jar.Open(c.Request)
		dirty := false

		id := cookie.ID()
		if id == "" {
			id = cookie.EnsureID()
			dirty = true
		}

		creds := cookie.Credentials()
		ctx := apiclient.WithCredentials(c.Request.Context(), creds)
		c.Request = c.Request.WithContext(ctx)

		current := hydrator.Hydrate(ctx, id)
		if !current.Authorized && len(creds) > 0 {
			cookie.SetCredentials(nil)
			c.Request = c.Request.WithContext(apiclient.WithCredentials(c.Request.Context(), nil))
			dirty = true
		}

		if dirty {
			if err := cookie.Save(c.Request, c.Writer); err != nil {
				log.Warn().Err(err).Str("request_id", GetRequestID(c)).Msg("session cookie save failed")
			}
		}

		session.Attach(c, session.NewHolder(id, current))
		session.AttachCookie(c, cookie)
		c.Next()
	}
}
