package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"estateadmin/console/internal/apiclient"
	"estateadmin/console/internal/form"
	"estateadmin/console/internal/guard"
	"estateadmin/console/internal/ids"
	"estateadmin/console/internal/service"
	"estateadmin/console/internal/session"
)

type loginView struct {
	Draft form.LoginDraft
}

// Root is only reached when the guard lets "/" through, which it never does;
// it resolves the same redirect for completeness.
func (h HandlerSet) Root(c *gin.Context) {
	decision := guard.Resolve(guard.PathRoot, session.FromContext(c).Authorized())
	c.Redirect(http.StatusFound, decision.Redirect)
}

func (h HandlerSet) LoginPage(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", page{
		Title: "Login",
		Data:  loginView{},
	})
}

func (h HandlerSet) Login(c *gin.Context) {
	var draft form.LoginDraft
	if err := c.ShouldBind(&draft); err != nil {
		h.renderLoginFailure(c, http.StatusBadRequest, draft, "Username and password are required")
		return
	}

	holder := session.FromContext(c)
	// a fresh console session id on every sign-in
	sessionID := ids.New()

	result, err := h.auth.Login(c.Request.Context(), service.LoginInput{
		SessionID: sessionID,
		Username:  draft.Username,
		Password:  draft.Password,
	})
	if err != nil {
		_ = holder.SetAuthorized(false)
		h.logger(c).Warn().Err(err).Str("username", draft.Username).Msg("login failed")
		h.renderLoginFailure(c, loginFailureStatus(err), draft, apiclient.UserMessage(err, "Login failed"))
		return
	}

	holder.SetID(sessionID)
	holder.SetAdmin(result.Session.Admin)
	if err := holder.SetAuthorized(true); err != nil {
		h.logger(c).Error().Err(err).Msg("login returned no admin")
		h.renderLoginFailure(c, http.StatusBadGateway, draft, "Login failed")
		return
	}
	if cookie := session.CookieFromContext(c); cookie != nil {
		cookie.Rotate(sessionID)
		cookie.SetCredentials(result.Credentials)
	}

	h.logger(c).Info().Str("admin", result.Session.Admin.DisplayName()).Msg("admin signed in")
	h.redirect(c, guard.PathDashboard)
}

func loginFailureStatus(err error) int {
	if errors.Is(err, service.ErrInvalidCredentials) {
		return http.StatusBadRequest
	}
	if apiErr, ok := apiclient.AsError(err); ok && apiErr.StatusCode < http.StatusInternalServerError {
		return http.StatusUnauthorized
	}
	return http.StatusBadGateway
}

func (h HandlerSet) renderLoginFailure(c *gin.Context, status int, draft form.LoginDraft, message string) {
	h.render(c, status, "login.html", page{
		Title: "Login",
		Data:  loginView{Draft: draft.Redacted()},
	}.notice(session.FlashError, message))
}

func (h HandlerSet) Logout(c *gin.Context) {
	holder := session.FromContext(c)
	current := holder.Current()

	if err := h.auth.Logout(c.Request.Context(), holder.ID(), current.Admin); err != nil {
		h.logger(c).Warn().Err(err).Msg("forget session failed")
	}
	if h.properties != nil {
		if err := h.properties.Clear(c.Request.Context(), holder.ID()); err != nil {
			h.logger(c).Debug().Err(err).Msg("clear property snapshot failed")
		}
	}

	holder.Clear()
	if cookie := session.CookieFromContext(c); cookie != nil {
		id := ids.New()
		cookie.Rotate(id)
		holder.SetID(id)
	}

	h.flash(c, session.FlashSuccess, "Signed out")
	h.redirect(c, guard.PathLogin)
}
